package v1

import (
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Auth    *handler.AuthHandler
	Catalog *handler.CatalogHandler
	Ranking *handler.RankingHandler
	AuthMW  *middleware.AuthMiddleware
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	d.Auth.RegisterRoutes(r.Group("/auth"))
	d.Catalog.RegisterRoutes(r, d.AuthMW.Middleware())

	openings := r.Group("/openings", d.AuthMW.Middleware(), middleware.RequireRole(user.CanRank))
	d.Ranking.RegisterRoutes(openings)
}
