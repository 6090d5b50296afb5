package v2

import (
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Ranking *handler.RankingHandler
	AuthMW  *middleware.AuthMiddleware
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	openings := r.Group("/openings", d.AuthMW.Middleware(), middleware.RequireRole(user.CanRank))
	d.Ranking.RegisterRoutes(openings)
}
