package routes

import (
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	v1 "talent-match/internal/delivery/http/routes/v1"
	v2 "talent-match/internal/delivery/http/routes/v2"
	"talent-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Catalog   *handler.CatalogHandler
	RankingV1 *handler.RankingHandler
	RankingV2 *handler.RankingHandler
	WS        *ws.Handler
	AuthMW    *middleware.AuthMiddleware
}

type Registry struct {
	h Handlers
}

func NewRegistry(h Handlers) *Registry {
	return &Registry{h: h}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.h.Health.RegisterRoutes(app)
	if r.h.WS != nil {
		r.h.WS.RegisterRoutes(app)
	}
	r.registerAPI(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Deps{
		Auth:    r.h.Auth,
		Catalog: r.h.Catalog,
		Ranking: r.h.RankingV1,
		AuthMW:  r.h.AuthMW,
	})
	v2.Register(api.Group("/v2"), v2.Deps{
		Ranking: r.h.RankingV2,
		AuthMW:  r.h.AuthMW,
	})
}
