package routes

import (
	"net/http"

	"skill-matrix/internal/delivery/http/handler"
	v1 "skill-matrix/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

type Registry struct {
	health  *handler.HealthHandler
	v1      v1.Handlers
	metrics http.Handler
	ws      fiber.Handler
}

type Options struct {
	Health *handler.HealthHandler
	V1     v1.Handlers
	// Metrics serves /metrics when set.
	Metrics http.Handler
	// LiveUpdates serves /ws when set.
	LiveUpdates fiber.Handler
}

func NewRegistry(opts Options) *Registry {
	health := opts.Health
	if health == nil {
		health = handler.NewHealthHandler(nil)
	}
	return &Registry{health: health, v1: opts.V1, metrics: opts.Metrics, ws: opts.LiveUpdates}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerOps(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerOps(app *fiber.App) {
	if r.metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(r.metrics))
	}
	if r.ws != nil {
		app.Get("/ws", r.ws)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1)
}
