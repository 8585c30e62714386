package handler

import (
	"context"
	"time"

	"skill-matrix/internal/delivery/http/middleware"
	"skill-matrix/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const readinessTimeout = 2 * time.Second

// Pinger is satisfied by the database pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Live)
	r.Get("/health/ready", h.Ready)
}

func (h *HealthHandler) Live(c fiber.Ctx) error {
	return response.OK(c, response.MessageOK, fiber.Map{"status": "up"})
}

func (h *HealthHandler) Ready(c fiber.Ctx) error {
	if h.db == nil {
		return response.OK(c, response.MessageOK, fiber.Map{"status": "up"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), readinessTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Database unavailable", nil, err)
	}
	return response.OK(c, response.MessageOK, fiber.Map{"status": "up", "database": "up"})
}
