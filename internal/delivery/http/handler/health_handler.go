package handler

import (
	"context"
	"time"

	"careercraft/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is satisfied by the database pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

// NewHealthHandler builds the liveness and readiness endpoints. db may be nil,
// in which case readiness always succeeds.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.JSON(c, fiber.StatusOK, fiber.Map{"status": "ok"})
}

func (h *HealthHandler) Ready(c fiber.Ctx) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			return response.JSON(c, fiber.StatusServiceUnavailable, fiber.Map{"status": "unavailable"})
		}
	}
	return response.JSON(c, fiber.StatusOK, fiber.Map{"status": "ok"})
}
