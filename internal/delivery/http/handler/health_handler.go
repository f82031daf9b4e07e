package handler

import (
	"context"
	"time"

	"career-compass/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is anything with a liveness probe. The Postgres pool and the
// Redis wrapper both satisfy it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{
		"database": probe(ctx, h.db),
		"cache":    probe(ctx, h.cache),
	}

	if checks["database"] != "ok" {
		return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy", checks)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, checks)
}

func probe(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "ok"
}
