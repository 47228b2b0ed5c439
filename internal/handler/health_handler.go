package handler

import (
	"context"
	"time"

	"feedback-builder/internal/domain"
	"feedback-builder/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the database and Redis are reachable
type HealthHandler struct {
	db    Pinger
	cache domain.Cache
}

func NewHealthHandler(db Pinger, cache domain.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Healthz handles GET /healthz
func (h *HealthHandler) Healthz(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	checks := fiber.Map{"database": "ok", "redis": "ok"}
	healthy := true
	if err := h.db.PingContext(ctx); err != nil {
		logger.Get().Warn("Health check: database unreachable", zap.Error(err))
		checks["database"] = "unreachable"
		healthy = false
	}
	if err := h.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Health check: redis unreachable", zap.Error(err))
		checks["redis"] = "unreachable"
		healthy = false
	}

	status := fiber.StatusOK
	if !healthy {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{"healthy": healthy, "checks": checks})
}
