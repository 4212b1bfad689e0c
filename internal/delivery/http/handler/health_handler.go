package handler

import (
	"context"
	"time"

	"talent-bridge/internal/database"
	"talent-bridge/internal/infrastructure/cache"
	"talent-bridge/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	redis *cache.Redis
}

func NewHealthHandler(db database.DB, redis *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

// Check reports component health. Redis being down degrades the
// response body but not the status code, the API keeps serving.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	if h.db == nil {
		dbStatus = "down"
	} else if err := h.db.Ping(ctx); err != nil {
		dbStatus = "down"
	}

	redisStatus := "up"
	if h.redis == nil || !h.redis.Available() || h.redis.Ping(ctx) != nil {
		redisStatus = "down"
	}

	status := fiber.StatusOK
	if dbStatus == "down" {
		status = fiber.StatusServiceUnavailable
	}
	return response.Success(c, status, response.MessageOK, fiber.Map{
		"database": dbStatus,
		"redis":    redisStatus,
	})
}
