package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const probeTimeout = 3 * time.Second

// Health serves the portal's liveness and readiness probes. Readiness fails
// when either backing store is unreachable: without Mongo there are no
// accounts, without Redis there are no sessions.
type Health struct {
	mongo *mongo.Database
	redis *redis.Client
}

func NewHealth(db *mongo.Database, rdb *redis.Client) *Health {
	return &Health{mongo: db, redis: rdb}
}

func (h *Health) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type checkResult struct {
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status string                 `json:"status"`
	Checks map[string]checkResult `json:"checks"`
}

func (h *Health) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), probeTimeout)
	defer cancel()

	resp := readinessResponse{
		Status: "ready",
		Checks: map[string]checkResult{
			"mongodb": h.checkMongo(ctx),
			"redis":   h.checkRedis(ctx),
		},
	}

	code := http.StatusOK
	for _, check := range resp.Checks {
		if !check.Healthy {
			resp.Status = "not ready"
			code = http.StatusServiceUnavailable
			break
		}
	}
	return c.JSON(code, resp)
}

func (h *Health) checkMongo(ctx context.Context) checkResult {
	if err := h.mongo.Client().Ping(ctx, nil); err != nil {
		return checkResult{Error: err.Error()}
	}
	return checkResult{Healthy: true}
}

func (h *Health) checkRedis(ctx context.Context) checkResult {
	if err := h.redis.Ping(ctx).Err(); err != nil {
		return checkResult{Error: err.Error()}
	}
	return checkResult{Healthy: true}
}
