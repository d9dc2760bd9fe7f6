package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// PendingCounter reports how many withdrawals await a terminal state.
type PendingCounter interface {
	Pending(ctx context.Context) (int, error)
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	redisClient *redis.Client
	watcher     PendingCounter
}

// NewHealthHandler creates a new HealthHandler. redisClient is nil when the
// service runs without Redis.
func NewHealthHandler(redisClient *redis.Client, watcher PendingCounter) *HealthHandler {
	return &HealthHandler{
		redisClient: redisClient,
		watcher:     watcher,
	}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 if the service is ready to accept traffic.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resp := map[string]any{"status": "ready"}

	if h.redisClient != nil {
		if err := h.redisClient.Ping(ctx).Err(); err != nil {
			writeError(w, http.StatusServiceUnavailable, "redis unhealthy", err.Error())
			return
		}
		resp["redis"] = "ok"
	}

	if h.watcher != nil {
		pending, err := h.watcher.Pending(ctx)
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, "withdrawal queue unavailable", err.Error())
			return
		}
		resp["pending_withdrawals"] = pending
	}

	writeJSON(w, http.StatusOK, resp)
}
