package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/moneyledger/internal/adapter/http/handler"
	"github.com/iho/moneyledger/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler    *handler.AccountHandler
	TransferHandler   *handler.TransferHandler
	WithdrawalHandler *handler.WithdrawalHandler
	HealthHandler     *handler.HealthHandler
	Logger            zerolog.Logger
	RateLimiter       *middleware.RateLimiter // optional
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/{id}", cfg.AccountHandler.Get)
		})

		// Transfers
		r.Post("/transfers", cfg.TransferHandler.Create)

		// Withdrawals
		r.Route("/withdrawals", func(r chi.Router) {
			r.Post("/", cfg.WithdrawalHandler.Create)
			r.Get("/{id}", cfg.WithdrawalHandler.GetState)
		})
	})

	return r
}

// NewGatewayRouter serves a withdrawal processor under /withdrawals.
func NewGatewayRouter(h *handler.GatewayHandler, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Post("/withdrawals", h.Request)
	r.Get("/withdrawals/{id}", h.GetState)

	return r
}
