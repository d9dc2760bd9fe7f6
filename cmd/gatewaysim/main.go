package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iho/moneyledger/internal/adapter/gateway"
	httpAdapter "github.com/iho/moneyledger/internal/adapter/http"
	"github.com/iho/moneyledger/internal/adapter/http/handler"
	"github.com/iho/moneyledger/internal/infrastructure/logger"
)

type config struct {
	Port            string        `env:"GATEWAYSIM_PORT"   envDefault:"8081"`
	MinDelay        time.Duration `env:"GATEWAY_MIN_DELAY" envDefault:"1s"`
	MaxDelay        time.Duration `env:"GATEWAY_MAX_DELAY" envDefault:"10s"`
	LogLevel        string        `env:"LOG_LEVEL"         envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT"        envDefault:"json"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "gatewaysim"})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, appLogger); err != nil {
		appLogger.Error().Err(err).Msg("gateway simulator stopped with error")
		os.Exit(1)
	}
}

func newServer(cfg config, logger zerolog.Logger) *http.Server {
	sim := gateway.NewSimulated(gateway.SimulatedConfig{
		MinDelay: cfg.MinDelay,
		MaxDelay: cfg.MaxDelay,
	})

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           httpAdapter.NewGatewayRouter(handler.NewGatewayHandler(sim), logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func serve(ctx context.Context, cfg config, logger zerolog.Logger) error {
	server := newServer(cfg, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Dur("min_delay", cfg.MinDelay).
			Dur("max_delay", cfg.MaxDelay).
			Msg("starting gateway simulator")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down gateway simulator...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
