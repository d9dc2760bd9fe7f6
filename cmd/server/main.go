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

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/iho/moneyledger/internal/adapter/gateway"
	httpAdapter "github.com/iho/moneyledger/internal/adapter/http"
	"github.com/iho/moneyledger/internal/adapter/http/handler"
	"github.com/iho/moneyledger/internal/adapter/http/middleware"
	"github.com/iho/moneyledger/internal/adapter/repository/memory"
	redisRepo "github.com/iho/moneyledger/internal/adapter/repository/redis"
	"github.com/iho/moneyledger/internal/infrastructure/config"
	"github.com/iho/moneyledger/internal/infrastructure/idgen"
	"github.com/iho/moneyledger/internal/infrastructure/logger"
	"github.com/iho/moneyledger/internal/infrastructure/metrics"
	"github.com/iho/moneyledger/internal/infrastructure/redis"
	"github.com/iho/moneyledger/internal/infrastructure/watcher"
	"github.com/iho/moneyledger/internal/usecase"
)

// Clients idle for longer than this lose their rate-limit state.
const limiterIdleTTL = 10 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "moneyledger"})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}

	appLogger.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	m := metrics.New()

	var redisClient *goredis.Client
	if cfg.WatcherQueue == config.QueueRedis {
		client, err := redis.NewClient(ctx, cfg.RedisURL, logger)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer client.Close()
		redisClient = client
	}

	gw, err := newGateway(cfg, logger)
	if err != nil {
		return err
	}

	accounts := memory.NewAccountStore(idgen.NewULIDGenerator())
	w := watcher.New(watcher.Config{
		Queue:      newQueue(cfg, redisClient),
		Accounts:   accounts,
		Gateway:    gw,
		Logger:     logger.With().Str("component", "watcher").Logger(),
		Metrics:    m,
		Interval:   cfg.WatcherInterval,
		MaxPerTick: cfg.WatcherMaxPerTick,
	})

	accountUC := usecase.NewAccountUseCase(accounts, m)
	ledgerUC := usecase.NewLedgerUseCase(accounts, gw, w, idgen.NewUUIDGenerator(), logger, m)

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:    handler.NewAccountHandler(accountUC),
		TransferHandler:   handler.NewTransferHandler(ledgerUC),
		WithdrawalHandler: handler.NewWithdrawalHandler(ledgerUC),
		HealthHandler:     handler.NewHealthHandler(redisClient, w),
		Logger:            logger,
		RateLimiter:       limiter,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().
			Dur("interval", cfg.WatcherInterval).
			Str("queue", cfg.WatcherQueue).
			Msg("starting withdrawal watcher")
		if err := w.Start(gctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	if limiter != nil {
		g.Go(func() error {
			ticker := time.NewTicker(limiterIdleTTL)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					if n := limiter.Prune(limiterIdleTTL); n > 0 {
						logger.Debug().Int("clients", n).Msg("pruned idle rate limiters")
					}
				}
			}
		})
	}

	g.Go(func() error {
		logger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.HTTPShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newGateway returns the HTTP gateway client when GATEWAY_URL is set and the
// in-process simulator otherwise.
func newGateway(cfg *config.Config, logger zerolog.Logger) (usecase.WithdrawalGateway, error) {
	if cfg.GatewayURL == "" {
		logger.Info().
			Dur("min_delay", cfg.GatewayMinDelay).
			Dur("max_delay", cfg.GatewayMaxDelay).
			Msg("using simulated withdrawal gateway")
		return gateway.NewSimulated(gateway.SimulatedConfig{
			MinDelay: cfg.GatewayMinDelay,
			MaxDelay: cfg.GatewayMaxDelay,
		}), nil
	}

	client, err := gateway.NewHTTPClient(gateway.HTTPClientConfig{
		BaseURL: cfg.GatewayURL,
		Timeout: cfg.GatewayTimeout,
		Retry:   gateway.RetryConfig{MaxRetries: cfg.GatewayMaxRetries},
		Logger:  logger.With().Str("component", "gateway").Logger(),
	})
	if err != nil {
		return nil, fmt.Errorf("create gateway client: %w", err)
	}

	logger.Info().Str("url", cfg.GatewayURL).Msg("using remote withdrawal gateway")
	return client, nil
}

func newQueue(cfg *config.Config, client *goredis.Client) usecase.WithdrawalQueue {
	if cfg.WatcherQueue == config.QueueRedis && client != nil {
		return redisRepo.NewWithdrawalQueue(client, cfg.RedisQueueKey)
	}
	return memory.NewWithdrawalQueue()
}
