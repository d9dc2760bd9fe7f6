package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Withdrawal queue backends.
const (
	QueueMemory = "memory"
	QueueRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Withdrawal watcher
	WatcherInterval   time.Duration `env:"WATCHER_INTERVAL"     envDefault:"50ms"`
	WatcherMaxPerTick int           `env:"WATCHER_MAX_PER_TICK" envDefault:"0"`
	WatcherQueue      string        `env:"WATCHER_QUEUE"        envDefault:"memory"`

	// Redis (used when WatcherQueue is "redis")
	RedisURL      string `env:"REDIS_URL"       envDefault:"redis://localhost:6379"`
	RedisQueueKey string `env:"REDIS_QUEUE_KEY" envDefault:"moneyledger:withdrawals"`

	// Withdrawal gateway. An empty URL selects the in-process simulated gateway.
	GatewayURL        string        `env:"GATEWAY_URL"         envDefault:""`
	GatewayTimeout    time.Duration `env:"GATEWAY_TIMEOUT"     envDefault:"5s"`
	GatewayMaxRetries int           `env:"GATEWAY_MAX_RETRIES" envDefault:"3"`
	GatewayMinDelay   time.Duration `env:"GATEWAY_MIN_DELAY"   envDefault:"1s"`
	GatewayMaxDelay   time.Duration `env:"GATEWAY_MAX_DELAY"   envDefault:"10s"`

	// Rate limiting (0 disables)
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	switch c.WatcherQueue {
	case QueueMemory, QueueRedis:
	default:
		return fmt.Errorf("WATCHER_QUEUE must be %q or %q, got %q", QueueMemory, QueueRedis, c.WatcherQueue)
	}

	if c.WatcherInterval <= 0 {
		return fmt.Errorf("WATCHER_INTERVAL must be positive, got %s", c.WatcherInterval)
	}
	if c.WatcherMaxPerTick < 0 {
		return fmt.Errorf("WATCHER_MAX_PER_TICK must not be negative, got %d", c.WatcherMaxPerTick)
	}
	if c.GatewayMinDelay < 0 || c.GatewayMaxDelay < c.GatewayMinDelay {
		return fmt.Errorf("GATEWAY_MIN_DELAY (%s) must be in [0, GATEWAY_MAX_DELAY (%s)]", c.GatewayMinDelay, c.GatewayMaxDelay)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative, got %v", c.RateLimitRPS)
	}

	return nil
}
