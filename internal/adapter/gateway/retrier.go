package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// errTransient marks a gateway response worth another attempt: a 5xx status
// or a failed round trip.
var errTransient = errors.New("transient gateway error")

// RetryConfig bounds how long the client keeps retrying a gateway call.
type RetryConfig struct {
	MaxRetries int
	MinDelay   time.Duration
	MaxDelay   time.Duration
}

// Retrier retries gateway calls with exponential backoff on transient errors.
type Retrier struct {
	maxRetries int
	minDelay   time.Duration
	maxDelay   time.Duration
	logger     zerolog.Logger
}

// NewRetrier creates a new Retrier. Zero delays fall back to 1s and 10s.
func NewRetrier(cfg RetryConfig, logger zerolog.Logger) *Retrier {
	if cfg.MinDelay <= 0 {
		cfg.MinDelay = time.Second
	}
	if cfg.MaxDelay < cfg.MinDelay {
		cfg.MaxDelay = 10 * cfg.MinDelay
	}

	return &Retrier{
		maxRetries: cfg.MaxRetries,
		minDelay:   cfg.MinDelay,
		maxDelay:   cfg.MaxDelay,
		logger:     logger,
	}
}

// Retry runs operation until it succeeds, fails permanently, runs out of
// retries or ctx is done.
func (r *Retrier) Retry(ctx context.Context, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.minDelay
	b.MaxInterval = r.maxDelay
	b.MaxElapsedTime = 0

	attempt := 0

	return backoff.Retry(func() error {
		err := operation()
		if err == nil {
			return nil
		}
		if !errors.Is(err, errTransient) {
			return backoff.Permanent(err)
		}

		attempt++
		if attempt > r.maxRetries {
			return backoff.Permanent(err)
		}

		r.logger.Warn().
			Err(err).
			Int("retry", attempt).
			Msg("gateway call failed, retrying")

		return err
	}, backoff.WithContext(b, ctx))
}
