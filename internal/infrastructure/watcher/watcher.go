package watcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/iho/moneyledger/internal/domain"
	"github.com/iho/moneyledger/internal/infrastructure/metrics"
	"github.com/iho/moneyledger/internal/usecase"
)

const (
	pushRetries       = 3
	pushRetryInterval = 10 * time.Millisecond
)

// Watcher follows accepted withdrawals until the gateway reports a terminal
// state, and returns the frozen amount of every failed one to its account.
//
// Records the queue refuses are held in memory and reconciled from there, so
// a queue outage never drops frozen funds.
type Watcher struct {
	queue      usecase.WithdrawalQueue
	mu         sync.Mutex
	held       []domain.WithdrawalRecord
	accounts   usecase.AccountStore
	gateway    usecase.WithdrawalGateway
	logger     zerolog.Logger
	metrics    *metrics.Metrics
	interval   time.Duration
	maxPerTick int
}

// Config for Watcher.
type Config struct {
	Queue    usecase.WithdrawalQueue
	Accounts usecase.AccountStore
	Gateway  usecase.WithdrawalGateway
	Logger   zerolog.Logger
	Metrics  *metrics.Metrics // optional
	Interval time.Duration    // Polling interval
	// MaxPerTick caps the records examined in one pass. Zero means every
	// record queued when the pass starts.
	MaxPerTick int
}

// New creates a new Watcher.
func New(cfg Config) *Watcher {
	if cfg.Interval <= 0 {
		cfg.Interval = usecase.DefaultWatchInterval
	}
	if cfg.MaxPerTick < 0 {
		cfg.MaxPerTick = 0
	}

	return &Watcher{
		queue:      cfg.Queue,
		accounts:   cfg.Accounts,
		gateway:    cfg.Gateway,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		interval:   cfg.Interval,
		maxPerTick: cfg.MaxPerTick,
	}
}

// Track enqueues a withdrawal for reconciliation. It always returns nil.
func (w *Watcher) Track(ctx context.Context, record domain.WithdrawalRecord) error {
	w.store(ctx, w.logger, record)
	if w.metrics != nil {
		w.metrics.WatcherQueueSize.Inc()
	}

	w.logger.Debug().
		Str("withdrawal_id", string(record.WithdrawalID)).
		Str("account_id", record.FromAccountID).
		Str("amount", record.Amount.String()).
		Bool("unconfirmed", record.Unconfirmed).
		Msg("tracking withdrawal")

	return nil
}

// Pending returns the number of withdrawals not yet resolved.
func (w *Watcher) Pending(ctx context.Context) (int, error) {
	n, err := w.queue.Len(ctx)
	if err != nil {
		return 0, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return n + len(w.held), nil
}

// Start runs Reconcile immediately and then once per interval until ctx is
// cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.logger.Info().
		Dur("interval", w.interval).
		Int("max_per_tick", w.maxPerTick).
		Msg("withdrawal watcher started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	if err := w.Reconcile(ctx); err != nil && ctx.Err() == nil {
		w.logger.Warn().Err(err).Msg("reconciliation pass failed")
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("withdrawal watcher shutting down")
			return ctx.Err()
		case <-ticker.C:
			if err := w.Reconcile(ctx); err != nil && ctx.Err() == nil {
				w.logger.Warn().Err(err).Msg("reconciliation pass failed")
			}
		}
	}
}

// Reconcile examines at most the records that were queued when it started,
// in FIFO order, after every record held back by a queue failure. Records
// still PROCESSING go back to the tail, so they are not seen twice in one
// pass.
func (w *Watcher) Reconcile(ctx context.Context) error {
	start := time.Now()
	defer func() {
		if w.metrics != nil {
			w.metrics.WatcherTick.Observe(time.Since(start).Seconds())
		}
	}()

	held := w.takeHeld()
	n, lenErr := w.queue.Len(ctx)

	for i, record := range held {
		if err := ctx.Err(); err != nil {
			w.hold(held[i:]...)
			return err
		}
		w.resolve(ctx, record)
	}

	if lenErr != nil {
		return fmt.Errorf("queue length: %w", lenErr)
	}
	if w.maxPerTick > 0 && n > w.maxPerTick {
		n = w.maxPerTick
	}

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		record, ok, err := w.queue.Pop(ctx)
		if err != nil {
			return fmt.Errorf("dequeue withdrawal: %w", err)
		}
		if !ok {
			break
		}

		w.resolve(ctx, record)
	}

	if w.metrics != nil {
		if size, err := w.Pending(ctx); err == nil {
			w.metrics.WatcherQueueSize.Set(float64(size))
		}
	}

	return nil
}

func (w *Watcher) resolve(ctx context.Context, record domain.WithdrawalRecord) {
	logger := w.logger.With().
		Str("withdrawal_id", string(record.WithdrawalID)).
		Str("account_id", record.FromAccountID).
		Str("amount", record.Amount.String()).
		Logger()

	if record.Unconfirmed {
		w.confirm(ctx, logger, record)
		return
	}

	gwCtx, cancel := context.WithTimeout(ctx, usecase.DefaultGatewayTimeout)
	state, err := w.gateway.GetState(gwCtx, record.WithdrawalID)
	cancel()

	switch {
	case errors.Is(err, domain.ErrWithdrawalNotFound):
		logger.Error().Msg("gateway lost an accepted withdrawal, dropping it")
		w.observe("not_found")
		return
	case err != nil:
		logger.Warn().Err(err).Msg("failed to query withdrawal state, will retry")
		w.store(ctx, logger, record)
		return
	}

	switch state {
	case domain.WithdrawalStateCompleted:
		logger.Debug().Msg("withdrawal completed")
		w.observe(string(state))
	case domain.WithdrawalStateFailed:
		logger.Info().Msg("withdrawal failed, refunding")
		w.observe(string(state))
		w.refund(ctx, logger, record)
	default:
		w.store(ctx, logger, record)
	}
}

// confirm re-submits a withdrawal whose first submission failed ambiguously.
// The gateway accepts an identical request for an id it already holds, so a
// late original and the re-submission resolve to the same withdrawal. Funds
// are released only when the gateway refuses the id outright.
func (w *Watcher) confirm(ctx context.Context, logger zerolog.Logger, record domain.WithdrawalRecord) {
	gwCtx, cancel := context.WithTimeout(ctx, usecase.DefaultGatewayTimeout)
	err := w.gateway.RequestWithdrawal(gwCtx, record.WithdrawalID, record.Address, record.Amount)
	cancel()

	switch {
	case err == nil:
		logger.Info().Msg("gateway confirmed withdrawal")
		record.Unconfirmed = false
		w.store(ctx, logger, record)
	case errors.Is(err, domain.ErrWithdrawalRejected), errors.Is(err, domain.ErrWithdrawalIDInUse):
		logger.Info().Err(err).Msg("gateway refused withdrawal, refunding")
		w.observe("refused")
		w.refund(ctx, logger, record)
	default:
		logger.Warn().Err(err).Msg("failed to confirm withdrawal, will retry")
		w.store(ctx, logger, record)
	}
}

func (w *Watcher) refund(ctx context.Context, logger zerolog.Logger, record domain.WithdrawalRecord) {
	err := w.accounts.IncreaseBalance(context.WithoutCancel(ctx), record.FromAccountID, record.Amount)
	switch {
	case err == nil:
		if w.metrics != nil {
			w.metrics.RefundsApplied.Inc()
		}
	case errors.Is(err, domain.ErrAccountNotFound):
		logger.Error().Err(err).Msg("refund target account is gone, funds lost")
		if w.metrics != nil {
			w.metrics.RefundsLost.Inc()
		}
	default:
		logger.Warn().Err(err).Msg("refund failed, will retry")
		w.store(ctx, logger, record)
	}
}

// store pushes record onto the queue, retrying briefly, and holds it in
// memory when the queue stays unavailable.
func (w *Watcher) store(ctx context.Context, logger zerolog.Logger, record domain.WithdrawalRecord) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = pushRetryInterval

	pushCtx := context.WithoutCancel(ctx)
	err := backoff.Retry(func() error {
		return w.queue.Push(pushCtx, record)
	}, backoff.WithContext(backoff.WithMaxRetries(b, pushRetries), pushCtx))
	if err == nil {
		return
	}

	logger.Warn().
		Err(err).
		Str("withdrawal_id", string(record.WithdrawalID)).
		Bool("unconfirmed", record.Unconfirmed).
		Msg("withdrawal queue unavailable, holding record in memory")
	w.hold(record)
}

func (w *Watcher) hold(records ...domain.WithdrawalRecord) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.held = append(w.held, records...)
}

func (w *Watcher) takeHeld() []domain.WithdrawalRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	held := w.held
	w.held = nil
	return held
}

func (w *Watcher) observe(state string) {
	if w.metrics != nil {
		w.metrics.WithdrawalsResolved.WithLabelValues(state).Inc()
	}
}
