package gateway

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/moneyledger/internal/domain"
)

// SimulatedConfig configures a Simulated gateway.
type SimulatedConfig struct {
	MinDelay time.Duration // earliest a withdrawal can resolve
	MaxDelay time.Duration // latest a withdrawal can resolve
	Now      func() time.Time
	// Outcome picks the terminal state of a new withdrawal.
	Outcome func() domain.WithdrawalState
}

type simulatedWithdrawal struct {
	address    domain.Address
	amount     decimal.Decimal
	finalState domain.WithdrawalState
	finaliseAt time.Time
}

// Simulated is an in-process withdrawal processor. Every accepted withdrawal
// stays PROCESSING for a random delay and then settles on a random terminal
// state.
type Simulated struct {
	mu          sync.RWMutex
	withdrawals map[domain.WithdrawalID]simulatedWithdrawal

	minDelay time.Duration
	maxDelay time.Duration
	now      func() time.Time
	outcome  func() domain.WithdrawalState
}

// NewSimulated creates a new Simulated gateway.
func NewSimulated(cfg SimulatedConfig) *Simulated {
	if cfg.MaxDelay < cfg.MinDelay {
		cfg.MaxDelay = cfg.MinDelay
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Outcome == nil {
		cfg.Outcome = randomOutcome
	}

	return &Simulated{
		withdrawals: make(map[domain.WithdrawalID]simulatedWithdrawal),
		minDelay:    cfg.MinDelay,
		maxDelay:    cfg.MaxDelay,
		now:         cfg.Now,
		outcome:     cfg.Outcome,
	}
}

// RequestWithdrawal accepts a withdrawal. Re-submitting an id with the same
// address and amount is a no-op; reusing it for anything else fails with
// domain.ErrWithdrawalIDInUse.
func (g *Simulated) RequestWithdrawal(_ context.Context, id domain.WithdrawalID, address domain.Address, amount decimal.Decimal) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if existing, ok := g.withdrawals[id]; ok {
		if existing.address == address && existing.amount.Equal(amount) {
			return nil
		}
		return fmt.Errorf("withdrawal %s: %w", id, domain.ErrWithdrawalIDInUse)
	}

	g.withdrawals[id] = simulatedWithdrawal{
		address:    address,
		amount:     amount,
		finalState: g.outcome(),
		finaliseAt: g.now().Add(g.delay()),
	}

	return nil
}

// GetState returns PROCESSING until the withdrawal's resolution time, then
// its terminal state.
func (g *Simulated) GetState(_ context.Context, id domain.WithdrawalID) (domain.WithdrawalState, error) {
	g.mu.RLock()
	w, ok := g.withdrawals[id]
	g.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("withdrawal %s: %w", id, domain.ErrWithdrawalNotFound)
	}

	if g.now().Before(w.finaliseAt) {
		return domain.WithdrawalStateProcessing, nil
	}

	return w.finalState, nil
}

func (g *Simulated) delay() time.Duration {
	spread := g.maxDelay - g.minDelay
	if spread <= 0 {
		return g.minDelay
	}

	return g.minDelay + rand.N(spread)
}

func randomOutcome() domain.WithdrawalState {
	if rand.IntN(2) == 0 {
		return domain.WithdrawalStateCompleted
	}

	return domain.WithdrawalStateFailed
}
