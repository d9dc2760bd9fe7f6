package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/moneyledger/internal/domain"
)

// AccountStore is the single source of truth for balances.
// All methods are safe for concurrent use; no lock spans two accounts.
type AccountStore interface {
	CreateAccount(ctx context.Context, initialBalance decimal.Decimal) (*domain.Account, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	IncreaseBalance(ctx context.Context, id string, amount decimal.Decimal) error
	DecreaseBalance(ctx context.Context, id string, amount decimal.Decimal) error
}

// WithdrawalGateway is the external withdrawal processor.
type WithdrawalGateway interface {
	// RequestWithdrawal returns domain.ErrWithdrawalIDInUse when id collides
	// with another withdrawal; the caller retries with a fresh id.
	RequestWithdrawal(ctx context.Context, id domain.WithdrawalID, address domain.Address, amount decimal.Decimal) error
	// GetState returns domain.ErrWithdrawalNotFound for ids never accepted.
	GetState(ctx context.Context, id domain.WithdrawalID) (domain.WithdrawalState, error)
}

// WithdrawalTracker follows accepted withdrawals until they resolve. Track is
// called after the gateway may already hold the funds, so implementations
// keep the record in memory rather than fail when their storage is down.
type WithdrawalTracker interface {
	Track(ctx context.Context, record domain.WithdrawalRecord) error
}

// WithdrawalQueue is the FIFO backing a WithdrawalTracker.
// Producers only append; the tracker is the only consumer.
type WithdrawalQueue interface {
	Push(ctx context.Context, record domain.WithdrawalRecord) error
	// Pop removes the head record. ok is false when the queue is empty.
	Pop(ctx context.Context) (record domain.WithdrawalRecord, ok bool, err error)
	Len(ctx context.Context) (int, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
