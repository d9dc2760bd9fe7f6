package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/moneyledger/internal/domain"
	"github.com/iho/moneyledger/internal/infrastructure/metrics"
)

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	accounts AccountStore
	metrics  *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accounts AccountStore, m *metrics.Metrics) *AccountUseCase {
	return &AccountUseCase{
		accounts: accounts,
		metrics:  m,
	}
}

// OpenAccountInput represents input for opening an account.
type OpenAccountInput struct {
	InitialBalance decimal.Decimal
}

// OpenAccount creates a new account with a zero or positive balance.
func (uc *AccountUseCase) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	if input.InitialBalance.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	account, err := uc.accounts.CreateAccount(ctx, input.InitialBalance)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsOpened.Inc()
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accounts.GetAccount(ctx, id)
}
