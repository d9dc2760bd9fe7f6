package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/iho/moneyledger/internal/domain"
	"github.com/iho/moneyledger/internal/usecase"
)

// AccountStore implements usecase.AccountStore in memory.
//
// The registry only ever grows: accounts are inserted once and never removed,
// so a looked-up *domain.Account stays valid for the life of the store.
// Balance updates go straight to the account's CAS cell without any
// store-wide lock.
type AccountStore struct {
	accounts sync.Map // string -> *domain.Account
	idGen    usecase.IDGenerator
}

// NewAccountStore creates a new AccountStore.
func NewAccountStore(idGen usecase.IDGenerator) *AccountStore {
	return &AccountStore{idGen: idGen}
}

// CreateAccount registers a new account under a fresh id, regenerating the id
// until it does not collide with an existing account.
func (s *AccountStore) CreateAccount(_ context.Context, initialBalance decimal.Decimal) (*domain.Account, error) {
	if initialBalance.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	for {
		account := domain.NewAccount(s.idGen.Generate(), initialBalance)
		if _, loaded := s.accounts.LoadOrStore(account.ID, account); !loaded {
			return account, nil
		}
	}
}

// GetAccount retrieves an account by ID.
func (s *AccountStore) GetAccount(_ context.Context, id string) (*domain.Account, error) {
	v, ok := s.accounts.Load(id)
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, domain.ErrAccountNotFound)
	}

	return v.(*domain.Account), nil
}

// IncreaseBalance credits amount to the account.
func (s *AccountStore) IncreaseBalance(ctx context.Context, id string, amount decimal.Decimal) error {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	account.Add(amount)

	return nil
}

// DecreaseBalance debits amount from the account. It fails with
// domain.ErrInsufficientFunds rather than let the balance go negative.
func (s *AccountStore) DecreaseBalance(ctx context.Context, id string, amount decimal.Decimal) error {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	return account.Subtract(amount)
}
