package domain

import (
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

// Account is a balance cell that can be updated concurrently without locks.
// The ID doubles as the account's address. An Account must not be copied.
type Account struct {
	ID        string
	CreatedAt time.Time

	balance atomic.Pointer[decimal.Decimal]
}

// NewAccount creates an account holding the given initial balance.
func NewAccount(id string, initialBalance decimal.Decimal) *Account {
	a := &Account{
		ID:        id,
		CreatedAt: time.Now().UTC(),
	}
	a.balance.Store(&initialBalance)

	return a
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return *a.balance.Load()
}

// Add increases the balance by amount. It retries until its own update lands.
func (a *Account) Add(amount decimal.Decimal) {
	for {
		current := a.balance.Load()
		next := current.Add(amount)
		if a.balance.CompareAndSwap(current, &next) {
			return
		}
	}
}

// Subtract decreases the balance by amount.
//
// It fails with ErrInsufficientFunds as soon as the balance it observes cannot
// cover the amount, even if a concurrent Add is in flight. When another writer
// wins the race the whole read-compute-check sequence starts over.
func (a *Account) Subtract(amount decimal.Decimal) error {
	for {
		current := a.balance.Load()
		next := current.Sub(amount)
		if next.IsNegative() {
			return ErrInsufficientFunds
		}
		if a.balance.CompareAndSwap(current, &next) {
			return nil
		}
	}
}
