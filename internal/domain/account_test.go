package domain

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAccount_Subtract(t *testing.T) {
	tests := []struct {
		name        string
		balance     decimal.Decimal
		amount      decimal.Decimal
		expectError error
		expected    decimal.Decimal
	}{
		{
			name:     "debit less than balance",
			balance:  decimal.NewFromInt(100),
			amount:   decimal.NewFromInt(50),
			expected: decimal.NewFromInt(50),
		},
		{
			name:     "debit exact balance",
			balance:  decimal.NewFromInt(100),
			amount:   decimal.NewFromInt(100),
			expected: decimal.Zero,
		},
		{
			name:        "debit more than balance",
			balance:     decimal.NewFromInt(100),
			amount:      decimal.NewFromInt(150),
			expectError: ErrInsufficientFunds,
			expected:    decimal.NewFromInt(100),
		},
		{
			name:        "smallest fraction over balance",
			balance:     decimal.RequireFromString("0.0000000000001"),
			amount:      decimal.RequireFromString("0.0000000000002"),
			expectError: ErrInsufficientFunds,
			expected:    decimal.RequireFromString("0.0000000000001"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := NewAccount("acc-1", tt.balance)

			err := acc.Subtract(tt.amount)

			if !errors.Is(err, tt.expectError) {
				t.Fatalf("expected error %v, got %v", tt.expectError, err)
			}
			if !acc.Balance().Equal(tt.expected) {
				t.Fatalf("expected balance %s, got %s", tt.expected, acc.Balance())
			}
		})
	}
}

func TestAccount_Add(t *testing.T) {
	acc := NewAccount("acc-1", decimal.Zero)

	acc.Add(decimal.RequireFromString("0.1"))
	acc.Add(decimal.RequireFromString("0.2"))

	if !acc.Balance().Equal(decimal.RequireFromString("0.3")) {
		t.Fatalf("expected 0.3, got %s", acc.Balance())
	}
}

func TestAccount_ConcurrentSubtractNeverNegative(t *testing.T) {
	const workers = 200

	acc := NewAccount("acc-1", decimal.NewFromInt(1000))
	amount := decimal.NewFromInt(7)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int64
		rejected  atomic.Int64
	)

	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			if err := acc.Subtract(amount); err != nil {
				if !errors.Is(err, ErrInsufficientFunds) {
					t.Errorf("unexpected error: %v", err)
				}
				rejected.Add(1)
				return
			}
			succeeded.Add(1)
			if acc.Balance().IsNegative() {
				t.Errorf("observed negative balance %s", acc.Balance())
			}
		}()
	}
	wg.Wait()

	// 1000 / 7 = 142 debits fit; every serialization accepts exactly that many.
	if succeeded.Load() != 142 {
		t.Fatalf("expected 142 successful debits, got %d", succeeded.Load())
	}
	if rejected.Load() != workers-142 {
		t.Fatalf("expected %d rejections, got %d", workers-142, rejected.Load())
	}
	if !acc.Balance().Equal(decimal.NewFromInt(6)) {
		t.Fatalf("expected remaining balance 6, got %s", acc.Balance())
	}
}

func TestAccount_ConcurrentAddAndSubtractConserveValue(t *testing.T) {
	const rounds = 500

	acc := NewAccount("acc-1", decimal.NewFromInt(rounds))
	one := decimal.NewFromInt(1)

	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for range rounds {
		go func() {
			defer wg.Done()
			acc.Add(one)
		}()
		go func() {
			defer wg.Done()
			if err := acc.Subtract(one); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if !acc.Balance().Equal(decimal.NewFromInt(rounds)) {
		t.Fatalf("expected balance %d, got %s", rounds, acc.Balance())
	}
}
