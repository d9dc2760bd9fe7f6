package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transfer represents a money movement between two accounts.
type Transfer struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
}

// Validate validates transfer request.
func (t *Transfer) Validate() error {
	if t.FromAccountID == t.ToAccountID {
		return ErrSameAccount
	}

	return ValidateAmount(t.Amount)
}

// Withdrawal represents a request to move funds out of the ledger.
type Withdrawal struct {
	FromAccountID string
	Address       Address
	Amount        decimal.Decimal
}

// Validate validates withdrawal request.
func (w *Withdrawal) Validate() error {
	if strings.TrimSpace(string(w.Address)) == "" {
		return ErrInvalidAddress
	}

	return ValidateAmount(w.Amount)
}

// ValidateAmount checks that amount is strictly positive.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	return nil
}
