package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// WithdrawalID identifies a withdrawal in the gateway's id-space.
type WithdrawalID string

// Address is an external withdrawal destination.
type Address string

// WithdrawalState is reported by the withdrawal gateway. PROCESSING is the
// only non-terminal state.
type WithdrawalState string

const (
	WithdrawalStateProcessing WithdrawalState = "PROCESSING"
	WithdrawalStateCompleted  WithdrawalState = "COMPLETED"
	WithdrawalStateFailed     WithdrawalState = "FAILED"
)

// IsTerminal reports whether no further transition can happen.
func (s WithdrawalState) IsTerminal() bool {
	return s == WithdrawalStateCompleted || s == WithdrawalStateFailed
}

// ParseWithdrawalState parses a state name as reported by a gateway.
func ParseWithdrawalState(s string) (WithdrawalState, error) {
	switch st := WithdrawalState(strings.ToUpper(strings.TrimSpace(s))); st {
	case WithdrawalStateProcessing, WithdrawalStateCompleted, WithdrawalStateFailed:
		return st, nil
	default:
		return "", fmt.Errorf("unknown withdrawal state %q", s)
	}
}

// WithdrawalRecord tracks funds frozen by a withdrawal until the gateway
// resolves it.
type WithdrawalRecord struct {
	WithdrawalID  WithdrawalID    `json:"withdrawal_id"`
	FromAccountID string          `json:"from_account_id"`
	Address       Address         `json:"address"`
	Amount        decimal.Decimal `json:"amount"`
	// Unconfirmed is set when submission to the gateway failed ambiguously,
	// so the gateway may never have accepted the id. Such records are
	// re-submitted under the same id before they are polled.
	Unconfirmed bool `json:"unconfirmed,omitempty"`
}
