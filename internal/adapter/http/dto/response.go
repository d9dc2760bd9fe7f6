package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/moneyledger/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string          `json:"id"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Balance:   a.Balance(),
		CreatedAt: a.CreatedAt,
	}
}

// StatusResponse acknowledges a completed operation.
type StatusResponse struct {
	Status string `json:"status"`
}

// WithdrawalResponse is returned when a withdrawal has been accepted.
type WithdrawalResponse struct {
	ID domain.WithdrawalID `json:"id"`
}

// WithdrawalStateResponse reports the gateway state of a withdrawal.
type WithdrawalStateResponse struct {
	ID    domain.WithdrawalID    `json:"id"`
	State domain.WithdrawalState `json:"state"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
