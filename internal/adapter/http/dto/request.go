package dto

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/moneyledger/internal/domain"
	"github.com/iho/moneyledger/internal/usecase"
)

// ErrMissingField is returned when a required request field is absent.
var ErrMissingField = errors.New("missing required field")

// OpenAccountRequest represents a request to open an account.
type OpenAccountRequest struct {
	InitialBalance decimal.NullDecimal `json:"initial_balance"`
}

// ToUseCaseInput converts to use case input.
func (r *OpenAccountRequest) ToUseCaseInput() (usecase.OpenAccountInput, error) {
	if !r.InitialBalance.Valid {
		return usecase.OpenAccountInput{}, fmt.Errorf("%w: initial_balance", ErrMissingField)
	}

	return usecase.OpenAccountInput{InitialBalance: r.InitialBalance.Decimal}, nil
}

// TransferRequest represents a request to move funds between accounts.
type TransferRequest struct {
	From   string              `json:"from"`
	To     string              `json:"to"`
	Amount decimal.NullDecimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *TransferRequest) ToUseCaseInput() (usecase.TransferInput, error) {
	switch {
	case r.From == "":
		return usecase.TransferInput{}, fmt.Errorf("%w: from", ErrMissingField)
	case r.To == "":
		return usecase.TransferInput{}, fmt.Errorf("%w: to", ErrMissingField)
	case !r.Amount.Valid:
		return usecase.TransferInput{}, fmt.Errorf("%w: amount", ErrMissingField)
	}

	return usecase.TransferInput{
		FromAccountID: r.From,
		ToAccountID:   r.To,
		Amount:        r.Amount.Decimal,
	}, nil
}

// WithdrawRequest represents a request to withdraw funds to an address.
type WithdrawRequest struct {
	AccountID string              `json:"account_id"`
	Address   string              `json:"address"`
	Amount    decimal.NullDecimal `json:"amount"`
}

// ToUseCaseInput converts to use case input. A blank address is left to
// the use case, which rejects it with domain.ErrInvalidAddress.
func (r *WithdrawRequest) ToUseCaseInput() (usecase.WithdrawInput, error) {
	switch {
	case r.AccountID == "":
		return usecase.WithdrawInput{}, fmt.Errorf("%w: account_id", ErrMissingField)
	case !r.Amount.Valid:
		return usecase.WithdrawInput{}, fmt.Errorf("%w: amount", ErrMissingField)
	}

	return usecase.WithdrawInput{
		FromAccountID: r.AccountID,
		Address:       domain.Address(r.Address),
		Amount:        r.Amount.Decimal,
	}, nil
}
