package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Operation errors
	ErrSameAccount    = errors.New("cannot transfer to same account")
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrInvalidAddress = errors.New("withdrawal address must not be empty")

	// Withdrawal errors
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	ErrWithdrawalIDInUse  = errors.New("withdrawal id already in use")
	ErrWithdrawalRejected = errors.New("withdrawal rejected by gateway")
	ErrGatewayUnavailable = errors.New("withdrawal gateway unavailable")
)
