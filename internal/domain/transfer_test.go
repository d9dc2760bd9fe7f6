package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransfer_Validate(t *testing.T) {
	tests := []struct {
		name        string
		fromID      string
		toID        string
		amount      decimal.Decimal
		expectError error
	}{
		{
			name:        "valid transfer",
			fromID:      "account-1",
			toID:        "account-2",
			amount:      decimal.NewFromInt(100),
			expectError: nil,
		},
		{
			name:        "same account",
			fromID:      "account-1",
			toID:        "account-1",
			amount:      decimal.NewFromInt(100),
			expectError: ErrSameAccount,
		},
		{
			name:        "zero amount",
			fromID:      "account-1",
			toID:        "account-2",
			amount:      decimal.Zero,
			expectError: ErrInvalidAmount,
		},
		{
			name:        "negative amount",
			fromID:      "account-1",
			toID:        "account-2",
			amount:      decimal.NewFromInt(-100),
			expectError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transfer := &Transfer{
				FromAccountID: tt.fromID,
				ToAccountID:   tt.toID,
				Amount:        tt.amount,
			}

			err := transfer.Validate()

			if tt.expectError == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.expectError != nil && err != tt.expectError {
				t.Errorf("expected error %v, got %v", tt.expectError, err)
			}
		})
	}
}

func TestWithdrawal_Validate(t *testing.T) {
	tests := []struct {
		name        string
		address     Address
		amount      decimal.Decimal
		expectError error
	}{
		{name: "valid withdrawal", address: "addr-1", amount: decimal.RequireFromString("30.00")},
		{name: "empty address", address: "", amount: decimal.NewFromInt(1), expectError: ErrInvalidAddress},
		{name: "blank address", address: "   ", amount: decimal.NewFromInt(1), expectError: ErrInvalidAddress},
		{name: "zero amount", address: "addr-1", amount: decimal.Zero, expectError: ErrInvalidAmount},
		{name: "negative amount", address: "addr-1", amount: decimal.NewFromInt(-30), expectError: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Withdrawal{FromAccountID: "account-1", Address: tt.address, Amount: tt.amount}

			if err := w.Validate(); err != tt.expectError {
				t.Errorf("expected error %v, got %v", tt.expectError, err)
			}
		})
	}
}
