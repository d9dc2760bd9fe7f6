package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/moneyledger/internal/adapter/http/dto"
	"github.com/iho/moneyledger/internal/domain"
	"github.com/iho/moneyledger/internal/usecase"
)

type transferServiceStub struct {
	transferFn func(ctx context.Context, input usecase.TransferInput) error
}

func (s *transferServiceStub) Transfer(ctx context.Context, input usecase.TransferInput) error {
	return s.transferFn(ctx, input)
}

func TestTransferHandler_Create_Success(t *testing.T) {
	var captured usecase.TransferInput
	handler := NewTransferHandler(&transferServiceStub{
		transferFn: func(ctx context.Context, input usecase.TransferInput) error {
			captured = input
			return nil
		},
	})

	body := `{"from":"acc-1","to":"acc-2","amount":"399.9999999999999"}`
	req := httptest.NewRequest(http.MethodPost, "/transfers", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.FromAccountID != "acc-1" || captured.ToAccountID != "acc-2" ||
		!captured.Amount.Equal(decimal.RequireFromString("399.9999999999999")) {
		t.Fatalf("unexpected input %+v", captured)
	}

	var resp dto.StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Fatalf("expected status ok, got %+v", resp)
	}
}

func TestTransferHandler_Create_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{"invalid json", "{", nil, http.StatusBadRequest},
		{"missing amount", `{"from":"a","to":"b"}`, nil, http.StatusBadRequest},
		{"insufficient funds", `{"from":"a","to":"b","amount":"1"}`, domain.ErrInsufficientFunds, http.StatusBadRequest},
		{"same account", `{"from":"a","to":"a","amount":"1"}`, domain.ErrSameAccount, http.StatusBadRequest},
		{"unknown receiver", `{"from":"a","to":"b","amount":"1"}`, domain.ErrAccountNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTransferHandler(&transferServiceStub{
				transferFn: func(ctx context.Context, input usecase.TransferInput) error {
					if tt.serviceErr == nil {
						t.Fatal("Transfer should not be called for invalid payload")
					}
					return tt.serviceErr
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/transfers", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}
