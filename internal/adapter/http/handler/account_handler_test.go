package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/moneyledger/internal/adapter/http/dto"
	"github.com/iho/moneyledger/internal/domain"
	"github.com/iho/moneyledger/internal/usecase"
)

const testAccountID = "01ARZ3NDEKTSV4RRFFQ69G5FAV"

type accountServiceStub struct {
	openFn func(ctx context.Context, input usecase.OpenAccountInput) (*domain.Account, error)
	getFn  func(ctx context.Context, id string) (*domain.Account, error)
}

func (s *accountServiceStub) OpenAccount(ctx context.Context, input usecase.OpenAccountInput) (*domain.Account, error) {
	return s.openFn(ctx, input)
}

func (s *accountServiceStub) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return s.getFn(ctx, id)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestAccountHandler_Create_Success(t *testing.T) {
	var captured usecase.OpenAccountInput
	handler := NewAccountHandler(&accountServiceStub{
		openFn: func(ctx context.Context, input usecase.OpenAccountInput) (*domain.Account, error) {
			captured = input
			return domain.NewAccount(testAccountID, input.InitialBalance), nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(`{"initial_balance":"400.00"}`))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if !captured.InitialBalance.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != testAccountID || !resp.Balance.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestAccountHandler_Create_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", "{invalid"},
		{"missing balance", "{}"},
		{"invalid decimal", `{"initial_balance":"ten"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAccountHandler(&accountServiceStub{
				openFn: func(ctx context.Context, input usecase.OpenAccountInput) (*domain.Account, error) {
					t.Fatal("OpenAccount should not be called for invalid payload")
					return nil, nil
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestAccountHandler_Create_NegativeBalance(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		openFn: func(ctx context.Context, input usecase.OpenAccountInput) (*domain.Account, error) {
			return nil, domain.ErrInvalidAmount
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(`{"initial_balance":"-1"}`))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAccountHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		getErr     error
		wantStatus int
	}{
		{"found", testAccountID, nil, http.StatusOK},
		{"not found", testAccountID, fmt.Errorf("account %s: %w", testAccountID, domain.ErrAccountNotFound), http.StatusNotFound},
		{"malformed id", "not-a-ulid", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAccountHandler(&accountServiceStub{
				getFn: func(ctx context.Context, id string) (*domain.Account, error) {
					if tt.getErr != nil {
						return nil, tt.getErr
					}
					return domain.NewAccount(id, decimal.RequireFromString("370")), nil
				},
			})

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/accounts/"+tt.id, nil), "id", tt.id)
			rec := httptest.NewRecorder()

			handler.Get(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp dto.AccountResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Balance.String() != "370" {
				t.Fatalf("expected balance 370, got %s", resp.Balance)
			}
		})
	}
}
