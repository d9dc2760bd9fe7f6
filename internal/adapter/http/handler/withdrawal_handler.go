package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/moneyledger/internal/adapter/http/dto"
	"github.com/iho/moneyledger/internal/domain"
	"github.com/iho/moneyledger/internal/infrastructure/idgen"
	"github.com/iho/moneyledger/internal/usecase"
)

// WithdrawalService defines the behavior needed by WithdrawalHandler.
type WithdrawalService interface {
	Withdraw(ctx context.Context, input usecase.WithdrawInput) (domain.WithdrawalID, error)
	WithdrawalState(ctx context.Context, id domain.WithdrawalID) (domain.WithdrawalState, error)
}

// WithdrawalHandler handles withdrawal-related HTTP requests.
type WithdrawalHandler struct {
	ledgerUC WithdrawalService
}

// NewWithdrawalHandler creates a new WithdrawalHandler.
func NewWithdrawalHandler(ledgerUC WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{ledgerUC: ledgerUC}
}

// Create submits a withdrawal. The response is sent once the gateway has
// accepted it; the outcome is reported by GetState.
func (h *WithdrawalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	id, err := h.ledgerUC.Withdraw(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, "withdrawal failed", err)
		return
	}

	writeJSON(w, http.StatusAccepted, dto.WithdrawalResponse{ID: id})
}

// GetState reports the state of a withdrawal.
func (h *WithdrawalHandler) GetState(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !idgen.IsWithdrawalID(id) {
		writeError(w, http.StatusBadRequest, "invalid withdrawal ID", id)
		return
	}

	state, err := h.ledgerUC.WithdrawalState(r.Context(), domain.WithdrawalID(id))
	if err != nil {
		writeDomainError(w, r, "failed to get withdrawal", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.WithdrawalStateResponse{ID: domain.WithdrawalID(id), State: state})
}
