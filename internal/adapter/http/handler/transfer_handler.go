package handler

import (
	"context"
	"net/http"

	"github.com/iho/moneyledger/internal/adapter/http/dto"
	"github.com/iho/moneyledger/internal/usecase"
)

// TransferService defines the behavior needed by TransferHandler.
type TransferService interface {
	Transfer(ctx context.Context, input usecase.TransferInput) error
}

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	ledgerUC TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(ledgerUC TransferService) *TransferHandler {
	return &TransferHandler{ledgerUC: ledgerUC}
}

// Create moves funds between two accounts.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.ledgerUC.Transfer(r.Context(), input); err != nil {
		writeDomainError(w, r, "transfer failed", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "ok"})
}
