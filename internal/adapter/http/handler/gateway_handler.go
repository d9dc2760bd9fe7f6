package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/iho/moneyledger/internal/adapter/gateway"
	"github.com/iho/moneyledger/internal/domain"
	"github.com/iho/moneyledger/internal/usecase"
)

// GatewayHandler exposes a withdrawal processor over the REST contract that
// gateway.HTTPClient speaks.
type GatewayHandler struct {
	processor usecase.WithdrawalGateway
}

// NewGatewayHandler creates a new GatewayHandler.
func NewGatewayHandler(processor usecase.WithdrawalGateway) *GatewayHandler {
	return &GatewayHandler{processor: processor}
}

// Request accepts a withdrawal.
func (h *GatewayHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req gateway.WithdrawalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	switch {
	case strings.TrimSpace(string(req.ID)) == "":
		writeError(w, http.StatusBadRequest, "missing withdrawal id", "")
		return
	case strings.TrimSpace(string(req.Address)) == "":
		writeError(w, http.StatusBadRequest, domain.ErrInvalidAddress.Error(), "")
		return
	case !req.Amount.IsPositive():
		writeError(w, http.StatusBadRequest, domain.ErrInvalidAmount.Error(), "")
		return
	}

	err := h.processor.RequestWithdrawal(r.Context(), req.ID, req.Address, req.Amount)
	switch {
	case err == nil:
		writeJSON(w, http.StatusAccepted, map[string]domain.WithdrawalID{"id": req.ID})
	case errors.Is(err, domain.ErrWithdrawalIDInUse):
		writeError(w, http.StatusConflict, "withdrawal id in use", string(req.ID))
	default:
		hlog.FromRequest(r).Error().Err(err).Str("withdrawal_id", string(req.ID)).Msg("withdrawal request failed")
		writeError(w, http.StatusInternalServerError, "withdrawal request failed", err.Error())
	}
}

// GetState reports the state of a withdrawal.
func (h *GatewayHandler) GetState(w http.ResponseWriter, r *http.Request) {
	id := domain.WithdrawalID(chi.URLParam(r, "id"))

	state, err := h.processor.GetState(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, gateway.StateResponse{State: state})
	case errors.Is(err, domain.ErrWithdrawalNotFound):
		writeError(w, http.StatusNotFound, "withdrawal not found", string(id))
	default:
		hlog.FromRequest(r).Error().Err(err).Str("withdrawal_id", string(id)).Msg("withdrawal lookup failed")
		writeError(w, http.StatusInternalServerError, "withdrawal lookup failed", err.Error())
	}
}
