package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"moving-estimate-service/internal/apperr"
	"moving-estimate-service/internal/logx"
)

// OrderHandler serves HTTP endpoints for order submission.
type OrderHandler struct {
	usecase orderUsecase
	logger  logx.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(logger logx.Logger, uc orderUsecase) *OrderHandler {
	return &OrderHandler{usecase: uc, logger: logger}
}

// Register handles POST /orders.
func (h *OrderHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.usecase.Register(r.Context(), orderFromRequest(req))
	switch {
	case err == nil:
		w.Header().Set("Location", "/orders/"+strconv.FormatInt(res.CustomerID, 10))
		writeJSON(h.logger, w, r, http.StatusCreated, registerResponse{CustomerID: res.CustomerID})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "order could not be processed")
	}
}
