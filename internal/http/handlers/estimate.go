package handlers

import (
	"errors"
	"net/http"

	"moving-estimate-service/internal/apperr"
	"moving-estimate-service/internal/logx"
)

// EstimateHandler serves HTTP endpoints for price estimates.
type EstimateHandler struct {
	usecase estimateUsecase
	logger  logx.Logger
}

// NewEstimateHandler creates a new EstimateHandler.
func NewEstimateHandler(logger logx.Logger, uc estimateUsecase) *EstimateHandler {
	return &EstimateHandler{usecase: uc, logger: logger}
}

// Quote handles POST /estimate.
func (h *EstimateHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	price, err := h.usecase.Quote(r.Context(), orderFromRequest(req))
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, estimateResponse{Price: price})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrRateMissing):
		writeError(h.logger, w, r, http.StatusInternalServerError, "estimate could not be processed")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Prefectures handles GET /prefectures.
func (h *EstimateHandler) Prefectures(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.usecase.Prefectures(r.Context())
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, prefecturesToResponse(prefs))
}
