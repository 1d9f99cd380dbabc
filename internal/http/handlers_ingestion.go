// Package httpx provides HTTP handlers and utilities for the pricepulse ingestion API.
package httpx

import (
	"net/http"

	"github.com/pricepulse/pricepulse-api/internal/core"
	"github.com/pricepulse/pricepulse-api/internal/domain/model"
	apperrors "github.com/pricepulse/pricepulse-api/internal/errors"
	"github.com/pricepulse/pricepulse-api/internal/service"
)

// IngestionHandlers provides HTTP handlers for ingestion configuration
// management and trigger operations using the orchestration service layer.
type IngestionHandlers struct {
	Svc *service.IngestionService
}

// writeServiceError maps service-layer error categories to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.IsNotFound(err):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
	case apperrors.IsValidation(err):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
	case apperrors.IsUnsupportedStrategy(err):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "unsupported_strategy", Err: err})
	case apperrors.IsConflict(err):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "conflict", Err: err})
	default:
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal_error", Err: err})
	}
}

// Create handles HTTP requests to create a new ingestion configuration for a retailer.
func (h *IngestionHandlers) Create(w http.ResponseWriter, r *http.Request) {
	retailerID, ok := uuidParam(w, r, "retailerID")
	if !ok {
		return
	}
	var req *model.CreateIngestionConfigRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	cfg, err := h.Svc.Create(r.Context(), retailerID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, cfg)
}

// Get handles HTTP requests to fetch one ingestion configuration.
func (h *IngestionHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	cfg, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, cfg)
}

// ListByRetailer handles HTTP requests to list a retailer's ingestion configurations.
func (h *IngestionHandlers) ListByRetailer(w http.ResponseWriter, r *http.Request) {
	retailerID, ok := uuidParam(w, r, "retailerID")
	if !ok {
		return
	}

	limit, offset := pagination(r)
	configs, err := h.Svc.ListByRetailer(r.Context(), core.IngestionConfigListOptions{
		RetailerID: retailerID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, configs)
}

// Update handles HTTP requests to update an ingestion configuration.
func (h *IngestionHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req model.UpdateIngestionConfigRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	cfg, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, cfg)
}

// Delete handles HTTP requests to delete an ingestion configuration.
func (h *IngestionHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     apperrors.NotFound("ingestion config not found"),
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Trigger handles HTTP requests to run an ingestion configuration now.
// Partial failures return 200 with Success=false in the body; only
// pre-execution failures map to error statuses.
func (h *IngestionHandlers) Trigger(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	result, err := h.Svc.Trigger(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// Strategies handles HTTP requests to list registered ingestion strategies.
func (h *IngestionHandlers) Strategies(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Svc.Strategies())
}
