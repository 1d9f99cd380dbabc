package httpx

import (
	"net/http"

	"github.com/pricepulse/pricepulse-api/internal/core"
	"github.com/pricepulse/pricepulse-api/internal/service"
)

// RetailerHandlers provides HTTP handlers for the retailer read model.
type RetailerHandlers struct {
	Svc *service.RetailerService
}

// List handles HTTP requests to list retailers.
func (h *RetailerHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	retailers, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, retailers)
}

// Get handles HTTP requests to fetch one retailer by id.
func (h *RetailerHandlers) Get(w http.ResponseWriter, r *http.Request) {
	retailerID, ok := uuidParam(w, r, "retailerID")
	if !ok {
		return
	}

	retailer, err := h.Svc.GetByID(r.Context(), retailerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, retailer)
}

// GetBySlug handles HTTP requests to fetch one retailer by slug.
func (h *RetailerHandlers) GetBySlug(w http.ResponseWriter, r *http.Request) {
	retailer, err := h.Svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, retailer)
}

// ListItems handles HTTP requests to list a retailer's ingested catalog items.
func (h *RetailerHandlers) ListItems(w http.ResponseWriter, r *http.Request) {
	retailerID, ok := uuidParam(w, r, "retailerID")
	if !ok {
		return
	}

	limit, offset := pagination(r)
	items, err := h.Svc.ListItems(r.Context(), core.RetailerItemListOptions{
		RetailerID: retailerID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, items)
}
