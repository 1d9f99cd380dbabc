package httpx

import (
	"log/slog"
	"net/http"

	"github.com/pricepulse/pricepulse-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Ingestion *service.IngestionService
	Retailers *service.RetailerService
	Logger    *slog.Logger // optional
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ingestionHandlers := &IngestionHandlers{Svc: services.Ingestion}
	retailerHandlers := &RetailerHandlers{Svc: services.Retailers}

	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)

	mux.HandleFunc("GET /api/retailers", retailerHandlers.List)
	mux.HandleFunc("GET /api/retailers/{retailerID}", retailerHandlers.Get)
	mux.HandleFunc("GET /api/retailer-by-slug/{slug}", retailerHandlers.GetBySlug)
	mux.HandleFunc("GET /api/retailers/{retailerID}/items", retailerHandlers.ListItems)

	mux.HandleFunc("POST /api/retailers/{retailerID}/ingestion-configs", ingestionHandlers.Create)
	mux.HandleFunc("GET /api/retailers/{retailerID}/ingestion-configs", ingestionHandlers.ListByRetailer)
	mux.HandleFunc("GET /api/ingestion-configs/{id}", ingestionHandlers.Get)
	mux.HandleFunc("PATCH /api/ingestion-configs/{id}", ingestionHandlers.Update)
	mux.HandleFunc("DELETE /api/ingestion-configs/{id}", ingestionHandlers.Delete)
	mux.HandleFunc("POST /api/ingestion-configs/{id}/trigger", ingestionHandlers.Trigger)

	mux.HandleFunc("GET /api/ingestion-strategies", ingestionHandlers.Strategies)

	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}
