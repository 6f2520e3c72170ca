// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/parcel-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	parcelHandler *handlers.ParcelHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/parcels", func(r chi.Router) {
		r.Post("/", parcelHandler.CreateParcel)
		r.Get("/", parcelHandler.ListParcels)
		r.Get("/{id}", parcelHandler.GetParcel)
		r.Put("/{id}", parcelHandler.UpdateParcel)
		r.Delete("/{id}", parcelHandler.DeleteParcel)
	})

	return r
}
