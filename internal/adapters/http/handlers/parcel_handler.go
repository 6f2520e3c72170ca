// Package handlers holds the HTTP handlers of the parcel API and the
// health probes.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/parcel-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/parcel-service/internal/ports"
)

// ParcelHandler handles HTTP requests for parcel CRUD operations.
type ParcelHandler struct {
	service ports.ParcelService
}

// NewParcelHandler creates a new ParcelHandler with the given service port.
func NewParcelHandler(service ports.ParcelService) *ParcelHandler {
	return &ParcelHandler{service: service}
}

// CreateParcel handles POST /api/parcels.
func (h *ParcelHandler) CreateParcel(w http.ResponseWriter, r *http.Request) {
	p := decodeParcel(w, r)
	if p == nil {
		return
	}

	created, err := h.service.CreateParcel(r.Context(), p)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToParcelResponse(created))
}

// ListParcels handles GET /api/parcels.
func (h *ParcelHandler) ListParcels(w http.ResponseWriter, r *http.Request) {
	parcels, err := h.service.ListParcels(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToParcelListResponse(parcels))
}

// GetParcel handles GET /api/parcels/{id}.
func (h *ParcelHandler) GetParcel(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.service.GetParcel(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToParcelResponse(p))
}

// UpdateParcel handles PUT /api/parcels/{id}. The body replaces every
// mutable field of the stored parcel.
func (h *ParcelHandler) UpdateParcel(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p := decodeParcel(w, r)
	if p == nil {
		return
	}

	updated, err := h.service.UpdateParcel(r.Context(), id, p)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToParcelResponse(updated))
}

// DeleteParcel handles DELETE /api/parcels/{id}.
func (h *ParcelHandler) DeleteParcel(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.DeleteParcel(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
