package ports

import (
	"context"

	"github.com/jsamuelsen11/parcel-service/internal/domain/parcel"
)

// ParcelService defines the service port for parcel lifecycle operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type ParcelService interface {
	// CreateParcel stores a new parcel and returns it with its assigned ID.
	// Returns domain.ErrValidation if a mandatory field is missing.
	CreateParcel(ctx context.Context, p *parcel.Parcel) (*parcel.Parcel, error)

	// ListParcels returns every stored parcel. The slice is empty, not nil,
	// when no parcels exist.
	ListParcels(ctx context.Context) ([]parcel.Parcel, error)

	// GetParcel returns a single parcel by ID.
	// Returns domain.ErrNotFound if the parcel does not exist.
	GetParcel(ctx context.Context, id int64) (*parcel.Parcel, error)

	// UpdateParcel replaces every mutable field of an existing parcel and
	// returns the persisted record. The ID is preserved.
	// Returns domain.ErrNotFound if the parcel does not exist.
	// Returns domain.ErrValidation if a mandatory field is missing.
	UpdateParcel(ctx context.Context, id int64, p *parcel.Parcel) (*parcel.Parcel, error)

	// DeleteParcel removes an existing parcel.
	// Returns domain.ErrNotFound if the parcel does not exist.
	DeleteParcel(ctx context.Context, id int64) error
}
