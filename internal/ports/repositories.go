package ports

import (
	"context"

	"github.com/jsamuelsen11/parcel-service/internal/domain/parcel"
)

// ParcelRepository defines the storage port for parcel records keyed by ID.
// Implemented by storage adapters; called by the application layer.
// Operations are primitive and unconditional: existence rules belong to the
// service layer.
type ParcelRepository interface {
	// Save inserts the parcel when its ID is zero and returns it with the
	// store-assigned ID; otherwise it overwrites the stored row with that ID.
	Save(ctx context.Context, p *parcel.Parcel) (*parcel.Parcel, error)

	// FindByID looks up a parcel by ID. found is false, with a nil error,
	// when no such parcel exists.
	FindByID(ctx context.Context, id int64) (p *parcel.Parcel, found bool, err error)

	// FindAll returns every stored parcel ordered by ID.
	FindAll(ctx context.Context) ([]parcel.Parcel, error)

	// Delete removes the stored row matching the parcel's ID.
	Delete(ctx context.Context, p *parcel.Parcel) error
}
