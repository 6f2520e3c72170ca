// Package memory implements the parcel store in process memory. It backs the
// local profile and the service tests; contents are lost on restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jsamuelsen11/parcel-service/internal/domain/parcel"
	"github.com/jsamuelsen11/parcel-service/internal/ports"
)

var (
	_ ports.ParcelRepository = (*Repository)(nil)
	_ ports.HealthChecker    = (*Repository)(nil)
)

// Repository is a mutex-guarded map of parcels keyed by ID. Parcels are
// copied on the way in and out so callers never share stored state.
type Repository struct {
	mu      sync.RWMutex
	parcels map[int64]*parcel.Parcel
	lastID  int64
}

// New creates an empty repository. The first saved parcel gets ID 1.
func New() *Repository {
	return &Repository{parcels: make(map[int64]*parcel.Parcel)}
}

// Save inserts p when its ID is zero, otherwise stores it under its ID.
func (r *Repository) Save(ctx context.Context, p *parcel.Parcel) (*parcel.Parcel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stored := p.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	if stored.ID == 0 {
		r.lastID++
		stored.ID = r.lastID
	} else if stored.ID > r.lastID {
		r.lastID = stored.ID
	}
	r.parcels[stored.ID] = stored

	return stored.Clone(), nil
}

// FindByID returns a copy of the parcel with the given ID.
func (r *Repository) FindByID(ctx context.Context, id int64) (*parcel.Parcel, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.parcels[id]
	if !ok {
		return nil, false, nil
	}
	return p.Clone(), true, nil
}

// FindAll returns copies of every parcel ordered by ID.
func (r *Repository) FindAll(ctx context.Context) ([]parcel.Parcel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	out := make([]parcel.Parcel, 0, len(r.parcels))
	for _, p := range r.parcels {
		out = append(out, *p.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Delete removes the parcel with p's ID. Missing IDs are ignored.
func (r *Repository) Delete(ctx context.Context, p *parcel.Parcel) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.parcels, p.ID)
	return nil
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string {
	return "memory"
}

// HealthCheck implements ports.HealthChecker. The in-memory store is always
// available.
func (r *Repository) HealthCheck(_ context.Context) error {
	return nil
}
