// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/parcel-service/internal/domain"
	"github.com/jsamuelsen11/parcel-service/internal/domain/parcel"
	"github.com/jsamuelsen11/parcel-service/internal/platform/logging"
	"github.com/jsamuelsen11/parcel-service/internal/ports"
)

// Compile-time check that ParcelService implements ports.ParcelService.
var _ ports.ParcelService = (*ParcelService)(nil)

// ParcelService implements ports.ParcelService on top of a ParcelRepository.
// It owns the lifecycle rules: mandatory fields, existence checks before
// update and delete, and full replacement of mutable fields on update.
type ParcelService struct {
	repo   ports.ParcelRepository
	logger *slog.Logger
}

// NewParcelService creates a ParcelService. A nil logger discards output.
func NewParcelService(repo ports.ParcelRepository, logger *slog.Logger) *ParcelService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ParcelService{
		repo:   repo,
		logger: logger,
	}
}

// CreateParcel validates p and stores it as a new record. Any ID set on p is
// ignored; the store assigns one.
func (s *ParcelService) CreateParcel(ctx context.Context, p *parcel.Parcel) (*parcel.Parcel, error) {
	s.logger.InfoContext(ctx, "creating parcel")

	if err := p.Validate(); err != nil {
		return nil, err
	}

	fresh := p.Clone()
	fresh.ID = 0

	created, err := s.repo.Save(ctx, fresh)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create parcel",
			slog.String("operation", "CreateParcel"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// ListParcels returns every parcel. The result is never nil.
func (s *ParcelService) ListParcels(ctx context.Context) ([]parcel.Parcel, error) {
	s.logger.InfoContext(ctx, "listing parcels")

	parcels, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list parcels",
			slog.String("operation", "ListParcels"),
			slog.Any("error", err),
		)
		return nil, err
	}

	if parcels == nil {
		parcels = []parcel.Parcel{}
	}
	return parcels, nil
}

// GetParcel returns the parcel with the given ID or an error wrapping
// domain.ErrNotFound.
func (s *ParcelService) GetParcel(ctx context.Context, id int64) (*parcel.Parcel, error) {
	s.logger.InfoContext(ctx, "fetching parcel", slog.Int64("id", id))

	p, err := s.find(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch parcel",
			slog.String("operation", "GetParcel"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return p, nil
}

// UpdateParcel overwrites all six mutable fields of the stored parcel with
// the values in p. The stored ID is kept whatever p.ID says.
func (s *ParcelService) UpdateParcel(ctx context.Context, id int64, p *parcel.Parcel) (*parcel.Parcel, error) {
	s.logger.InfoContext(ctx, "updating parcel", slog.Int64("id", id))

	if err := p.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.find(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update parcel",
			slog.String("operation", "UpdateParcel"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	existing.ReplaceWith(p)

	updated, err := s.repo.Save(ctx, existing)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save updated parcel",
			slog.String("operation", "UpdateParcel"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// DeleteParcel removes an existing parcel.
func (s *ParcelService) DeleteParcel(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting parcel", slog.Int64("id", id))

	existing, err := s.find(ctx, id)
	if err == nil {
		err = s.repo.Delete(ctx, existing)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete parcel",
			slog.String("operation", "DeleteParcel"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// find loads a parcel and turns a miss into domain.ErrNotFound.
func (s *ParcelService) find(ctx context.Context, id int64) (*parcel.Parcel, error) {
	p, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &domain.NotFoundError{Entity: "parcel", ID: id}
	}
	return p, nil
}
