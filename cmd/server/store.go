package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/parcel-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/parcel-service/internal/adapters/storage/postgres"
	"github.com/jsamuelsen11/parcel-service/internal/platform/config"
	"github.com/jsamuelsen11/parcel-service/internal/platform/database"
	"github.com/jsamuelsen11/parcel-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/parcel-service/internal/ports"
)

// parcelStore is a storage adapter that also reports its own health.
type parcelStore interface {
	ports.ParcelRepository
	ports.HealthChecker
}

// openStore builds the storage adapter selected by cfg.Driver. The returned
// close function releases the adapter's resources and is never nil.
func openStore(
	ctx context.Context,
	cfg *config.DatabaseConfig,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) (parcelStore, func() error, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory parcel store; data is lost on restart")
		return memory.New(), func() error { return nil }, nil

	case config.DriverPostgres:
		db, err := database.Open(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		if cfg.AutoMigrate {
			if err := postgres.InitSchema(ctx, db); err != nil {
				_ = db.Close()
				return nil, nil, err
			}
			logger.Info("parcel schema ready")
		}
		return postgres.New(db, cfg.CircuitBreaker, metrics, logger), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
