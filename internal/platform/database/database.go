// Package database opens the PostgreSQL connection pool used by the parcel
// store. The pool is verified with a ping that is retried with exponential
// backoff so the service tolerates a database that starts after it.
//
//	db, err := database.Open(ctx, &cfg.Database, logger)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	// Registers the "pgx" driver with database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jsamuelsen11/parcel-service/internal/platform/config"
)

// DriverName is the database/sql driver registered by pgx.
const DriverName = "pgx"

// Open creates a connection pool from cfg and pings it until it answers or
// cfg.ConnectRetry.MaxAttempts is exhausted. The pool is closed on failure.
func Open(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open(DriverName, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("database: opening pool: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	policy := retryPolicy{
		maxAttempts:     cfg.ConnectRetry.MaxAttempts,
		initialInterval: cfg.ConnectRetry.InitialInterval,
		maxInterval:     cfg.ConnectRetry.MaxInterval,
		multiplier:      cfg.ConnectRetry.Multiplier,
	}

	if err := pingWithRetry(ctx, db, policy, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database: connecting: %w", err)
	}

	logger.InfoContext(ctx, "database connected",
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
	)

	return db, nil
}
