package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/parcel-service/internal/adapters/storage/postgres"
	"github.com/jsamuelsen11/parcel-service/internal/platform/config"
	"github.com/jsamuelsen11/parcel-service/internal/platform/database"
	"github.com/jsamuelsen11/parcel-service/internal/platform/logging"
)

const defaultSeedFile = "data/seeds/parcels.json"

type rootOptions struct {
	profile   string
	configDir string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "dbtool",
		Short:        "Manage the parcel database schema and seed data",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.profile, "profile", os.Getenv("APP_PROFILE"), "config profile (defaults to APP_PROFILE)")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs", "directory holding the config YAML files")

	cmd.AddCommand(migrateCmd(opts), seedCmd(opts))
	return cmd
}

func migrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the parcels table if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(cmd.Context(), opts, func(ctx context.Context, db *sql.DB, _ *slog.Logger) error {
				if err := postgres.InitSchema(ctx, db); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "schema ready")
				return nil
			})
		},
	}
}

func seedCmd(opts *rootOptions) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "seed",
		Short: "Create the schema and insert parcels from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Reject a bad file before touching the database.
			if _, err := postgres.LoadSeeds(file); err != nil {
				return err
			}

			return withDatabase(cmd.Context(), opts, func(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
				if err := postgres.InitSchema(ctx, db); err != nil {
					return err
				}
				n, err := postgres.SeedFromJSON(ctx, db, file)
				if err != nil {
					return err
				}
				logger.InfoContext(ctx, "seeded parcels", slog.String("file", file), slog.Int("count", n))
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %d parcels\n", n)
				return nil
			})
		},
	}

	c.Flags().StringVarP(&file, "file", "f", defaultSeedFile, "JSON file with an array of parcels")
	return c
}

// withDatabase loads config, opens the postgres pool, runs fn, and closes
// the pool.
func withDatabase(
	ctx context.Context,
	opts *rootOptions,
	fn func(ctx context.Context, db *sql.DB, logger *slog.Logger) error,
) error {
	if opts.profile == "" {
		return errors.New("profile is required: pass --profile or set APP_PROFILE")
	}

	cfg, err := config.Load(opts.profile, config.WithConfigDir(opts.configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("profile %q uses the %s driver; dbtool requires %s",
			opts.profile, cfg.Database.Driver, config.DriverPostgres)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	db, err := database.Open(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	return fn(ctx, db, logger)
}
