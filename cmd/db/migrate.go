package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/pouch-wallet/internal/config"
	pgstore "github/chapool/pouch-wallet/internal/store/postgres"
	"github/chapool/pouch-wallet/internal/util/command"
)

func newMigrate() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Executes all pending metadata store migrations",
		Long: `Executes all pending migrations of the postgres metadata store.

Requires configuration through POUCH_PG_DSN.
Only needed with POUCH_STORE_BACKEND=postgres; the server migrates on start as well.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return applyMigrations(cmd.Context(), command.ServerConfig())
		},
	}
}

func applyMigrations(ctx context.Context, cfg config.Server) error {
	command.ConfigureLogger(cfg)

	db, err := sql.Open("postgres", cfg.Store.PostgresDSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	n, err := pgstore.Migrate(db)
	if err != nil {
		log.Error().Err(err).Msg("Error while applying migrations")
		return err
	}

	log.Info().Int("appliedMigrationsCount", n).Msg("Applied migrations")

	return nil
}
