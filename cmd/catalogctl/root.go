package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"courserec-backend/internal/shared/config"
	"courserec-backend/internal/shared/storage/db"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Manage the course catalog",
	Long: `catalogctl loads and seeds the course catalog backing the
recommendation API. It connects to the database configured through the same
environment variables the API server uses (DB_DRIVER, DATABASE_URL,
SQLITE_PATH).`,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// openCatalogDB connects per the environment config and applies migrations.
func openCatalogDB(ctx context.Context) (*sql.DB, error) {
	cfg := config.Load()
	if cfg.DBDriver != "postgres" && cfg.DBDriver != "sqlite" {
		return nil, errors.New("catalogctl requires DB_DRIVER=postgres or DB_DRIVER=sqlite")
	}

	dsn := cfg.DatabaseURL
	if cfg.DBDriver == "sqlite" {
		dsn = cfg.SQLitePath
	}

	conn, err := db.Connect(ctx, cfg.DBDriver, dsn, db.OptionsFromEnv(db.DefaultMigrateOptions()))
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}
	if err := db.RunMigrations(ctx, conn, cfg.DBDriver); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "run migrations")
	}
	return conn, nil
}
