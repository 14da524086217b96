package main

import (
	"context"
	"database/sql"
	"flag"
	"landmark-route-service/internal/adapters/repositories"
	"landmark-route-service/internal/config"
	"landmark-route-service/internal/platform/db"
	"landmark-route-service/internal/platform/obs"
	"log/slog"
	"os"
)

// dbtool creates the schema for the configured landmark store and loads the
// seed feed into it.
func main() {
	schemaOnly := flag.Bool("schema-only", false, "create tables without seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(obs.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat))

	conn, dialect, err := open(cfg)
	if err != nil {
		slog.Error("open database", "err", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := initAndSeed(context.Background(), conn, dialect, cfg.SeedPath, *schemaOnly); err != nil {
		slog.Error("dbtool failed", "err", err)
		os.Exit(1)
	}
}

func open(cfg config.Config) (*sql.DB, repositories.Dialect, error) {
	if cfg.LandmarkStore == "postgres" {
		conn, err := db.Open(cfg.DatabaseURL)
		return conn, repositories.Postgres, err
	}
	conn, err := db.OpenSQLite(cfg.DBPath)
	return conn, repositories.SQLite, err
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect repositories.Dialect, seedPath string, schemaOnly bool) error {
	slog.Info("initializing database schema")
	initSchema := repositories.InitSQLiteSchema
	if dialect == repositories.Postgres {
		initSchema = repositories.InitPostgresSchema
	}
	if err := initSchema(ctx, conn); err != nil {
		return err
	}
	slog.Info("schema ready")

	if schemaOnly {
		return nil
	}

	slog.Info("seeding landmarks", "path", seedPath)
	n, err := repositories.SeedFromJSON(ctx, conn, dialect, seedPath)
	if err != nil {
		return err
	}
	slog.Info("seeding complete", "count", n)

	return nil
}
