package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// InitSQLiteSchema creates the landmark and route cache tables.
func InitSQLiteSchema(ctx context.Context, db *sql.DB) error {
	return initSchema(ctx, db, []string{
		`
	CREATE TABLE IF NOT EXISTS landmarks (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat REAL,
		lng REAL
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS route_cache (
		cache_key TEXT PRIMARY KEY,
		geometry TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_landmarks_name
	ON landmarks(name);
	`,
	})
}

// InitPostgresSchema creates the same tables on Postgres.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	return initSchema(ctx, db, []string{
		`
	CREATE TABLE IF NOT EXISTS landmarks (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS route_cache (
		cache_key TEXT PRIMARY KEY,
		geometry TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_landmarks_name
	ON landmarks(name);
	`,
	})
}

func initSchema(ctx context.Context, db *sql.DB, statements []string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
