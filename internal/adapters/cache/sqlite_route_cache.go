package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"landmark-route-service/internal/domain"
	"strings"
)

// SQLite backed cache of provider road geometry. Keys are expected to be
// fingerprints produced by the caller.
type SqliteRouteCache struct {
	DB *sql.DB
}

func NewSqliteRouteCache(db *sql.DB) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db}
}

func (s *SqliteRouteCache) Get(ctx context.Context, key string) ([]domain.Coordinates, bool, error) {
	if s.DB == nil {
		return nil, false, errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get route cache: key must not be empty")
	}

	var raw string
	err := s.DB.QueryRowContext(ctx, `
	SELECT geometry
	FROM route_cache
	WHERE cache_key = ?;
	`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	coords, err := decodeGeometry([]byte(raw))
	if err != nil {
		return nil, false, fmt.Errorf("get route cache key=%q: %w", key, err)
	}

	return coords, true, nil
}

func (s *SqliteRouteCache) Put(ctx context.Context, key string, coords []domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	raw, err := encodeGeometry(coords)
	if err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	if _, err := s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO route_cache (
		cache_key,
		geometry
	)
	VALUES (?, ?)
	`, key, string(raw)); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
