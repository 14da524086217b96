package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"landmark-route-service/internal/domain"
	"landmark-route-service/internal/platform/obs"
	"strings"
)

// SQLRouteCache is a Postgres-backed cache of provider road geometry.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

func (s *SQLRouteCache) Get(
	ctx context.Context,
	key string,
) (_ []domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get route cache: key must not be empty")
	}

	q := `
	SELECT geometry
	FROM route_cache
	WHERE cache_key = $1;
	`

	var raw string
	if err := s.DB.QueryRowContext(ctx, q, key).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	coords, err := decodeGeometry([]byte(raw))
	if err != nil {
		return nil, false, fmt.Errorf("get route cache key=%q: %w", key, err)
	}

	return coords, true, nil
}

func (s *SQLRouteCache) Put(
	ctx context.Context,
	key string,
	coords []domain.Coordinates,
) error {
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

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO route_cache (cache_key, geometry)
	VALUES ($1, $2)
	ON CONFLICT (cache_key) DO UPDATE
	SET geometry = EXCLUDED.geometry,
		created_at = now();
	`, key, string(raw))
	if err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
