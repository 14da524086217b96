package ports

import (
	"context"
	"landmark-route-service/internal/domain"
)

// Persistent cache of provider road geometry keyed by a waypoint fingerprint.
type RouteGeometryCache interface {
	// Return the cached geometry for key; ok is false on a miss.
	Get(ctx context.Context, key string) (coords []domain.Coordinates, ok bool, err error)
	// Store geometry for key, replacing any previous value.
	Put(ctx context.Context, key string, coords []domain.Coordinates) error
}
