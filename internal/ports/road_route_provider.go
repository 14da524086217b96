package ports

import (
	"context"
	"errors"
	"landmark-route-service/internal/domain"
)

// ErrRoutingUnavailable wraps every failure of an external road-routing
// provider: timeouts, network errors, non-2xx responses and unusable payloads.
var ErrRoutingUnavailable = errors.New("road routing unavailable")

// Contract for retrieving road geometry through an ordered list of waypoints.
type RoadRouteProvider interface {
	// Return the road geometry visiting waypoints in order.
	Route(ctx context.Context, waypoints []domain.Coordinates) ([]domain.Coordinates, error)
}
