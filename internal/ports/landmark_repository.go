package ports

import (
	"context"
	"landmark-route-service/internal/domain"
)

// Port: a boundary for retrieving landmark records from a data source.
type LandmarkRepository interface {
	// Retrieve all landmarks available for routing, malformed ones included.
	ListLandmarks(ctx context.Context) ([]domain.LandmarkRecord, error)
}
