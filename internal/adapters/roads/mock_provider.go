package roads

import (
	"context"
	"fmt"
	"landmark-route-service/internal/domain"
	"landmark-route-service/internal/ports"
	"slices"
	"sync"
)

// MockProvider returns a canned geometry or error and records each call.
type MockProvider struct {
	Geometry []domain.Coordinates
	Err      error

	mu    sync.Mutex
	calls [][]domain.Coordinates
}

// NewStraightLineProvider returns a mock that echoes the waypoints back as
// the road geometry.
func NewStraightLineProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Route(ctx context.Context, waypoints []domain.Coordinates) ([]domain.Coordinates, error) {
	m.mu.Lock()
	m.calls = append(m.calls, slices.Clone(waypoints))
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrRoutingUnavailable, err)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Geometry != nil {
		return slices.Clone(m.Geometry), nil
	}
	return slices.Clone(waypoints), nil
}

// Calls returns the waypoint lists received so far.
func (m *MockProvider) Calls() [][]domain.Coordinates {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.calls)
}
