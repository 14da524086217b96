package routing

import (
	"context"
	"errors"
	"landmark-route-service/internal/domain"
	"landmark-route-service/internal/geo"
	"landmark-route-service/internal/ports"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRoutingDown = errors.New("routing down")

func failingProvider() ports.RoadRouteProvider {
	return providerFunc(func(context.Context, []domain.Coordinates) ([]domain.Coordinates, error) {
		return nil, errRoutingDown
	})
}

func TestEnrichFallbackIsDeterministic(t *testing.T) {
	g := BuildGraph(baganRecords())
	e := NewRoadEnricher(failingProvider(), time.Second)
	path := []string{"BuPaya Pagoda", "Ananda Temple", "Sulamani Temple"}

	first, err := e.Enrich(context.Background(), g, path)
	require.NoError(t, err)
	second, err := e.Enrich(context.Background(), g, path)
	require.NoError(t, err)

	assert.True(t, first.UsedFallback)
	assert.Equal(t, first, second)
}

func TestEnrichFallbackShape(t *testing.T) {
	g := BuildGraph(baganRecords())
	e := NewRoadEnricher(nil, 0)

	got, err := e.Enrich(context.Background(), g, []string{"Ananda Temple", "Gawdawpalin Temple"})
	require.NoError(t, err)

	// ~1.15 km rounds to a single waypoint.
	require.Len(t, got.Points, 3)
	assert.True(t, got.UsedFallback)
	assert.Equal(t, "Ananda Temple", got.Points[0].Label)
	assert.Equal(t, "Waypoint 1", got.Points[1].Label)
	assert.Equal(t, "Gawdawpalin Temple", got.Points[2].Label)

	a, _ := g.Node("Ananda Temple")
	b, _ := g.Node("Gawdawpalin Temple")
	mid := got.Points[1]
	assert.LessOrEqual(t, math.Abs(mid.Lat-(a.Location.Lat+b.Location.Lat)/2), 0.0005)
	assert.LessOrEqual(t, math.Abs(mid.Lng-(a.Location.Lng+b.Location.Lng)/2), 0.0005)

	want := 0.0
	for i := 0; i+1 < len(got.Points); i++ {
		p, q := got.Points[i], got.Points[i+1]
		want += geo.HaversineKm(p.Lat, p.Lng, q.Lat, q.Lng)
	}
	assert.InDelta(t, want, got.TotalDistanceKm, 1e-12)
}

func TestSegmentWaypointsCount(t *testing.T) {
	origin := domain.Coordinates{Lat: 0, Lng: 0}

	tests := []struct {
		name string
		km   float64
		want int
	}{
		{"short segment", 0.3, 0},
		{"just over threshold", 0.6, 1},
		{"rounds up", 1.3, 2},
		{"clamped", 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segmentWaypoints(origin, northOf(origin, tt.km))
			assert.Len(t, got, tt.want)
		})
	}
}

func TestJitterBounds(t *testing.T) {
	for i := 1; i <= 50; i++ {
		j := jitter(21.17+float64(i)*0.001, 94.86, i)
		assert.GreaterOrEqual(t, j, -0.0005)
		assert.Less(t, j, 0.0005)
	}
}

func TestEnrichSnapsProviderGeometry(t *testing.T) {
	g := BuildGraph(baganRecords())
	a, _ := g.Node("Ananda Temple")
	b, _ := g.Node("Gawdawpalin Temple")
	mid := domain.Coordinates{Lat: 21.172, Lng: 94.862}

	var gotWaypoints []domain.Coordinates
	provider := providerFunc(func(_ context.Context, wps []domain.Coordinates) ([]domain.Coordinates, error) {
		gotWaypoints = wps
		return []domain.Coordinates{northOf(a.Location, 0.01), mid, northOf(b.Location, 0.02)}, nil
	})

	got, err := NewRoadEnricher(provider, time.Second).Enrich(context.Background(), g, []string{"Ananda Temple", "Gawdawpalin Temple"})
	require.NoError(t, err)

	assert.Equal(t, []domain.Coordinates{a.Location, b.Location}, gotWaypoints)
	assert.False(t, got.UsedFallback)
	assert.Equal(t, []domain.RoadPoint{
		{Lat: a.Location.Lat, Lng: a.Location.Lng, Label: "Ananda Temple"},
		{Lat: mid.Lat, Lng: mid.Lng, Label: "Road waypoint"},
		{Lat: b.Location.Lat, Lng: b.Location.Lng, Label: "Gawdawpalin Temple"},
	}, got.Points)

	want := geo.HaversineKm(a.Location.Lat, a.Location.Lng, mid.Lat, mid.Lng) +
		geo.HaversineKm(mid.Lat, mid.Lng, b.Location.Lat, b.Location.Lng)
	assert.InDelta(t, want, got.TotalDistanceKm, 1e-12)
}

func TestEnrichFallsBackOnShortGeometry(t *testing.T) {
	g := BuildGraph(baganRecords())
	provider := providerFunc(func(_ context.Context, wps []domain.Coordinates) ([]domain.Coordinates, error) {
		return wps[:1], nil
	})

	got, err := NewRoadEnricher(provider, time.Second).Enrich(context.Background(), g, []string{"Ananda Temple", "Gawdawpalin Temple"})
	require.NoError(t, err)
	assert.True(t, got.UsedFallback)
}

func TestEnrichFallsBackOnTimeout(t *testing.T) {
	g := BuildGraph(baganRecords())
	provider := providerFunc(func(ctx context.Context, _ []domain.Coordinates) ([]domain.Coordinates, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	got, err := NewRoadEnricher(provider, 10*time.Millisecond).Enrich(context.Background(), g, []string{"Ananda Temple", "Gawdawpalin Temple"})
	require.NoError(t, err)
	assert.True(t, got.UsedFallback)
}

func TestEnrichSingleLandmark(t *testing.T) {
	g := BuildGraph(baganRecords())

	got, err := NewRoadEnricher(failingProvider(), time.Second).Enrich(context.Background(), g, []string{"Ananda Temple"})
	require.NoError(t, err)

	require.Len(t, got.Points, 1)
	assert.Equal(t, "Ananda Temple", got.Points[0].Label)
	assert.Zero(t, got.TotalDistanceKm)
	assert.False(t, got.UsedFallback)
}

func TestEnrichUnknownLandmark(t *testing.T) {
	g := BuildGraph(baganRecords())

	_, err := NewRoadEnricher(nil, 0).Enrich(context.Background(), g, []string{"Ananda Temple", "Nowhere"})
	assert.ErrorIs(t, err, ErrUnknownNode)
}
