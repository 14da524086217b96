package routing

import (
	"landmark-route-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearbyWithinRadius(t *testing.T) {
	p := domain.Coordinates{Lat: 21.17, Lng: 94.86}
	q := domain.Coordinates{Lat: 21.17, Lng: 94.87}
	records := []domain.LandmarkRecord{
		landmarkAt("P", p),
		landmarkAt("Q", q),
		landmarkAt("Close", northOf(p, 0.2)),
		landmarkAt("Outside", northOf(p, 0.5)),
	}
	g := BuildGraph(records, WithTopology(Topology{}), WithNeighborCount(0))

	got := Nearby(g, []string{"P", "Q"}, 0.3)

	require.Len(t, got, 1)
	assert.Equal(t, "Close", got[0].Name)
	assert.InDelta(t, 0.2, got[0].DistanceKm, 1e-6)
	assert.Equal(t, northOf(p, 0.2), got[0].Location)
}

func TestNearbyExcludesPathAndSorts(t *testing.T) {
	g := BuildGraph(baganRecords())
	path := []string{"Ananda Temple", "Thatbyinnyu Temple"}

	got := Nearby(g, path, DefaultNearbyRadiusKm)

	require.NotEmpty(t, got)
	for i, n := range got {
		assert.NotContains(t, path, n.Name)
		assert.LessOrEqual(t, n.DistanceKm, DefaultNearbyRadiusKm)
		if i > 0 {
			assert.LessOrEqual(t, got[i-1].DistanceKm, n.DistanceKm)
		}
	}
}

func TestNearbyTiesBreakByName(t *testing.T) {
	p := domain.Coordinates{Lat: 0, Lng: 0}
	records := []domain.LandmarkRecord{
		landmarkAt("P", p),
		landmarkAt("Zeta", northOf(p, 0.4)),
		landmarkAt("Alpha", northOf(p, 0.4)),
	}
	g := BuildGraph(records, WithTopology(Topology{}), WithNeighborCount(0))

	got := Nearby(g, []string{"P"}, 1)

	require.Len(t, got, 2)
	assert.Equal(t, "Alpha", got[0].Name)
	assert.Equal(t, "Zeta", got[1].Name)
}

func TestNearbySinglePointPath(t *testing.T) {
	p := domain.Coordinates{Lat: 0, Lng: 0}
	records := []domain.LandmarkRecord{
		landmarkAt("P", p),
		landmarkAt("N", northOf(p, 0.7)),
	}
	g := BuildGraph(records, WithTopology(Topology{}), WithNeighborCount(0))

	got := Nearby(g, []string{"P"}, 1)

	require.Len(t, got, 1)
	assert.InDelta(t, 0.7, got[0].DistanceKm, 1e-6)
}

func TestNearbyEmptyOrUnknownPath(t *testing.T) {
	g := BuildGraph(baganRecords())

	assert.Empty(t, Nearby(g, nil, 5))
	assert.Empty(t, Nearby(g, []string{"Nowhere"}, 5))
	assert.NotNil(t, Nearby(g, nil, 5))
}
