package routing

import (
	"landmark-route-service/internal/domain"
	"landmark-route-service/internal/geo"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraphSkipsMalformedLandmarks(t *testing.T) {
	g := BuildGraph(baganRecords())

	assert.Equal(t, 19, g.Len())
	assert.False(t, g.Has("Minochantha Stupa Group"))
	assert.Equal(t, []string{"Minochantha Stupa Group"}, g.Skipped())
}

func TestBuildGraphSymmetricPositiveNoSelfLoops(t *testing.T) {
	g := BuildGraph(baganRecords())

	for _, a := range g.Names() {
		n, _ := g.Node(a)
		require.NotContains(t, n.Neighbors, a, "self loop on %q", a)

		for b, w := range n.Neighbors {
			assert.Greater(t, w, 0.0, "%s-%s", a, b)

			back, ok := g.Weight(b, a)
			require.True(t, ok, "missing reverse edge %s-%s", b, a)
			assert.Equal(t, w, back, "asymmetric weight %s-%s", a, b)
		}
	}
}

func TestBuildGraphEdgesAreAdmissible(t *testing.T) {
	g := BuildGraph(baganRecords())

	for _, a := range g.Names() {
		n, _ := g.Node(a)
		for b, w := range n.Neighbors {
			other, _ := g.Node(b)
			straight := n.Location.Geo().DistanceKm(other.Location.Geo())
			assert.GreaterOrEqual(t, w, straight, "%s-%s", a, b)
		}
	}
}

func TestBuildGraphCuratedEdgeWeight(t *testing.T) {
	g := BuildGraph(baganRecords())

	w, ok := g.Weight("Ananda Temple", "Gawdawpalin Temple")
	require.True(t, ok)

	a, _ := g.Node("Ananda Temple")
	b, _ := g.Node("Gawdawpalin Temple")
	assert.InDelta(t, geo.RoadDistanceKm(a.Location.Geo(), b.Location.Geo()), w, 1e-12)
	assert.InDelta(t, 1.49, w, 0.02)
}

func TestBuildGraphAugmentsCuratedOrphan(t *testing.T) {
	ananda := domain.Coordinates{Lat: 21.170806, Lng: 94.867856}
	records := append(baganRecords(), landmarkAt("Lonely Stupa", northOf(ananda, 1.2)))

	g := BuildGraph(records)

	n, ok := g.Node("Lonely Stupa")
	require.True(t, ok)
	assert.NotEmpty(t, n.Neighbors)
	assert.LessOrEqual(t, len(n.Neighbors), len(g.Names())-1)
}

func TestBuildGraphAugmentationRespectsRadiusAndCount(t *testing.T) {
	origin := domain.Coordinates{Lat: 10, Lng: 10}
	records := []domain.LandmarkRecord{
		landmarkAt("hub", origin),
		landmarkAt("n1", northOf(origin, 1)),
		landmarkAt("n2", northOf(origin, 2)),
		landmarkAt("n3", northOf(origin, 3)),
		landmarkAt("n4", northOf(origin, 4)),
		landmarkAt("far", northOf(origin, 40)),
	}

	g := BuildGraph(records, WithTopology(Topology{}))

	hub, _ := g.Node("hub")
	assert.Contains(t, hub.Neighbors, "n1")
	assert.Contains(t, hub.Neighbors, "n2")
	assert.Contains(t, hub.Neighbors, "n3")

	far, _ := g.Node("far")
	assert.Empty(t, far.Neighbors, "nothing lies within 5 km of the far landmark")

	_, err := NewRouteFinder(g).Find("hub", "far")
	assert.ErrorIs(t, err, ErrNoPathFound)
}

func TestBuildGraphWithoutAugmentationKeepsCuratedOnly(t *testing.T) {
	origin := domain.Coordinates{Lat: 10, Lng: 10}
	records := []domain.LandmarkRecord{
		landmarkAt("a", origin),
		landmarkAt("b", northOf(origin, 1)),
		landmarkAt("c", northOf(origin, 2)),
	}

	g := BuildGraph(records, WithTopology(Topology{"a": {"b", "a", "missing"}}), WithNeighborCount(0))

	a, _ := g.Node("a")
	c, _ := g.Node("c")
	assert.Len(t, a.Neighbors, 1)
	assert.Empty(t, c.Neighbors)
}

func TestBuildGraphDuplicateNameLastWins(t *testing.T) {
	records := []domain.LandmarkRecord{
		domain.NewLandmark("1", "Twin", 1, 1),
		domain.NewLandmark("2", "Twin", 2, 2),
	}

	g := BuildGraph(records)

	n, ok := g.Node("Twin")
	require.True(t, ok)
	assert.Equal(t, domain.Coordinates{Lat: 2, Lng: 2}, n.Location)
}

func TestBuildGraphColocatedLandmarksGetPositiveWeight(t *testing.T) {
	records := []domain.LandmarkRecord{
		domain.NewLandmark("1", "Gate", 5, 5),
		domain.NewLandmark("2", "Gate Shrine", 5, 5),
	}

	g := BuildGraph(records)

	w, ok := g.Weight("Gate", "Gate Shrine")
	require.True(t, ok)
	assert.Greater(t, w, 0.0)
}
