package routing

import (
	"landmark-route-service/internal/domain"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallGraph() *Graph {
	records := []domain.LandmarkRecord{
		domain.NewLandmark("a", "A", 10, 10),
		domain.NewLandmark("b", "B", 10, 10.01),
		domain.NewLandmark("c", "C", 10.008, 10.005),
		domain.NewLandmark("d", "D", 10, 10.02),
		domain.NewLandmark("e", "E", 9.992, 10.015),
		domain.NewLandmark("f", "F", 10.01, 10.02),
		domain.NewLandmark("x", "X", 11, 11),
	}
	topo := Topology{
		"A": {"B", "C", "E"},
		"B": {"D", "E"},
		"C": {"D", "F"},
		"F": {"D"},
		"E": {"D"},
	}
	return BuildGraph(records, WithTopology(topo), WithNeighborCount(0))
}

// bruteForceCost enumerates every simple path from start to end.
func bruteForceCost(g *Graph, start, end string) float64 {
	best := math.Inf(1)
	visited := map[string]bool{start: true}

	var walk func(at string, cost float64)
	walk = func(at string, cost float64) {
		if at == end {
			best = min(best, cost)
			return
		}
		n, _ := g.Node(at)
		for next, w := range n.Neighbors {
			if visited[next] {
				continue
			}
			visited[next] = true
			walk(next, cost+w)
			visited[next] = false
		}
	}
	walk(start, 0)
	return best
}

func allPairsCost(g *Graph) map[[2]string]float64 {
	names := g.Names()
	dist := make(map[[2]string]float64)
	for _, a := range names {
		for _, b := range names {
			switch w, ok := g.Weight(a, b); {
			case a == b:
				dist[[2]string{a, b}] = 0
			case ok:
				dist[[2]string{a, b}] = w
			default:
				dist[[2]string{a, b}] = math.Inf(1)
			}
		}
	}
	for _, k := range names {
		for _, i := range names {
			for _, j := range names {
				if via := dist[[2]string{i, k}] + dist[[2]string{k, j}]; via < dist[[2]string{i, j}] {
					dist[[2]string{i, j}] = via
				}
			}
		}
	}
	return dist
}

func TestFindMatchesBruteForce(t *testing.T) {
	g := smallGraph()
	f := NewRouteFinder(g)

	names := []string{"A", "B", "C", "D", "E", "F"}
	for _, a := range names {
		for _, b := range names {
			if a == b {
				continue
			}
			path, err := f.Find(a, b)
			require.NoError(t, err, "%s -> %s", a, b)

			assert.Equal(t, a, path[0])
			assert.Equal(t, b, path[len(path)-1])
			assert.InDelta(t, bruteForceCost(g, a, b), f.Cost(path), 1e-9, "%s -> %s", a, b)
		}
	}
}

func TestFindOptimalOnBaganGraph(t *testing.T) {
	g := BuildGraph(baganRecords())
	f := NewRouteFinder(g)
	want := allPairsCost(g)

	for _, a := range g.Names() {
		for _, b := range g.Names() {
			path, err := f.Find(a, b)
			require.NoError(t, err, "%s -> %s", a, b)

			for i := 0; i+1 < len(path); i++ {
				_, ok := g.Weight(path[i], path[i+1])
				require.True(t, ok, "path uses missing edge %s-%s", path[i], path[i+1])
			}
			assert.InDelta(t, want[[2]string{a, b}], f.Cost(path), 1e-9, "%s -> %s", a, b)
		}
	}
}

func TestFindAdjacentLandmarks(t *testing.T) {
	g := BuildGraph(baganRecords())
	f := NewRouteFinder(g)

	path, err := f.Find("Ananda Temple", "Gawdawpalin Temple")
	require.NoError(t, err)

	assert.Equal(t, []string{"Ananda Temple", "Gawdawpalin Temple"}, path)

	cost := f.Cost(path)
	assert.InDelta(t, 1.49, cost, 0.02)

	a, _ := g.Node("Ananda Temple")
	b, _ := g.Node("Gawdawpalin Temple")
	h := a.Location.Geo().DistanceKm(b.Location.Geo())
	assert.InDelta(t, 1.15, h, 0.02)
	assert.LessOrEqual(t, h, cost)
}

func TestFindUnknownEndpoints(t *testing.T) {
	f := NewRouteFinder(smallGraph())

	_, err := f.Find("Nowhere", "A")
	assert.ErrorIs(t, err, ErrUnknownNode)

	_, err = f.Find("A", "Nowhere")
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestFindDisconnected(t *testing.T) {
	f := NewRouteFinder(smallGraph())

	_, err := f.Find("A", "X")
	assert.ErrorIs(t, err, ErrNoPathFound)
}

func TestFindSameEndpoints(t *testing.T) {
	f := NewRouteFinder(smallGraph())

	path, err := f.Find("C", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, path)
}

func TestFindCacheIsDirectional(t *testing.T) {
	f := NewRouteFinder(smallGraph())

	forward, err := f.Find("A", "D")
	require.NoError(t, err)
	backward, err := f.Find("D", "A")
	require.NoError(t, err)

	assert.Equal(t, 2, f.searches)
	assert.InDelta(t, f.Cost(forward), f.Cost(backward), 1e-9)

	again, err := f.Find("A", "D")
	require.NoError(t, err)
	assert.Equal(t, forward, again)
	assert.Equal(t, 2, f.searches)
}

func TestFindReturnsIndependentCopies(t *testing.T) {
	f := NewRouteFinder(smallGraph())

	first, err := f.Find("A", "D")
	require.NoError(t, err)
	first[0] = "mutated"

	second, err := f.Find("A", "D")
	require.NoError(t, err)
	assert.Equal(t, "A", second[0])
}

func TestFindCacheLimitEvictsOldest(t *testing.T) {
	f := NewRouteFinder(smallGraph(), WithCacheLimit(1))

	_, _ = f.Find("A", "D")
	_, _ = f.Find("D", "A")
	_, _ = f.Find("D", "A")
	assert.Equal(t, 2, f.searches)

	_, _ = f.Find("A", "D")
	assert.Equal(t, 3, f.searches)
	assert.Len(t, f.cache, 1)
}

func TestFindCacheDisabled(t *testing.T) {
	f := NewRouteFinder(smallGraph(), WithCacheLimit(0))

	_, _ = f.Find("A", "D")
	_, _ = f.Find("A", "D")
	assert.Equal(t, 2, f.searches)
	assert.Empty(t, f.cache)
}

func TestFindConcurrent(t *testing.T) {
	g := BuildGraph(baganRecords())
	f := NewRouteFinder(g, WithCacheLimit(4))
	want, err := NewRouteFinder(g).Find("BuPaya Pagoda", "Shwezigon Pagoda")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := f.Find("BuPaya Pagoda", "Shwezigon Pagoda")
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestCostFallsBackToStraightLine(t *testing.T) {
	g := smallGraph()
	f := NewRouteFinder(g)

	a, _ := g.Node("A")
	d, _ := g.Node("D")

	assert.InDelta(t, a.Location.Geo().DistanceKm(d.Location.Geo()), f.Cost([]string{"A", "D"}), 1e-12)
	assert.True(t, math.IsInf(f.Cost([]string{"A", "Nowhere"}), 1))
	assert.Zero(t, f.Cost([]string{"A"}))
}
