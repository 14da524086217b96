package routing

import (
	"cmp"
	"landmark-route-service/internal/domain"
	"landmark-route-service/internal/geo"
	"math"
	"slices"
)

// DefaultNearbyRadiusKm is the radius used when callers do not pass one.
const DefaultNearbyRadiusKm = 1.0

// Nearby lists landmarks not on path whose distance to the path is at most
// radiusKm, closest first. The distance to the path is the smallest endpoint
// segment distance over its consecutive pairs; a single-landmark path is
// treated as a segment of zero length.
func Nearby(g *Graph, path []string, radiusKm float64) []domain.NearbyLandmark {
	points := make([]geo.Point, 0, len(path))
	onPath := make(map[string]bool, len(path))
	for _, name := range path {
		n, ok := g.Node(name)
		if !ok {
			continue
		}
		points = append(points, n.Location.Geo())
		onPath[name] = true
	}
	if len(points) == 0 {
		return []domain.NearbyLandmark{}
	}
	if len(points) == 1 {
		points = append(points, points[0])
	}

	out := []domain.NearbyLandmark{}
	for _, name := range g.Names() {
		if onPath[name] {
			continue
		}

		loc := g.nodes[name].Location
		best := math.Inf(1)
		for i := 0; i+1 < len(points); i++ {
			best = min(best, geo.SegmentDistanceKm(loc.Geo(), points[i], points[i+1]))
		}

		if best <= radiusKm {
			out = append(out, domain.NearbyLandmark{Name: name, DistanceKm: best, Location: loc})
		}
	}

	slices.SortFunc(out, func(a, b domain.NearbyLandmark) int {
		if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	return out
}
