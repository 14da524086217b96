package routing

import (
	"encoding/binary"
	"fmt"
	"landmark-route-service/internal/domain"
	"math"

	"github.com/cespare/xxhash/v2"
)

const (
	// Segments shorter than this get no synthetic waypoints.
	minInterpolateKm = 0.5
	// One synthetic waypoint per this many km, clamped to [1, maxWaypoints].
	waypointSpacingKm = 0.8
	maxWaypoints      = 3
)

// fallbackPoints connects stops with straight segments, adding jittered
// waypoints on longer ones. The output depends only on the input.
func fallbackPoints(stops []stop) []domain.RoadPoint {
	out := make([]domain.RoadPoint, 0, len(stops)*(maxWaypoints+1))
	for i, s := range stops {
		out = append(out, domain.RoadPoint{Lat: s.loc.Lat, Lng: s.loc.Lng, Label: s.name})
		if i+1 < len(stops) {
			out = append(out, segmentWaypoints(s.loc, stops[i+1].loc)...)
		}
	}
	return out
}

func segmentWaypoints(from, to domain.Coordinates) []domain.RoadPoint {
	d := from.Geo().DistanceKm(to.Geo())
	if d < minInterpolateKm {
		return nil
	}

	n := min(max(1, int(math.Round(d/waypointSpacingKm))), maxWaypoints)

	out := make([]domain.RoadPoint, 0, n)
	for i := 1; i <= n; i++ {
		ratio := float64(i) / float64(n+1)
		out = append(out, domain.RoadPoint{
			Lat:   from.Lat + (to.Lat-from.Lat)*ratio + jitter(from.Lat, to.Lat, i),
			Lng:   from.Lng + (to.Lng-from.Lng)*ratio + jitter(from.Lng, to.Lng, i),
			Label: fmt.Sprintf("Waypoint %d", i),
		})
	}
	return out
}

// jitter derives an offset in [-0.0005, 0.00049] degrees from an xxhash of
// the two coordinate values and the waypoint index.
func jitter(a, b float64, index int) float64 {
	var buf [20]byte
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(a))
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(b))
	binary.LittleEndian.PutUint32(buf[16:20], uint32(index))

	h := xxhash.Sum64(buf[:])
	return (float64(h%100) - 50) / 100000
}
