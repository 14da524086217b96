package routing

import (
	"context"
	"errors"
	"fmt"
	"landmark-route-service/internal/domain"
	"landmark-route-service/internal/geo"
	"landmark-route-service/internal/platform/obs"
	"landmark-route-service/internal/ports"
	"log/slog"
	"time"
)

const (
	DefaultProviderTimeout = 12 * time.Second

	// Provider points within this distance of the next landmark are replaced
	// by the landmark itself.
	snapRadiusKm = 0.05

	roadWaypointLabel = "Road waypoint"
)

// Enrichment is the road-level rendition of a landmark path.
type Enrichment struct {
	Points          []domain.RoadPoint
	TotalDistanceKm float64
	UsedFallback    bool
}

// RoadEnricher turns a landmark path into dense road coordinates. It asks the
// provider once and falls back to deterministic interpolation on any failure.
type RoadEnricher struct {
	provider ports.RoadRouteProvider
	timeout  time.Duration
}

// NewRoadEnricher returns an enricher. A nil provider always uses the
// fallback; a non-positive timeout uses DefaultProviderTimeout.
func NewRoadEnricher(provider ports.RoadRouteProvider, timeout time.Duration) *RoadEnricher {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return &RoadEnricher{provider: provider, timeout: timeout}
}

type stop struct {
	loc  domain.Coordinates
	name string
}

// Enrich resolves path against g and produces its road geometry.
//
// Provider failures never surface as errors; they only set UsedFallback.
// The only error is an unknown landmark in path. Paths shorter than two
// landmarks are returned as points with zero distance.
func (e *RoadEnricher) Enrich(ctx context.Context, g *Graph, path []string) (Enrichment, error) {
	stops := make([]stop, 0, len(path))
	for _, name := range path {
		loc, err := g.location(name)
		if err != nil {
			return Enrichment{}, fmt.Errorf("enrich path: %w", err)
		}
		stops = append(stops, stop{loc: loc, name: name})
	}

	if len(stops) < 2 {
		points := make([]domain.RoadPoint, 0, len(stops))
		for _, s := range stops {
			points = append(points, domain.RoadPoint{Lat: s.loc.Lat, Lng: s.loc.Lng, Label: s.name})
		}
		return Enrichment{Points: points}, nil
	}

	points, err := e.fromProvider(ctx, stops)
	usedFallback := false
	if err != nil {
		if e.provider != nil {
			slog.WarnContext(ctx, "road routing failed, using fallback geometry",
				"req_id", obs.RequestID(ctx), "waypoints", len(stops), "err", err)
		}
		points = fallbackPoints(stops)
		usedFallback = true
	}

	return Enrichment{
		Points:          points,
		TotalDistanceKm: pointsDistanceKm(points),
		UsedFallback:    usedFallback,
	}, nil
}

var errNoProvider = errors.New("no road provider configured")

func (e *RoadEnricher) fromProvider(ctx context.Context, stops []stop) ([]domain.RoadPoint, error) {
	if e.provider == nil {
		return nil, errNoProvider
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	waypoints := make([]domain.Coordinates, 0, len(stops))
	for _, s := range stops {
		waypoints = append(waypoints, s.loc)
	}

	road, err := e.provider.Route(ctx, waypoints)
	if err != nil {
		return nil, err
	}
	if len(road) < 2 {
		return nil, fmt.Errorf("%w: provider returned %d points", ports.ErrRoutingUnavailable, len(road))
	}

	return snapToStops(road, stops), nil
}

// snapToStops labels road points, replacing the first point within
// snapRadiusKm of each expected landmark (in path order) by that landmark.
func snapToStops(road []domain.Coordinates, stops []stop) []domain.RoadPoint {
	out := make([]domain.RoadPoint, 0, len(road))
	next := 0
	for _, c := range road {
		if next < len(stops) && c.Geo().DistanceKm(stops[next].loc.Geo()) < snapRadiusKm {
			s := stops[next]
			out = append(out, domain.RoadPoint{Lat: s.loc.Lat, Lng: s.loc.Lng, Label: s.name})
			next++
			continue
		}
		out = append(out, domain.RoadPoint{Lat: c.Lat, Lng: c.Lng, Label: roadWaypointLabel})
	}
	return out
}

func pointsDistanceKm(points []domain.RoadPoint) float64 {
	total := 0.0
	for i := 0; i+1 < len(points); i++ {
		total += geo.HaversineKm(points[i].Lat, points[i].Lng, points[i+1].Lat, points[i+1].Lng)
	}
	return total
}
