package services

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"landmark-route-service/internal/domain"
	"landmark-route-service/internal/platform/obs"
	"landmark-route-service/internal/ports"
	"landmark-route-service/internal/routing"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrSameEndpoints is returned when start and end name the same landmark.
	ErrSameEndpoints = errors.New("start and end must differ")

	// ErrInvalidRadius is returned for a non-positive or non-finite radius.
	ErrInvalidRadius = errors.New("radius must be a positive number of km")

	// ErrMissingLandmark is returned when a required landmark name is blank.
	ErrMissingLandmark = errors.New("landmark name is required")
)

type Options struct {
	PathCacheLimit     int
	NearbyRadiusKm     float64
	AugmentMax         int
	AugmentThresholdKm float64
	ProviderTimeout    time.Duration
}

// DefaultOptions mirrors the routing package defaults.
func DefaultOptions() Options {
	return Options{
		PathCacheLimit:     256,
		NearbyRadiusKm:     routing.DefaultNearbyRadiusKm,
		AugmentMax:         routing.DefaultMaxAdditions,
		AugmentThresholdKm: routing.DefaultAugmentThreshold,
		ProviderTimeout:    routing.DefaultProviderTimeout,
	}
}

// snapshot pairs a graph with the finder whose path cache belongs to it.
type snapshot struct {
	sum    uint64
	graph  *routing.Graph
	finder *routing.RouteFinder
}

// RouteService answers landmark queries. The graph is rebuilt whenever the
// landmark set read from the repository changes, which also drops the path
// cache built on the previous set.
type RouteService struct {
	repo     ports.LandmarkRepository
	enricher *routing.RoadEnricher
	opts     Options

	mu   sync.Mutex
	snap *snapshot
}

// NewRouteService wires a repository and an optional road provider. A nil
// provider makes every path use fallback geometry.
func NewRouteService(repo ports.LandmarkRepository, provider ports.RoadRouteProvider, opts Options) *RouteService {
	return &RouteService{
		repo:     repo,
		enricher: routing.NewRoadEnricher(provider, opts.ProviderTimeout),
		opts:     opts,
	}
}

func (s *RouteService) load(ctx context.Context) (*snapshot, error) {
	// Repositories prefix their own errors.
	records, err := s.repo.ListLandmarks(ctx)
	if err != nil {
		return nil, err
	}

	sum := fingerprint(records)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap != nil && s.snap.sum == sum {
		return s.snap, nil
	}

	g := routing.BuildGraph(records)
	if skipped := g.Skipped(); len(skipped) > 0 {
		slog.WarnContext(ctx, "skipping landmarks with malformed coordinates",
			"req_id", obs.RequestID(ctx), "count", len(skipped), "names", skipped)
	}

	s.snap = &snapshot{
		sum:    sum,
		graph:  g,
		finder: routing.NewRouteFinder(g, routing.WithCacheLimit(s.opts.PathCacheLimit)),
	}
	return s.snap, nil
}

// ListNodes returns every routable landmark, sorted by name.
func (s *RouteService) ListNodes(ctx context.Context) (_ []domain.LandmarkNode, err error) {
	defer obs.Time(ctx, "service.ListNodes")(&err)

	snap, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list nodes: %w", err)
	}
	return snap.graph.Nodes(), nil
}

// FindPath computes the cheapest landmark route from start to end, adds
// landmarks lying close to it and renders it as road geometry.
func (s *RouteService) FindPath(ctx context.Context, start, end string) (_ domain.RouteResult, err error) {
	defer obs.Time(ctx, "service.FindPath")(&err)

	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return domain.RouteResult{}, fmt.Errorf("find path: %w", ErrMissingLandmark)
	}
	if start == end {
		return domain.RouteResult{}, fmt.Errorf("find path %q: %w", start, ErrSameEndpoints)
	}

	snap, err := s.load(ctx)
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("find path: %w", err)
	}

	path, err := snap.finder.Find(start, end)
	if err != nil {
		return domain.RouteResult{}, err
	}
	cost := snap.finder.Cost(path)

	augmented := routing.Augment(snap.graph, path, s.opts.AugmentMax, s.opts.AugmentThresholdKm)

	enriched, err := s.enricher.Enrich(ctx, snap.graph, augmented)
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("find path: %w", err)
	}

	return domain.RouteResult{
		Path:         augmented,
		DistanceKm:   enriched.TotalDistanceKm,
		RouteCostKm:  cost,
		Coordinates:  enriched.Points,
		PathLength:   len(augmented),
		UsedFallback: enriched.UsedFallback,
		Nearby:       routing.Nearby(snap.graph, augmented, s.opts.NearbyRadiusKm),
	}, nil
}

// Nearby lists landmarks within radiusKm of anchor, closest first.
func (s *RouteService) Nearby(ctx context.Context, anchor string, radiusKm float64) (_ []domain.NearbyLandmark, err error) {
	defer obs.Time(ctx, "service.Nearby")(&err)

	anchor = strings.TrimSpace(anchor)
	if anchor == "" {
		return nil, fmt.Errorf("nearby: %w", ErrMissingLandmark)
	}
	if radiusKm <= 0 || math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) {
		return nil, fmt.Errorf("nearby %q: %w", anchor, ErrInvalidRadius)
	}

	snap, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("nearby: %w", err)
	}
	if !snap.graph.Has(anchor) {
		return nil, fmt.Errorf("nearby %q: %w", anchor, routing.ErrUnknownNode)
	}

	return routing.Nearby(snap.graph, []string{anchor}, radiusKm), nil
}

func fingerprint(records []domain.LandmarkRecord) uint64 {
	d := xxhash.New()
	var buf [8]byte
	writeCoord := func(f *float64) {
		if f == nil {
			_, _ = d.Write([]byte{0})
			return
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(*f))
		_, _ = d.Write([]byte{1})
		_, _ = d.Write(buf[:])
	}

	for _, r := range records {
		_, _ = d.WriteString(r.ID)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(r.Name)
		_, _ = d.Write([]byte{0})
		writeCoord(r.Lat)
		writeCoord(r.Lng)
	}
	return d.Sum64()
}
