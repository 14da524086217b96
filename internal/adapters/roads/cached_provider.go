package roads

import (
	"context"
	"encoding/binary"
	"landmark-route-service/internal/domain"
	"landmark-route-service/internal/ports"
	"log/slog"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// CachedProvider decorates a RoadRouteProvider with a geometry cache.
//
// Cache read errors are treated as misses and write errors are logged;
// neither fails the route.
type CachedProvider struct {
	next  ports.RoadRouteProvider
	cache ports.RouteGeometryCache
	name  string
}

// NewCachedProvider wraps next. name namespaces keys so that geometry from
// different providers never mixes.
func NewCachedProvider(next ports.RoadRouteProvider, cache ports.RouteGeometryCache, name string) *CachedProvider {
	return &CachedProvider{next: next, cache: cache, name: name}
}

func (c *CachedProvider) Route(ctx context.Context, waypoints []domain.Coordinates) ([]domain.Coordinates, error) {
	key := CacheKey(c.name, waypoints)

	coords, ok, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		slog.WarnContext(ctx, "route cache read failed", "key", key, "err", err)
	case ok:
		return coords, nil
	}

	coords, err = c.next.Route(ctx, waypoints)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Put(ctx, key, coords); err != nil {
		slog.WarnContext(ctx, "route cache write failed", "key", key, "err", err)
	}

	return coords, nil
}

// CacheKey fingerprints an ordered waypoint list.
func CacheKey(name string, waypoints []domain.Coordinates) string {
	d := xxhash.New()
	_, _ = d.WriteString(name)

	var buf [16]byte
	for _, w := range waypoints {
		binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(w.Lat))
		binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(w.Lng))
		_, _ = d.Write(buf[:])
	}

	return name + ":" + strconv.Itoa(len(waypoints)) + ":" + strconv.FormatUint(d.Sum64(), 16)
}
