package cache

import (
	"context"
	"errors"
	"fmt"
	"landmark-route-service/internal/domain"
	"landmark-route-service/internal/platform/obs"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "route:geometry:"

// RedisRouteCache keeps provider geometry in Redis with a fixed TTL.
type RedisRouteCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisRouteCache returns a cache writing entries that expire after ttl.
// A non-positive ttl keeps entries until evicted by Redis.
func NewRedisRouteCache(rdb *redis.Client, ttl time.Duration) *RedisRouteCache {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisRouteCache{rdb: rdb, ttl: ttl}
}

func (r *RedisRouteCache) Get(ctx context.Context, key string) (_ []domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "route.redis.Get")(&err)

	raw, err := r.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get route %q: %w", key, err)
	}

	coords, err := decodeGeometry(raw)
	if err != nil {
		return nil, false, fmt.Errorf("redis get route %q: %w", key, err)
	}
	return coords, true, nil
}

func (r *RedisRouteCache) Put(ctx context.Context, key string, coords []domain.Coordinates) error {
	raw, err := encodeGeometry(coords)
	if err != nil {
		return fmt.Errorf("redis put route %q: %w", key, err)
	}

	if err := r.rdb.Set(ctx, redisKeyPrefix+key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis put route %q: %w", key, err)
	}
	return nil
}
