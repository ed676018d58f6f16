package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"geo-distance-service/internal/domain"
)

// RedisResultCache caches computed distance metrics keyed by the
// normalized pair. Entries expire after the configured TTL; the store
// remains the durable record.
type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisResultCache(client *redis.Client, ttl time.Duration) *RedisResultCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisResultCache{client: client, ttl: ttl}
}

// pairKey builds a stable cache key from the normalized (6-decimal)
// coordinates of both points.
func pairKey(pair domain.PointPair) string {
	return fmt.Sprintf("pair:%.6f,%.6f|%.6f,%.6f",
		pair.A.Lat.DD, pair.A.Lon.DD, pair.B.Lat.DD, pair.B.Lon.DD)
}

func (c *RedisResultCache) Get(ctx context.Context, pair domain.PointPair) (domain.DistanceMetrics, bool, error) {
	if c.client == nil {
		return domain.DistanceMetrics{}, false, errors.New("result cache: client is nil")
	}

	key := pairKey(pair)
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.DistanceMetrics{}, false, nil
	}
	if err != nil {
		return domain.DistanceMetrics{}, false, fmt.Errorf("get cached result %q: %w", key, err)
	}

	var m domain.DistanceMetrics
	if err := json.Unmarshal(payload, &m); err != nil {
		return domain.DistanceMetrics{}, false, fmt.Errorf("decode cached result %q: %w", key, err)
	}

	return m, true, nil
}

func (c *RedisResultCache) Put(ctx context.Context, pair domain.PointPair, m domain.DistanceMetrics) error {
	if c.client == nil {
		return errors.New("result cache: client is nil")
	}

	key := pairKey(pair)
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode cached result %q: %w", key, err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("put cached result %q: %w", key, err)
	}

	return nil
}
