package routecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/railtickets/internal/domain"
	"github.com/GlebRadaev/railtickets/internal/metrics"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "route:summary:"

func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// Cache keeps joined route summaries in Redis. Routes are immutable, so
// entries only expire by TTL. Failures degrade to a miss.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

func key(routeID string) string {
	return keyPrefix + routeID
}

func (c *Cache) Get(ctx context.Context, routeID string) (*domain.RouteSummary, bool) {
	val, err := c.client.Get(ctx, key(routeID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.L().Warn("route cache read failed", zap.String("route_id", routeID), zap.Error(err))
		}
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	var summary domain.RouteSummary
	if err := json.Unmarshal(val, &summary); err != nil {
		zap.L().Warn("route cache entry is corrupt", zap.String("route_id", routeID), zap.Error(err))
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return &summary, true
}

func (c *Cache) Set(ctx context.Context, summary *domain.RouteSummary) {
	data, err := json.Marshal(summary)
	if err != nil {
		zap.L().Warn("can't encode route summary", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key(summary.ID), data, c.ttl).Err(); err != nil {
		zap.L().Warn("route cache write failed", zap.String("route_id", summary.ID), zap.Error(err))
	}
}
