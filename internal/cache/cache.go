// Package cache is a thin facade over Redis guarding the product-listing
// read path. Every operation degrades to a no-op when Redis is absent or
// unreachable; callers must treat "unavailable" the same as a miss.
package cache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ProductsKey is the single well-known key holding the serialized full
// product list.
const ProductsKey = "products:all"

// ProductsTTL bounds how long a cached product list may outlive the
// database rows it was built from.
const ProductsTTL = 5 * time.Minute

// Outcome is the three-way result of a cache read. Services collapse
// Unavailable to Miss at their boundary.
type Outcome int

const (
	Miss Outcome = iota
	Hit
	Unavailable
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	default:
		return "unavailable"
	}
}

// Store is the cache contract used by services.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, Outcome)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

// RedisCache wraps a go-redis client with a connectivity flag. The flag
// is set from an initial ping and updated by call results, so a dead
// connection is never hammered on every request.
type RedisCache struct {
	client    *redis.Client
	connected atomic.Bool
}

// NewRedisCache connects to Redis and returns the facade. A failed
// initial ping is logged, not returned: the storefront runs without
// caching until Redis comes back.
func NewRedisCache(addr, passwd string, db int) *RedisCache {
	c := &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: passwd,
			DB:       db,
		}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unreachable, continuing without cache", zap.String("addr", addr), zap.Error(err))
		c.connected.Store(false)
	} else {
		zap.L().Info("redis connected", zap.String("addr", addr))
		c.connected.Store(true)
	}
	return c
}

// NewDisabledCache returns a facade that is permanently unavailable,
// used when caching is switched off in config.
func NewDisabledCache() *RedisCache {
	return &RedisCache{}
}

// Available reports the current connectivity state.
func (c *RedisCache) Available() bool {
	return c.client != nil && c.connected.Load()
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, Outcome) {
	if !c.Available() {
		return nil, Unavailable
	}
	value, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, Miss
	}
	if err != nil {
		zap.L().Warn("redis get failed", zap.String("key", key), zap.Error(err))
		c.connected.Store(false)
		return nil, Unavailable
	}
	c.connected.Store(true)
	return value, Hit
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if !c.Available() {
		return
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		zap.L().Warn("redis set failed", zap.String("key", key), zap.Error(err))
		c.connected.Store(false)
	}
}

func (c *RedisCache) Delete(ctx context.Context, key string) {
	if !c.Available() {
		return
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		zap.L().Warn("redis del failed", zap.String("key", key), zap.Error(err))
		c.connected.Store(false)
	}
}

// Reconnect re-pings Redis and restores the connectivity flag if the
// server is reachable again. Called from the periodic warm job.
func (c *RedisCache) Reconnect(ctx context.Context) bool {
	if c.client == nil {
		return false
	}
	if err := c.client.Ping(ctx).Err(); err != nil {
		c.connected.Store(false)
		return false
	}
	c.connected.Store(true)
	return true
}
