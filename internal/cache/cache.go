package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// TTLAnalytics bounds how stale a cached analytics report may get.
const TTLAnalytics = time.Minute

// RedisCache is a best-effort JSON cache. A zero address disables it entirely;
// lookup and store failures are logged and otherwise ignored.
type RedisCache struct {
	client *redis.Client
	logs   *zap.SugaredLogger
}

func NewRedisCache(logger *zap.SugaredLogger, addr string) *RedisCache {
	if addr == "" {
		return &RedisCache{logs: logger}
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	return &RedisCache{
		client: client,
		logs:   logger,
	}
}

func (c *RedisCache) Enabled() bool {
	return c.client != nil
}

// Get unmarshals the cached value under key into dest and reports whether a
// usable entry was found.
func (c *RedisCache) Get(ctx context.Context, key string, dest any) bool {
	if c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logs.Errorw("cache lookup failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.logs.Errorw("cache entry unmarshal failed", "key", key, "error", err)
		return false
	}

	return true
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.logs.Errorw("cache entry marshal failed", "key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.logs.Errorw("cache store failed", "key", key, "error", err)
	}
}

func (c *RedisCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
