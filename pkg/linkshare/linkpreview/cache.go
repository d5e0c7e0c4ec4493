package linkpreview

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache stores fetched previews. Implementations swallow their own errors:
// a cache problem must never change what Resolve returns.
type Cache interface {
	Get(ctx context.Context, url string) (Preview, bool)
	Set(ctx context.Context, url string, p Preview)
}

// NopCache caches nothing
type NopCache struct{}

// Get always misses
func (NopCache) Get(context.Context, string) (Preview, bool) { return Preview{}, false }

// Set does nothing
func (NopCache) Set(context.Context, string, Preview) {}

const (
	// DefaultCacheTTL is how long a fetched preview is kept
	DefaultCacheTTL = 6 * time.Hour
	cacheKeyPrefix  = "linkpreview:"
	cacheOpTimeout  = 500 * time.Millisecond
)

// RedisCache keeps previews in Redis as JSON with a TTL
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisCache wraps an existing client
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

// NewRedisClient builds a client for addr and pings it once
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

func (c *RedisCache) key(url string) string {
	return cacheKeyPrefix + url
}

// Get returns a cached preview if one exists
func (c *RedisCache) Get(ctx context.Context, url string) (Preview, bool) {
	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, c.key(url)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("link preview cache read failed", zap.Error(err))
		}
		return Preview{}, false
	}

	var p Preview
	if err := json.Unmarshal(raw, &p); err != nil {
		c.logger.Warn("link preview cache entry corrupt", zap.String("url", url), zap.Error(err))
		return Preview{}, false
	}
	return p, true
}

// Set stores a preview with the configured TTL
func (c *RedisCache) Set(ctx context.Context, url string, p Preview) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, cacheOpTimeout)
	defer cancel()

	if err := c.client.Set(ctx, c.key(url), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("link preview cache write failed", zap.Error(err))
	}
}
