package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"folio/internal/config"
)

// ErrEmptyAddress is returned when Redis address is not configured.
var ErrEmptyAddress = errors.New("redis address is required")

// connectionTimeout is the timeout for verifying Redis connection.
const connectionTimeout = 5 * time.Second

// NewClient creates a Redis client and verifies it with a ping.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, ErrEmptyAddress
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, connectionTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// RedisCache implements Cache on Redis strings holding JSON.
type RedisCache struct {
	client   *redis.Client
	prefix   string
	requests *prometheus.CounterVec
}

// NewRedisCache wraps client. Keys are namespaced with prefix; lookups are counted
// in content_cache_requests_total{result="hit|miss|error"}.
func NewRedisCache(client *redis.Client, prefix string, reg prometheus.Registerer) (*RedisCache, error) {
	c := &RedisCache{
		client: client,
		prefix: prefix,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "content_cache_requests_total",
				Help: "Content cache lookups by result.",
			},
			[]string{"result"},
		),
	}
	if err := reg.Register(c.requests); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *RedisCache) key(k string) string {
	return c.prefix + k
}

// Get reads and decodes key. A missing key is (false, nil).
func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.requests.WithLabelValues("miss").Inc()
		return false, nil
	}
	if err != nil {
		c.requests.WithLabelValues("error").Inc()
		return false, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		c.requests.WithLabelValues("error").Inc()
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	c.requests.WithLabelValues("hit").Inc()
	return true, nil
}

// Set encodes v as JSON and stores it with ttl.
func (c *RedisCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return c.client.Set(ctx, c.key(key), b, ttl).Err()
}

// Delete removes the given keys.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	return c.client.Del(ctx, full...).Err()
}
