// Package cache is a read-through JSON cache for content API responses.
package cache

import (
	"context"
	"time"
)

// Cache stores JSON-encodable values under string keys.
type Cache interface {
	// Get decodes the value stored at key into dst and reports whether it was found.
	Get(ctx context.Context, key string, dst any) (bool, error)
	// Set stores v at key for ttl.
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	// Delete removes keys; missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}

// GetOrLoad returns the cached value at key or calls load and caches its result.
// Cache failures degrade to calling load; only load's error is returned.
func GetOrLoad[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	var v T
	if ok, err := c.Get(ctx, key, &v); err == nil && ok {
		return v, nil
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	_ = c.Set(ctx, key, v, ttl)
	return v, nil
}

// Nop is a Cache that never stores anything. It is used when Redis is not configured.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (Nop) Set(context.Context, string, any, time.Duration) error { return nil }
func (Nop) Delete(context.Context, ...string) error               { return nil }
