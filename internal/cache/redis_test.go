package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"folio/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title string `json:"title"`
}

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c, err := NewRedisCache(client, "folio:", prometheus.NewRegistry())
	require.NoError(t, err)
	return c, mr
}

func TestRedisCache_SetGet(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	var got payload
	ok, err := c.Get(ctx, "projects", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "projects", payload{Title: "RAG"}, time.Minute))
	assert.True(t, mr.Exists("folio:projects"))

	ok, err = c.Get(ctx, "projects", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "RAG", got.Title)

	assert.Equal(t, float64(1), testutil.ToFloat64(c.requests.WithLabelValues("hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.requests.WithLabelValues("miss")))

	mr.FastForward(2 * time.Minute)
	ok, err = c.Get(ctx, "projects", &got)
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire after ttl")
}

func TestRedisCache_CorruptEntry(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("folio:broken", "{not json"))

	var got payload
	ok, err := c.Get(context.Background(), "broken", &got)

	assert.False(t, ok)
	assert.Error(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(c.requests.WithLabelValues("error")))
}

func TestRedisCache_Delete(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, c.Set(ctx, "b", 2, time.Minute))
	require.NoError(t, c.Delete(ctx, "a", "b", "missing"))
	require.NoError(t, c.Delete(ctx))

	assert.False(t, mr.Exists("folio:a"))
	assert.False(t, mr.Exists("folio:b"))
}

func TestGetOrLoad(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) ([]payload, error) {
		calls++
		return []payload{{Title: "one"}}, nil
	}

	first, err := GetOrLoad(ctx, Cache(c), "list", time.Minute, load)
	require.NoError(t, err)
	second, err := GetOrLoad(ctx, Cache(c), "list", time.Minute, load)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	_, err = GetOrLoad(ctx, Cache(c), "failing", time.Minute, func(context.Context) (int, error) {
		return 0, errors.New("db down")
	})
	assert.EqualError(t, err, "db down")
}

func TestGetOrLoad_CacheUnavailable(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	v, err := GetOrLoad(context.Background(), Cache(c), "k", time.Minute, func(context.Context) (string, error) {
		return "fresh", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
}

func TestNop(t *testing.T) {
	var n Nop
	ok, err := n.Get(context.Background(), "k", new(string))
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.NoError(t, n.Set(context.Background(), "k", "v", time.Second))
	assert.NoError(t, n.Delete(context.Background(), "k"))
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(context.Background(), config.RedisConfig{})
	assert.ErrorIs(t, err, ErrEmptyAddress)

	mr := miniredis.RunT(t)
	client, err := NewClient(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	client.Close()
}
