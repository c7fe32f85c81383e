package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRedisCache cria um RedisCache ligado a um miniredis
func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client, "test:"), mr
}

func TestRedisCacheGetSetDelete(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedisCache(t)

	require.NoError(t, c.Set(ctx, "admin:1", []byte("2025-03-10T12:00:00Z"), time.Hour))
	assert.True(t, mr.Exists("test:admin:1"))

	value, found, err := c.Get(ctx, "admin:1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "2025-03-10T12:00:00Z", string(value))

	require.NoError(t, c.Delete(ctx, "admin:1"))
	_, found, err = c.Get(ctx, "admin:1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCacheTTL(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedisCache(t)

	require.NoError(t, c.Set(ctx, "draft:1", []byte("{}"), time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("test:draft:1"))

	mr.FastForward(2 * time.Minute)
	_, found, err := c.Get(ctx, "draft:1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCacheDefaultPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c := NewRedisCache(client, "")
	require.NoError(t, c.Set(context.Background(), "k", []byte("v"), 0))
	assert.True(t, mr.Exists(DefaultPrefix+"k"))
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()

	client, err := NewRedisClient(context.Background(), "redis://"+addr)
	require.NoError(t, err)
	client.Close()

	client, err = NewRedisClient(context.Background(), addr)
	require.NoError(t, err)
	client.Close()

	mr.Close()
	_, err = NewRedisClient(context.Background(), "redis://"+addr)
	assert.Error(t, err)
}

func TestRedisCacheBackendFailure(t *testing.T) {
	c, mr := newTestRedisCache(t)
	mr.Close()

	_, _, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
}
