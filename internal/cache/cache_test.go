package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/trainer-marketplace/internal/config"
)

func newCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

type item struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestJSONRoundTrip(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	var got []item
	ok, err := c.GetJSON(ctx, "zones", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.SetJSON(ctx, "zones", []item{{1, "centro"}}))
	ok, err = c.GetJSON(ctx, "zones", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []item{{1, "centro"}}, got)

	mr.FastForward(2 * time.Minute)
	ok, err = c.GetJSON(ctx, "zones", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClaim(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	won, err := c.Claim(ctx, "webhook:1", time.Hour)
	require.NoError(t, err)
	assert.True(t, won)

	won, err = c.Claim(ctx, "webhook:1", time.Hour)
	require.NoError(t, err)
	assert.False(t, won)

	require.NoError(t, c.Release(ctx, "webhook:1"))
	won, err = c.Claim(ctx, "webhook:1", time.Hour)
	require.NoError(t, err)
	assert.True(t, won)
}

func TestNilCache(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	ok, err := c.GetJSON(ctx, "k", &[]item{})
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.SetJSON(ctx, "k", 1))

	won, err := c.Claim(ctx, "k", time.Second)
	assert.NoError(t, err)
	assert.True(t, won)
	assert.NoError(t, c.Release(ctx, "k"))
	assert.NoError(t, c.Close())
}

func TestNew(t *testing.T) {
	c, err := New(context.Background(), &config.Config{})
	assert.NoError(t, err)
	assert.Nil(t, c)

	mr := miniredis.RunT(t)
	c, err = New(context.Background(), &config.Config{RedisAddr: mr.Addr(), CatalogCacheTTL: time.Minute})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.NoError(t, c.Close())
}
