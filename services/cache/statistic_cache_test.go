package cache

import (
	"context"
	"testing"
	"time"

	"surveyapi/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNoopCache_AlwaysMisses tests that nothing is ever returned.
func TestNoopCache_AlwaysMisses(t *testing.T) {
	c := NoopCache{}
	ctx := context.Background()

	c.Set(ctx, &models.Statistic{QuestionID: 1, AgreeCount: 3})
	_, ok := c.Get(ctx, 1)
	assert.False(t, ok)
	c.Invalidate(ctx, 1)
}

// TestConnect_WithoutAddressDisablesCache tests the empty REDIS_ADDR path.
func TestConnect_WithoutAddressDisablesCache(t *testing.T) {
	c, closeFn := Connect(context.Background(), "", "", 0, time.Second)
	assert.IsType(t, NoopCache{}, c)
	assert.NoError(t, closeFn())
}

// TestConnect_UnreachableFallsBack tests that a dead Redis degrades to the no-op cache.
func TestConnect_UnreachableFallsBack(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c, closeFn := Connect(ctx, "127.0.0.1:1", "", 0, time.Second)
	assert.IsType(t, NoopCache{}, c)
	assert.NoError(t, closeFn())
}

// TestStatisticKey tests the key layout shared by every instance.
func TestStatisticKey(t *testing.T) {
	assert.Equal(t, "survey:statistic:12", statisticKey(12))
}

func newRedisCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisCache(rdb, ttl), mr
}

// TestRedisCache_SetThenGet tests the JSON round trip and the TTL on stored entries.
func TestRedisCache_SetThenGet(t *testing.T) {
	c, mr := newRedisCache(t, 30*time.Second)
	ctx := context.Background()

	c.Set(ctx, &models.Statistic{QuestionID: 4, AgreeCount: 3, DisagreeCount: 1})

	got, ok := c.Get(ctx, 4)
	require.True(t, ok)
	assert.Equal(t, uint(4), got.QuestionID)
	assert.Equal(t, 3, got.AgreeCount)
	assert.Equal(t, 1, got.DisagreeCount)
	assert.Equal(t, 30*time.Second, mr.TTL(statisticKey(4)))

	mr.FastForward(31 * time.Second)
	_, ok = c.Get(ctx, 4)
	assert.False(t, ok, "entry must expire with its TTL")
}

// TestRedisCache_MissAndInvalidate tests unknown keys and explicit removal.
func TestRedisCache_MissAndInvalidate(t *testing.T) {
	c, mr := newRedisCache(t, time.Minute)
	ctx := context.Background()

	_, ok := c.Get(ctx, 9)
	assert.False(t, ok)

	c.Set(ctx, &models.Statistic{QuestionID: 9, AgreeCount: 2})
	require.True(t, mr.Exists(statisticKey(9)))

	c.Invalidate(ctx, 9)
	assert.False(t, mr.Exists(statisticKey(9)))
	_, ok = c.Get(ctx, 9)
	assert.False(t, ok)

	c.Invalidate(ctx, 10)
}

// TestRedisCache_CorruptEntryIsDropped tests that undecodable values count as a miss and are deleted.
func TestRedisCache_CorruptEntryIsDropped(t *testing.T) {
	c, mr := newRedisCache(t, time.Minute)
	require.NoError(t, mr.Set(statisticKey(5), "{not json"))

	_, ok := c.Get(context.Background(), 5)

	assert.False(t, ok)
	assert.False(t, mr.Exists(statisticKey(5)))
}

// TestRedisCache_ServerDownIsMiss tests that a lost connection degrades to misses.
func TestRedisCache_ServerDownIsMiss(t *testing.T) {
	c, mr := newRedisCache(t, time.Minute)
	ctx := context.Background()
	c.Set(ctx, &models.Statistic{QuestionID: 1, AgreeCount: 1})

	mr.Close()

	_, ok := c.Get(ctx, 1)
	assert.False(t, ok)
	c.Set(ctx, &models.Statistic{QuestionID: 1})
	c.Invalidate(ctx, 1)
}

// TestConnect_ReachableUsesRedis tests that a live server yields a RedisCache.
func TestConnect_ReachableUsesRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	c, closeFn := Connect(context.Background(), mr.Addr(), "", 0, time.Minute)
	defer closeFn()

	assert.IsType(t, &RedisCache{}, c)
}
