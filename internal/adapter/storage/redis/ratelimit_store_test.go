package redis_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"coin-launch-gateway/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_Allow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redis.NewRateLimitStore(client)
	ctx := context.Background()

	t.Run("allows requests within limit", func(t *testing.T) {
		for i := int64(1); i <= 3; i++ {
			result, err := store.Allow(ctx, "203.0.113.7", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, result.Allowed, "request %d should be allowed", i)
			assert.Equal(t, int64(3), result.Limit)
			assert.Equal(t, 3-i, result.Remaining)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		// 4th request should be blocked (limit is 3 from above)
		result, err := store.Allow(ctx, "203.0.113.7", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, int64(0), result.Remaining)
	})

	t.Run("different clients are independent", func(t *testing.T) {
		result, err := store.Allow(ctx, "198.51.100.2", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(4), result.Remaining)
	})

	t.Run("reset after window expires", func(t *testing.T) {
		key := "192.0.2.10"
		_, err := store.Allow(ctx, key, 1, time.Minute)
		require.NoError(t, err)

		// Second request in same window is blocked
		result, err := store.Allow(ctx, key, 1, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)

		// Fast-forward time in miniredis
		mr.FastForward(61 * time.Second)

		// Now a new window should allow
		result, err = store.Allow(ctx, key, 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	})

	t.Run("sets correct ResetAt", func(t *testing.T) {
		result, err := store.Allow(ctx, "192.0.2.20", 10, 15*time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Greater(t, result.ResetAt, time.Now().Unix()-1)
		assert.LessOrEqual(t, result.ResetAt, time.Now().Add(15*time.Minute).Unix())
	})

	t.Run("counter key expires with the window", func(t *testing.T) {
		_, err := store.Allow(ctx, "192.0.2.30", 10, 15*time.Minute)
		require.NoError(t, err)

		var ttl time.Duration
		for _, k := range mr.Keys() {
			if strings.HasPrefix(k, "launch:ratelimit:192.0.2.30:") {
				ttl = mr.TTL(k)
			}
		}
		assert.Equal(t, 15*time.Minute+time.Second, ttl)
	})

	t.Run("later hits keep the original expiry", func(t *testing.T) {
		_, err := store.Allow(ctx, "192.0.2.40", 10, 15*time.Minute)
		require.NoError(t, err)
		mr.FastForward(10 * time.Second)
		_, err = store.Allow(ctx, "192.0.2.40", 10, 15*time.Minute)
		require.NoError(t, err)

		for _, k := range mr.Keys() {
			if strings.HasPrefix(k, "launch:ratelimit:192.0.2.40:") {
				assert.Equal(t, 15*time.Minute-9*time.Second, mr.TTL(k))
			}
		}
	})
}

func TestRateLimitStore_RepairsCounterWithoutTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redis.NewRateLimitStore(client)
	window := 24 * time.Hour
	windowID := time.Now().Unix() / int64(window/time.Second)
	key := fmt.Sprintf("launch:ratelimit:203.0.113.9:%d", windowID)

	// A counter left behind without an expiry.
	require.NoError(t, mr.Set(key, "4"))
	require.Zero(t, mr.TTL(key))

	result, err := store.Allow(context.Background(), "203.0.113.9", 10, window)
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.Limit-result.Remaining)
	assert.Equal(t, window+time.Second, mr.TTL(key))
}

func TestRateLimitStore_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()

	store := redis.NewRateLimitStore(client)
	mr.Close()

	_, err := store.Allow(context.Background(), "203.0.113.7", 3, time.Minute)
	assert.Error(t, err)
}
