package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"cultural-search-api/core/interfaces"
	"cultural-search-api/pkg/config"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration tests need a Redis instance at REDIS_TEST_ADDR
func testConfig(t *testing.T) config.RedisConfig {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("Skipping Redis integration tests - set REDIS_TEST_ADDR to run")
	}
	return config.RedisConfig{Address: addr, KeyPrefix: "cultural-search-test:"}
}

func TestNewRedisCache_EmptyAddress(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{})

	assert.Error(t, err)
	assert.Nil(t, cache)
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{Address: "127.0.0.1:1"})

	assert.Error(t, err)
	assert.Nil(t, cache)
}

func TestRedisCache_KeyPrefix(t *testing.T) {
	cache := newWithClient(goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"}), "hints:")
	defer cache.Close()

	assert.Equal(t, "hints:春节", cache.key("春节"))
}

func TestRedisCache_RoundTrip(t *testing.T) {
	cache, err := NewRedisCache(testConfig(t))
	require.NoError(t, err)
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))

	require.NoError(t, cache.Delete(ctx, "k"))
	_, err = cache.Get(ctx, "k")
	assert.ErrorIs(t, err, interfaces.ErrCacheMiss)
}
