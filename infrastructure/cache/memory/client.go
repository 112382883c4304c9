// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Provides a process-local cache with TTL support and periodic cleanup

package memory

import (
	"context"
	"time"

	"cultural-search-api/core/interfaces"
	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements the Cache interface using in-memory storage
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance.
// cleanupInterval controls how often expired entries are purged.
func NewMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	if cleanupInterval <= 0 {
		cleanupInterval = 10 * time.Minute
	}
	return &MemoryCache{
		items: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, ok := c.items.Get(key)
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}

	stored := value.([]byte)
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL; 0 never expires
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	expiration := ttl
	if ttl <= 0 {
		expiration = gocache.NoExpiration
	}
	c.items.Set(key, valueCopy, expiration)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.items.Delete(key)
	return nil
}

// Count returns the number of cached entries, expired ones included until cleanup
func (c *MemoryCache) Count() int {
	return c.items.ItemCount()
}
