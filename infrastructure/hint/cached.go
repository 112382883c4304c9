// ABOUTME: Caching decorator for keyword hint providers
// ABOUTME: Stores successful hints under "hint:<query>" and never caches failures

package hint

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cultural-search-api/core/domain"
	"cultural-search-api/core/interfaces"
)

const keyPrefix = "hint:"

// CachedProvider serves hints from a cache before asking the wrapped provider
type CachedProvider struct {
	next   interfaces.HintProvider
	cache  interfaces.Cache
	ttl    time.Duration
	logger interfaces.Logger
}

// NewCachedProvider wraps next with cache. A zero ttl keeps entries until evicted.
func NewCachedProvider(next interfaces.HintProvider, cache interfaces.Cache, ttl time.Duration, logger interfaces.Logger) *CachedProvider {
	return &CachedProvider{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Hint returns the cached hint for query or fetches and stores it.
// A cached "no hint" answer is a hit as well.
func (c *CachedProvider) Hint(ctx context.Context, query string) (*domain.Hint, error) {
	key := keyPrefix + query

	data, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		var hint *domain.Hint
		if err := json.Unmarshal(data, &hint); err == nil {
			return hint, nil
		}
		c.warn("Discarding corrupt cached hint", key, err)
	case !errors.Is(err, interfaces.ErrCacheMiss):
		c.warn("Hint cache read failed", key, err)
	}

	hint, err := c.next.Hint(ctx, query)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(hint); err == nil {
		if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
			c.warn("Hint cache write failed", key, err)
		}
	}
	return hint, nil
}

func (c *CachedProvider) warn(msg, key string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Warn(msg, map[string]interface{}{
		"key":   key,
		"error": err.Error(),
	})
}
