// Package interfaces defines the contracts between the search core and the
// adapters that feed it.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

// Cache stores opaque values for the hint cache. Backends are memory,
// Redis and SQLite.
//
//	err := cache.Set(ctx, "hint:春节", hintJSON, time.Hour)
//	data, err := cache.Get(ctx, "hint:春节") // ErrCacheMiss when absent
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value; a zero ttl keeps it until evicted
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete is a no-op for missing keys
	Delete(ctx context.Context, key string) error
}
