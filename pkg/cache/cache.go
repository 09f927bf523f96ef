package cache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a generic key-value cache with TTL support.
//
// TTL semantics for Set:
//   - Positive duration: entry expires after this duration
//   - Zero: use the cache's configured default TTL
//   - Negative: entry never expires
type Cache[V any] interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) (V, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// Delete removes a key from the cache.
	Delete(ctx context.Context, key string) error

	// Close releases resources (stops background goroutines, etc.).
	Close() error
}

var group singleflight.Group

// GetOrSet retrieves a value from the cache, or calls fn to compute it on a
// miss. Concurrent misses on the same key are deduplicated with
// singleflight, so fn runs at most once per key at a time.
//
// If fn returns an error, nothing is cached and the error is returned.
// The computed value is stored with the cache's default TTL.
func GetOrSet[V any](ctx context.Context, c Cache[V], key string, fn func(ctx context.Context) (V, error)) (V, error) {
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	v, err, _ := group.Do(key, func() (any, error) {
		return fn(ctx)
	})
	if err != nil {
		var zero V
		return zero, err
	}

	val := v.(V)

	// Best-effort: a Set failure never loses the computed value.
	_ = c.Set(ctx, key, val, 0)

	return val, nil
}
