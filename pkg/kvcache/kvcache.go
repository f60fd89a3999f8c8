// Package kvcache provides a small TTL key-value cache abstraction used by
// the guideline retrieval engine.
package kvcache

import (
	"context"
	"time"
)

// Cache is a byte-oriented cache with per-entry expiry. Implementations must
// return errors rather than panic; callers decide whether a failure is fatal.
type Cache interface {
	// Get returns the cached value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// SetTTL stores value under key, expiring after ttl.
	SetTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
