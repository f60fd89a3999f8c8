package kvcache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is an in-process Cache for single-instance deployments and
// tests.
type MemoryCache struct {
	cache *gocache.Cache
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{cache: gocache.New(gocache.NoExpiration, 10*time.Minute)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if x, found := c.cache.Get(key); found {
		return x.([]byte), true, nil
	}
	return nil, false, nil
}

func (c *MemoryCache) SetTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.cache.Set(key, value, ttl)
	return nil
}

var _ Cache = (*MemoryCache)(nil)
