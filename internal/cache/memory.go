package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/lorehaven/canon/internal/model"
)

// MemoryCache implements in-memory entry caching
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves an entry from the cache
func (c *MemoryCache) Get(key string) (*model.Entry, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(*model.Entry), true
	}
	return nil, false
}

// Set stores an entry in the cache with the given TTL
func (c *MemoryCache) Set(key string, entry *model.Entry, ttl time.Duration) error {
	c.cache.Set(key, entry, ttl)
	return nil
}

// Delete removes an entry from the cache
func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes all entries from the cache
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}
