// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Adds an explicit entry bound on top of the library's TTL handling

package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	// DefaultMaxEntries bounds cache growth when no explicit bound is given.
	DefaultMaxEntries = 10000

	cleanupInterval = 5 * time.Minute
)

// MemoryCache implements the Cache interface using an in-memory store with
// TTL support. Unlike an external cache service it has no capacity manager of
// its own, so writes enforce a maximum entry count: at capacity, expired
// entries are purged first and then the entry closest to expiry is evicted.
type MemoryCache struct {
	cache      *gocache.Cache
	maxEntries int
	mu         sync.Mutex
}

// NewMemoryCache creates a new in-memory cache instance. maxEntries <= 0
// selects DefaultMaxEntries.
func NewMemoryCache(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryCache{
		cache:      gocache.New(gocache.NoExpiration, cleanupInterval),
		maxEntries: maxEntries,
	}
}

// Get retrieves a value from the cache. Expired entries report as missing.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, found := c.cache.Get(key)
	if !found {
		return nil, errors.New("key not found")
	}

	data := value.([]byte)
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a value in the cache with the given TTL. A ttl of 0 stores the
// value without expiration.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	expiration := ttl
	if ttl == 0 {
		expiration = gocache.NoExpiration
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.cache.Get(key); !exists && c.cache.ItemCount() >= c.maxEntries {
		c.cache.DeleteExpired()
		if c.cache.ItemCount() >= c.maxEntries {
			c.evictNearestExpiry()
		}
	}

	c.cache.Set(key, valueCopy, expiration)
	return nil
}

// Delete removes a key from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}

// evictNearestExpiry removes the entry whose expiration is soonest, falling
// back to an arbitrary entry when everything is stored without expiration.
// Callers must hold c.mu.
func (c *MemoryCache) evictNearestExpiry() {
	var victim string
	var nearest int64

	for key, item := range c.cache.Items() {
		if victim == "" {
			victim = key
			nearest = item.Expiration
			continue
		}
		if item.Expiration > 0 && (nearest == 0 || item.Expiration < nearest) {
			victim = key
			nearest = item.Expiration
		}
	}

	if victim != "" {
		c.cache.Delete(victim)
	}
}
