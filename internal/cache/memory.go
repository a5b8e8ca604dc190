package cache

import (
	"context"
	"sync"
	"time"
)

// cacheItem represents an item in the memory cache
type cacheItem struct {
	value      []byte
	expiration time.Time
}

// MemoryCache implements Cache interface using in-memory storage
type MemoryCache struct {
	items  map[string]cacheItem
	mutex  sync.RWMutex
	closed bool
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		items: make(map[string]cacheItem),
	}
}

// Get retrieves a value from cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mutex.RLock()
	item, exists := c.items[key]
	closed := c.closed
	c.mutex.RUnlock()

	if closed {
		return nil, ErrCacheDisabled
	}
	if !exists {
		return nil, ErrKeyNotFound
	}
	if !item.expiration.IsZero() && time.Now().After(item.expiration) {
		// Expired entries are removed lazily on the next read.
		c.mutex.Lock()
		delete(c.items, key)
		c.mutex.Unlock()
		return nil, ErrKeyNotFound
	}

	// Return a copy so callers cannot mutate the stored slice.
	value := make([]byte, len(item.value))
	copy(value, item.value)
	return value, nil
}

// Set stores a value in cache with TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closed {
		return ErrCacheDisabled
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	var expiration time.Time
	if ttl > 0 {
		expiration = time.Now().Add(ttl)
	}

	c.items[key] = cacheItem{value: stored, expiration: expiration}
	return nil
}

// Delete removes values from cache
func (c *MemoryCache) Delete(ctx context.Context, keys ...string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closed {
		return ErrCacheDisabled
	}

	for _, key := range keys {
		delete(c.items, key)
	}
	return nil
}

// Close clears the cache and rejects further operations
func (c *MemoryCache) Close() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.closed = true
	c.items = nil
	return nil
}
