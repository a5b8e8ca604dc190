package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	platformconfig "github.com/sojang/bizboard/internal/platform/config"
)

// Cache errors
var (
	// ErrKeyNotFound is returned when a key is absent or expired
	ErrKeyNotFound = errors.New("cache: key not found")
	// ErrCacheDisabled is returned when operating on a closed or disabled cache
	ErrCacheDisabled = errors.New("cache: disabled")
	// ErrCacheUnavailable is returned when the cache backend cannot be reached
	ErrCacheUnavailable = errors.New("cache: backend unavailable")
)

// Cache defines the generic cache interface for all cache implementations
type Cache interface {
	// Get retrieves a value from cache by key
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes values from cache by key
	Delete(ctx context.Context, keys ...string) error

	// Close closes the cache connection
	Close() error
}

// New builds a cache from platform configuration. A disabled cache yields a
// no-op implementation so callers never need a nil check.
func New(cfg *platformconfig.CacheConfig) (Cache, error) {
	if cfg == nil || !cfg.Enabled {
		return NewNoopCache(), nil
	}

	switch cfg.Backend {
	case "redis":
		return NewRedisCache(cfg)
	case "memory":
		return NewMemoryCache(), nil
	default:
		return nil, fmt.Errorf("cache: unknown backend %q", cfg.Backend)
	}
}

// PostKey builds the cache key for a single post
func PostKey(prefix string, postID int64) string {
	return fmt.Sprintf("%spost:%d", prefix, postID)
}

// noopCache ignores writes and misses every read
type noopCache struct{}

// NewNoopCache creates a cache that stores nothing
func NewNoopCache() Cache {
	return noopCache{}
}

func (noopCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, ErrKeyNotFound
}

func (noopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (noopCache) Delete(ctx context.Context, keys ...string) error {
	return nil
}

func (noopCache) Close() error {
	return nil
}
