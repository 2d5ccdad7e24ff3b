package cache

import (
	"context"
	"sync"
	"time"

	"github.com/productadvisor/backend/internal/domain"
)

// cacheItem is one memoized catalog with its expiration
type cacheItem struct {
	products   []domain.Product
	expiration time.Time
}

// MemoryCache is a thread-safe in-memory catalog cache with TTL support.
// It memoizes parsed feeds within a session; nothing persists across runs.
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory catalog cache
func NewMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		data: make(map[string]cacheItem),
	}

	// Remove expired entries every 10 minutes
	go cache.cleanupExpired()

	return cache
}

// Get retrieves a memoized catalog. Expired or absent keys report a miss.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]domain.Product, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists || time.Now().After(item.expiration) {
		return nil, domain.ErrCacheMiss
	}

	// Copy so callers cannot mutate the cached catalog
	products := make([]domain.Product, len(item.products))
	copy(products, item.products)
	return products, nil
}

// Set stores a catalog with a TTL
func (c *MemoryCache) Set(ctx context.Context, key string, products []domain.Product, ttl time.Duration) error {
	stored := make([]domain.Product, len(products))
	copy(stored, products)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheItem{
		products:   stored,
		expiration: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a catalog from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// Size returns the current number of cached catalogs (for debugging)
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, item := range c.data {
			if now.After(item.expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}
