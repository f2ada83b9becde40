package cache

import (
	"context"
	"sync"
	"time"
)

// memoryDefaultCapacity bounds a MemoryCache when no capacity is given.
const memoryDefaultCapacity = 512

// MemoryCache is a bounded in-process cache backend.
//
// Entries are evicted least-recently-used once capacity is exceeded, and
// lazily on read once expired. Unlike [LRU], a MemoryCache is safe for
// concurrent use; the serve command shares one across request handlers.
type MemoryCache struct {
	mu  sync.Mutex
	lru *LRU[string, memoryEntry]
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache creates an in-memory cache holding at most capacity entries.
// A capacity of 0 or less falls back to a sensible default.
func NewMemoryCache(capacity int) *MemoryCache {
	if capacity <= 0 {
		capacity = memoryDefaultCapacity
	}
	return &MemoryCache{lru: NewLRU[string, memoryEntry](capacity)}
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.data, true, nil
}

// Set stores a value in the cache.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, entry)
	return nil
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(key)
	return nil
}

// Close does nothing for memory cache.
func (c *MemoryCache) Close() error {
	return nil
}

// Ensure MemoryCache implements Cache.
var _ Cache = (*MemoryCache)(nil)
