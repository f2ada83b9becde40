// Package cache provides pluggable cache backends for recall lookups.
//
// # Overview
//
// Two kinds of caching live here:
//
//   - [Cache]: a byte-oriented backend interface with TTL semantics, used to
//     cache upstream API responses across processes. Implementations include
//     [FileCache], [MemoryCache], [RedisCache], [MongoCache], and the no-op
//     [NullCache].
//   - [LRU]: a small bounded in-process map with least-recently-used
//     eviction, used by the lookup client to memoize results per argument
//     tuple.
//
// # Keys
//
// Cache keys can be any string; backends that need filesystem- or
// database-safe names hash keys with [Hash]. Namespacing keys by lookup type
// (e.g. "vehicle:...", "campaign:...") avoids collisions.
package cache

import (
	"context"
	"time"
)

// Cache is the interface implemented by all cache backends.
//
// Get returns the cached bytes for key, a hit flag, and an error. A miss is
// (nil, false, nil); expired entries are treated as misses. Set stores data
// under key for ttl; a ttl of 0 means the entry never expires. Delete removes
// a key and is a no-op when the key is absent. Close releases any resources
// held by the backend.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
