package cache

import "container/list"

// LRU is a bounded map with least-recently-used eviction.
//
// Both Get and Add mark the key as most recently used; once capacity is
// exceeded the least recently used entry is evicted. An LRU is not safe for
// concurrent use; callers that share one across goroutines must hold their
// own lock around Get/Add pairs.
type LRU[K comparable, V any] struct {
	capacity int
	order    *list.List // front = most recently used
	items    map[K]*list.Element
}

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// NewLRU creates an LRU holding at most capacity entries.
// A capacity below 1 is treated as 1.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU[K, V]{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[K]*list.Element, capacity),
	}
}

// Get returns the value stored under key and whether it was present.
func (l *LRU[K, V]) Get(key K) (V, bool) {
	if el, ok := l.items[key]; ok {
		l.order.MoveToFront(el)
		return el.Value.(*lruEntry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Add stores value under key, evicting the least recently used entry if the
// cache is full. Adding an existing key updates its value and recency.
func (l *LRU[K, V]) Add(key K, value V) {
	if el, ok := l.items[key]; ok {
		el.Value.(*lruEntry[K, V]).value = value
		l.order.MoveToFront(el)
		return
	}
	l.items[key] = l.order.PushFront(&lruEntry[K, V]{key: key, value: value})
	if l.order.Len() > l.capacity {
		oldest := l.order.Back()
		l.order.Remove(oldest)
		delete(l.items, oldest.Value.(*lruEntry[K, V]).key)
	}
}

// Remove deletes key from the cache, reporting whether it was present.
func (l *LRU[K, V]) Remove(key K) bool {
	el, ok := l.items[key]
	if !ok {
		return false
	}
	l.order.Remove(el)
	delete(l.items, key)
	return true
}

// Len returns the number of cached entries.
func (l *LRU[K, V]) Len() int { return l.order.Len() }

// Purge removes all entries.
func (l *LRU[K, V]) Purge() {
	l.order.Init()
	clear(l.items)
}
