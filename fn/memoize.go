package fn

import "sync"

// ─────────────────────────────────────────────────────────────────────────────
// Memoization
// ─────────────────────────────────────────────────────────────────────────────

// Cache stores memoized results. Implementations need no internal
// locking: the memoized wrapper serialises access.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, value V)
}

// MapCache is the default [Cache]: an unbounded map, nothing evicted.
type MapCache[K comparable, V any] struct {
	entries map[K]V
}

// NewMapCache returns an empty unbounded cache.
func NewMapCache[K comparable, V any]() *MapCache[K, V] {
	return &MapCache[K, V]{entries: make(map[K]V)}
}

func (c *MapCache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *MapCache[K, V]) Put(key K, value V) {
	c.entries[key] = value
}

// BoundedCache is a [Cache] holding at most capacity entries. When full,
// inserting a new key evicts one existing entry, chosen arbitrarily.
// Eviction is best-effort capacity control, not an LRU.
type BoundedCache[K comparable, V any] struct {
	entries  map[K]V
	capacity int
}

// NewBoundedCache returns a cache evicting past capacity entries.
// A non-positive capacity caches nothing.
func NewBoundedCache[K comparable, V any](capacity int) *BoundedCache[K, V] {
	return &BoundedCache[K, V]{
		entries:  make(map[K]V),
		capacity: capacity,
	}
}

func (c *BoundedCache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *BoundedCache[K, V]) Put(key K, value V) {
	if c.capacity <= 0 {
		return
	}
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[key] = value
}

// Memoize wraps f so each distinct argument is computed once and served
// from an unbounded cache afterwards. The wrapper is safe for concurrent
// use; f runs under the wrapper's lock, so it must not call back into
// the same wrapper.
func Memoize[K comparable, V any](f func(K) V) func(K) V {
	return MemoizeInto(f, NewMapCache[K, V]())
}

// MemoizeInto is [Memoize] with a caller-supplied cache, for bounded or
// otherwise customised retention.
func MemoizeInto[K comparable, V any](f func(K) V, cache Cache[K, V]) func(K) V {
	var mu sync.Mutex
	return func(key K) V {
		mu.Lock()
		defer mu.Unlock()
		if v, ok := cache.Get(key); ok {
			return v
		}
		v := f(key)
		cache.Put(key, v)
		return v
	}
}
