package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is an injectable in-process cache. The default implementation
// never evicts; callers needing bounded memory use NewLRU instead.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Remove(key K)
}

type unbounded[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// NewUnbounded returns a cache that grows without bound and never
// evicts entries.
func NewUnbounded[K comparable, V any]() Cache[K, V] {
	return &unbounded[K, V]{entries: make(map[K]V)}
}

func (c *unbounded[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *unbounded[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *unbounded[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

type lruCache[K comparable, V any] struct {
	inner *lru.Cache[K, V]
}

// NewLRU returns a size-bounded cache evicting least-recently-used
// entries.
func NewLRU[K comparable, V any](size int) (Cache[K, V], error) {
	inner, err := lru.New[K, V](size)
	if err != nil {
		return nil, err
	}
	return &lruCache[K, V]{inner: inner}, nil
}

func (c *lruCache[K, V]) Get(key K) (V, bool) {
	return c.inner.Get(key)
}

func (c *lruCache[K, V]) Set(key K, value V) {
	c.inner.Add(key, value)
}

func (c *lruCache[K, V]) Remove(key K) {
	c.inner.Remove(key)
}
