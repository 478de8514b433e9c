package cache

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity is returned by New when capacity is not positive.
var ErrInvalidCapacity = errors.New("cache: capacity must be positive")

// Cache is a fixed-capacity in-memory key/value store with exact
// least-recently-used eviction. A map index provides O(1) lookups and an
// intrusive doubly linked recency list provides O(1) reordering, so Get,
// Put, and eviction all run in O(1) expected time.
//
// A Cache is not safe for concurrent use: each instance assumes a single
// caller at a time, which keeps the hot path free of locks and atomics.
// Independent instances are fully isolated and may live on different
// goroutines.
type Cache[K comparable, V any] struct {
	capacity int
	index    map[K]*node[K, V]
	order    *recencyList[K, V]

	metrics Metrics
	onEvict EvictCallback[K, V]
}

// New constructs a cache bounded to capacity entries.
// capacity must be > 0; otherwise an error wrapping ErrInvalidCapacity
// is returned and nothing is allocated.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	o := defaultOptions[K, V]()
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[K, V]{
		capacity: capacity,
		index:    make(map[K]*node[K, V], capacity),
		order:    newRecencyList[K, V](),
		metrics:  o.metrics,
		onEvict:  o.onEvict,
	}, nil
}

// Get returns the value for k and a presence flag.
// On hit the entry is promoted to MRU; a miss leaves the cache unchanged.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	n, ok := c.index[k]
	if !ok {
		c.metrics.Miss()
		var zero V
		return zero, false
	}
	c.order.moveToFront(n)
	c.metrics.Hit()
	return n.val, true
}

// Put inserts or updates k→v and promotes the entry to MRU.
// When an insert pushes the cache over capacity, exactly one entry,
// the least recently used, is evicted before Put returns.
func (c *Cache[K, V]) Put(k K, v V) {
	if n, ok := c.index[k]; ok {
		// In-place update: overwrite the stored value and promote.
		n.val = v
		c.order.moveToFront(n)
		c.metrics.Size(len(c.index))
		return
	}

	n := &node[K, V]{key: k, val: v}
	c.index[k] = n
	c.order.pushFront(n)

	// A single insert overshoots capacity by at most one entry.
	if len(c.index) > c.capacity {
		c.evictOldest()
	}
	c.metrics.Size(len(c.index))
}

// Peek returns the value for k without promoting the entry and without
// touching metrics.
func (c *Cache[K, V]) Peek(k K) (V, bool) {
	if n, ok := c.index[k]; ok {
		return n.val, true
	}
	var zero V
	return zero, false
}

// Contains reports whether k is resident. Like Peek it does not disturb
// the recency order.
func (c *Cache[K, V]) Contains(k K) bool {
	_, ok := c.index[k]
	return ok
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int { return len(c.index) }

// Keys returns the resident keys ordered from most to least recently
// used. The slice is freshly allocated on every call.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.index))
	for n := c.order.head.next; n != c.order.tail; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

// evictOldest removes the LRU entry from both the list and the index,
// then reports it to metrics and the eviction callback.
func (c *Cache[K, V]) evictOldest() {
	n := c.order.removeOldest()
	delete(c.index, n.key)
	c.metrics.Evict()
	if c.onEvict != nil {
		c.onEvict(n.key, n.val)
	}
}
