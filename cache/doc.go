// Package cache provides a fast, generic, fixed-capacity in-memory cache
// with exact least-recently-used eviction, lightweight metrics hooks, and
// an optional eviction callback.
//
// Design
//
//   - Storage: a map[K]*node for lookups and an intrusive MRU↔LRU doubly
//     linked list for ordering. Two permanently allocated sentinel nodes
//     bracket the list, so splices never branch on the list ends.
//     All operations are O(1) expected.
//
//   - Eviction: purely capacity-driven. A Put that inserts a new key into
//     a full cache removes exactly one entry, the least recently used one.
//     There is no TTL and no explicit delete; entries leave the cache only
//     through eviction.
//
//   - Recency: Get promotes the entry to MRU. Put promotes on insert and
//     on update. Peek and Contains read without promoting.
//
//   - Concurrency: none. A Cache instance expects a single caller at a
//     time; the hot path carries no locks or atomics. Use one instance per
//     goroutine or add synchronization outside.
//
//   - Metrics: WithMetrics routes Hit/Miss/Evict/Size signals to a backend.
//     NoopMetrics is used by default; a Prometheus adapter lives in
//     metrics/prom.
//
//   - Callbacks: WithEvictCallback observes every evicted (key, value)
//     pair in eviction order.
//
// Basic usage
//
//	c, err := cache.New[string, int](128)
//	if err != nil {
//	    // capacity was not positive
//	}
//	c.Put("a", 1)
//	if v, ok := c.Get("a"); ok {
//	    _ = v // use value
//	}
//
// Exporting metrics (example Prometheus adapter)
//
//	m := prom.New(nil, "app", "cache", nil) // implements cache.Metrics
//	c, err := cache.New[string, []byte](10_000,
//	    cache.WithMetrics[string, []byte](m))
//
// Observing evictions
//
//	c, err := cache.New(2, cache.WithEvictCallback(func(k string, v int) {
//	    fmt.Println("evicted", k, v)
//	}))
//
// Complexity
//
// Typical operation cost is O(1) expected time: one map access and a
// constant number of pointer fixes. Eviction work is O(1) per removed
// item.
package cache
