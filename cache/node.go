package cache

// node is an intrusive doubly linked list element owned by the cache.
// The recency list's two sentinels share this type; sentinels carry
// zero key/val and are never handed out.
type node[K comparable, V any] struct {
	key K
	val V

	// Intrusive list links: head side is MRU, tail side is LRU.
	// Both are nil while the node is detached.
	prev *node[K, V]
	next *node[K, V]
}
