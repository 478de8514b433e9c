package cache

// recencyList is an intrusive doubly linked list ordered by recency of
// use. Two permanently allocated sentinel nodes bracket the live chain:
// head.next is the most recently used entry and tail.prev the least
// recently used. Because every live node always has two non-nil
// neighbors, splices never branch on the list ends.
type recencyList[K comparable, V any] struct {
	head *node[K, V] // sentinel; head.next = MRU
	tail *node[K, V] // sentinel; tail.prev = LRU
	len  int         // number of live entries between the sentinels
}

// newRecencyList allocates the sentinel pair and links them to each other.
func newRecencyList[K comparable, V any]() *recencyList[K, V] {
	l := &recencyList[K, V]{
		head: &node[K, V]{},
		tail: &node[K, V]{},
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	return l
}

// pushFront links a detached node at MRU in O(1).
func (l *recencyList[K, V]) pushFront(n *node[K, V]) {
	n.prev = l.head
	n.next = l.head.next
	l.head.next.prev = n
	l.head.next = n
	l.len++
}

// moveToFront promotes n to MRU in O(1). Calling it with a detached
// node is safe: the unlink no-ops and the node is linked at the front.
func (l *recencyList[K, V]) moveToFront(n *node[K, V]) {
	if l.head.next == n {
		return
	}
	l.unlink(n)
	l.pushFront(n)
}

// unlink splices n out of the list in O(1). Idempotent: a detached node
// has nil links and the call returns immediately.
func (l *recencyList[K, V]) unlink(n *node[K, V]) {
	if n.prev == nil || n.next == nil {
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
	l.len--
}

// removeOldest unlinks and returns the current LRU entry (tail.prev).
// Callers guard emptiness with their own size check; on an empty list
// this returns the head sentinel and the unlink is a no-op.
func (l *recencyList[K, V]) removeOldest() *node[K, V] {
	n := l.tail.prev
	l.unlink(n)
	return n
}
