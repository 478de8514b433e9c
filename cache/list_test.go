package cache

import (
	"reflect"
	"testing"
)

// chain walks head -> tail and returns the keys of the live entries.
func chain(l *recencyList[string, int]) []string {
	var keys []string
	for n := l.head.next; n != l.tail; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

// reverseChain walks tail -> head to verify the prev links mirror next.
func reverseChain(l *recencyList[string, int]) []string {
	var keys []string
	for n := l.tail.prev; n != l.head; n = n.prev {
		keys = append(keys, n.key)
	}
	return keys
}

func TestRecencyList_PushMoveRemove(t *testing.T) {
	t.Parallel()

	l := newRecencyList[string, int]()
	a := &node[string, int]{key: "a"}
	b := &node[string, int]{key: "b"}
	c := &node[string, int]{key: "c"}

	l.pushFront(a)
	l.pushFront(b)
	l.pushFront(c)
	if want := []string{"c", "b", "a"}; !reflect.DeepEqual(chain(l), want) {
		t.Fatalf("chain want %v, got %v", want, chain(l))
	}

	l.moveToFront(a)
	if want := []string{"a", "c", "b"}; !reflect.DeepEqual(chain(l), want) {
		t.Fatalf("chain after move want %v, got %v", want, chain(l))
	}
	if want := []string{"b", "c", "a"}; !reflect.DeepEqual(reverseChain(l), want) {
		t.Fatalf("reverse chain want %v, got %v", want, reverseChain(l))
	}

	if got := l.removeOldest(); got != b {
		t.Fatalf("removeOldest want b, got %v", got.key)
	}
	if l.len != 2 {
		t.Fatalf("len want 2, got %d", l.len)
	}
}

// unlink must be an idempotent no-op on an already detached node, and
// must leave the remaining chain intact.
func TestRecencyList_UnlinkIdempotent(t *testing.T) {
	t.Parallel()

	l := newRecencyList[string, int]()
	a := &node[string, int]{key: "a"}
	b := &node[string, int]{key: "b"}
	l.pushFront(a)
	l.pushFront(b)

	l.unlink(a)
	if a.prev != nil || a.next != nil {
		t.Fatal("detached node must have nil links")
	}
	l.unlink(a) // second unlink is a no-op
	l.unlink(a)

	if l.len != 1 {
		t.Fatalf("len want 1 after repeated unlink, got %d", l.len)
	}
	if want := []string{"b"}; !reflect.DeepEqual(chain(l), want) {
		t.Fatalf("chain want %v, got %v", want, chain(l))
	}
	if want := []string{"b"}; !reflect.DeepEqual(reverseChain(l), want) {
		t.Fatalf("reverse chain want %v, got %v", want, reverseChain(l))
	}
}

// moveToFront on a detached node links it at MRU (unlink no-ops first).
func TestRecencyList_MoveToFrontDetached(t *testing.T) {
	t.Parallel()

	l := newRecencyList[string, int]()
	a := &node[string, int]{key: "a"}
	b := &node[string, int]{key: "b"}
	l.pushFront(a)

	l.moveToFront(b)
	if want := []string{"b", "a"}; !reflect.DeepEqual(chain(l), want) {
		t.Fatalf("chain want %v, got %v", want, chain(l))
	}
	if l.len != 2 {
		t.Fatalf("len want 2, got %d", l.len)
	}
}

// moveToFront of the current MRU must be a no-op that keeps the chain valid.
func TestRecencyList_MoveToFrontHead(t *testing.T) {
	t.Parallel()

	l := newRecencyList[string, int]()
	a := &node[string, int]{key: "a"}
	b := &node[string, int]{key: "b"}
	l.pushFront(a)
	l.pushFront(b)

	l.moveToFront(b)
	if want := []string{"b", "a"}; !reflect.DeepEqual(chain(l), want) {
		t.Fatalf("chain want %v, got %v", want, chain(l))
	}
	if l.len != 2 {
		t.Fatalf("len want 2, got %d", l.len)
	}
}

// The sentinels are permanent: they survive emptying the list and keep
// removeOldest harmless on an empty list.
func TestRecencyList_Sentinels(t *testing.T) {
	t.Parallel()

	l := newRecencyList[string, int]()
	a := &node[string, int]{key: "a"}
	l.pushFront(a)
	l.unlink(a)

	if l.head.next != l.tail || l.tail.prev != l.head {
		t.Fatal("empty list must collapse to linked sentinels")
	}
	if l.len != 0 {
		t.Fatalf("len want 0, got %d", l.len)
	}

	// removeOldest on an empty list returns the head sentinel unchanged.
	if got := l.removeOldest(); got != l.head {
		t.Fatal("removeOldest on empty list must return the head sentinel")
	}
	if l.head.next != l.tail || l.tail.prev != l.head || l.len != 0 {
		t.Fatal("empty removeOldest must not corrupt the sentinels")
	}
}
