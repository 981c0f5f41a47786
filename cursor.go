package ordmap

import (
	"cmp"

	"github.com/npillmayer/ordmap/wbtree"
)

// MapCursor navigates the entries of a map in ascending key order.
//
// The cursor is bound to one map snapshot and is itself stateful: Next
// advances it in place, which reads more naturally in scanning loops than
// threading the immutable wbtree.Cursor by hand. Fork splits off independent
// readers at the current position for the cases where the value semantics of
// the underlying cursor protocol is wanted after all.
type MapCursor[K cmp.Ordered, V any] struct {
	m     Map[K, V]
	inner wbtree.Cursor[K, V]
}

// NewMapCursor creates a cursor at the smallest key of the map.
func (m Map[K, V]) NewMapCursor() *MapCursor[K, V] {
	return &MapCursor[K, V]{m: m, inner: m.Cursor()}
}

// NewMapCursorAt creates a cursor at the smallest key >= key of the map.
func (m Map[K, V]) NewMapCursorAt(key K) *MapCursor[K, V] {
	return &MapCursor[K, V]{m: m, inner: m.CursorAt(key)}
}

// Next returns the entry at the current cursor position and advances past it.
//
// If the cursor is exhausted, ok is false.
func (mc *MapCursor[K, V]) Next() (entry wbtree.Entry[K, V], ok bool) {
	if mc == nil {
		return entry, false
	}
	entry, advanced, ok := mc.inner.Next()
	if !ok {
		return entry, false
	}
	mc.inner = advanced
	return entry, true
}

// Done reports whether the cursor is exhausted.
func (mc *MapCursor[K, V]) Done() bool {
	return mc == nil || mc.inner.Done()
}

// Seek repositions the cursor at the smallest key >= key of its map.
func (mc *MapCursor[K, V]) Seek(key K) error {
	if mc == nil {
		return ErrIllegalArguments
	}
	mc.inner = mc.m.CursorAt(key)
	return nil
}

// Rewind repositions the cursor at the smallest key of its map.
func (mc *MapCursor[K, V]) Rewind() error {
	if mc == nil {
		return ErrIllegalArguments
	}
	mc.inner = mc.m.Cursor()
	return nil
}

// Fork returns an independent cursor at the current position. Advancing
// either cursor does not move the other.
func (mc *MapCursor[K, V]) Fork() *MapCursor[K, V] {
	if mc == nil {
		return nil
	}
	forked := *mc
	return &forked
}
