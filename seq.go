package ordmap

import (
	"iter"

	"github.com/npillmayer/ordmap/wbtree"
)

// RangeEntry returns an iterator over all entries in ascending key order.
//
// The iterator is a thin adapter over the cursor protocol: every ranging
// builds its own cursor on this map version, so concurrent or nested
// rangings never disturb each other, and the loop may simply be abandoned.
func (m Map[K, V]) RangeEntry() iter.Seq2[K, V] {
	return rangeCursor(m.Cursor())
}

// RangeEntryFrom returns an iterator over the entries with key >= key, in
// ascending key order.
func (m Map[K, V]) RangeEntryFrom(key K) iter.Seq2[K, V] {
	return rangeCursor(m.CursorAt(key))
}

// RangeKey returns an iterator over all keys in ascending order.
func (m Map[K, V]) RangeKey() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range m.RangeEntry() {
			if !yield(key) {
				return
			}
		}
	}
}

// RangeValue returns an iterator over all values, ordered by their keys.
func (m Map[K, V]) RangeValue() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, val := range m.RangeEntry() {
			if !yield(val) {
				return
			}
		}
	}
}

// rangeCursor drains cursor into an iterator. The cursor's exhaustion signal
// terminates the sequence; an exhausted cursor is not asked again. The start
// cursor itself stays put, so the returned iterator is reusable.
func rangeCursor[K, V any](cursor wbtree.Cursor[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for cur := cursor; ; {
			entry, next, ok := cur.Next()
			if !ok {
				return
			}
			if !yield(entry.Key, entry.Val) {
				return
			}
			cur = next
		}
	}
}
