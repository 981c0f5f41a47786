package ordmap

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/npillmayer/ordmap/wbtree"
)

// Map is an ordered, immutable key-value map, sorted by key. Keys are unique;
// binding a key again replaces its value.
//
// A map created by
//
//	Map[string, int]{}
//
// is a valid object and behaves like an empty map. Every modifying method
// returns a new map version and leaves the receiver untouched; versions share
// structure, so piling up versions is cheap. A Map value may be copied and
// read from any number of goroutines concurrently.
//
// Due to their internal structure ordered maps have performance
// characteristics differing from Go's built-in map.
//
//	Operation       |  ordmap.Map     |  builtin map
//	----------------+-----------------+-------------
//	Lookup          |   O(log n)      |   O(1)
//	Set             |   O(log n) am.  |   O(1)
//	Delete          |   O(log n)      |   O(1)
//	Smallest        |   O(log n)      |   O(n)
//	Ordered listing |   O(n)          |   O(n log n)
//	Keep an old     |   O(1)          |   O(n) copy
//	version         |                 |
//
// For use cases that scan key ranges, need extremal keys, or hand out
// long-lived snapshots, ordered maps have stable performance and space
// characteristics.
type Map[K cmp.Ordered, V any] struct {
	tree *wbtree.Tree[K, V]
}

// From creates a map holding the given entries. Later entries win when keys
// repeat.
func From[K cmp.Ordered, V any](entries ...wbtree.Entry[K, V]) Map[K, V] {
	tree := treeFromMap(Map[K, V]{})
	for _, entry := range entries {
		tree = tree.Set(entry.Key, entry.Val)
	}
	return mapFromTree(tree)
}

// FromGoMap creates an ordered map holding all bindings of a Go map.
func FromGoMap[K cmp.Ordered, V any](bindings map[K]V) Map[K, V] {
	tree := treeFromMap(Map[K, V]{})
	for key, val := range bindings {
		tree = tree.Set(key, val)
	}
	return mapFromTree(tree)
}

// FromOrderedEntries creates a map from entries in strictly ascending key
// order, in linear time. Input out of order fails with wbtree.ErrUnordered.
func FromOrderedEntries[K cmp.Ordered, V any](entries []wbtree.Entry[K, V]) (Map[K, V], error) {
	cfg := wbtree.Config[K]{Compare: cmp.Compare[K]}
	tree, err := wbtree.FromOrderedEntries(cfg, entries)
	if err != nil {
		return Map[K, V]{}, err
	}
	return mapFromTree(tree), nil
}

// String returns the map in the form "{k: v, …}". This may be an expensive
// operation, as it materializes every entry into a single string.
func (m Map[K, V]) String() string {
	var bf strings.Builder
	bf.WriteByte('{')
	first := true
	treeFromMap(m).ForEach(func(key K, val V) bool {
		if !first {
			bf.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&bf, "%v: %v", key, val)
		return true
	})
	bf.WriteByte('}')
	return bf.String()
}

// IsEmpty reports whether the map has no entries.
func (m Map[K, V]) IsEmpty() bool {
	return m.tree == nil || m.tree.IsEmpty()
}

// Len returns the number of entries in the map.
func (m Map[K, V]) Len() int {
	if m.tree == nil {
		return 0
	}
	return m.tree.Len()
}

// Height returns the height of the underlying search tree (for diagnostics).
func (m Map[K, V]) Height() int {
	if m.tree == nil {
		return 0
	}
	return m.tree.Height()
}

// Lookup returns the value bound to key, with the second return value
// reporting whether the key is present.
func (m Map[K, V]) Lookup(key K) (V, bool) {
	return treeFromMap(m).Lookup(key)
}

// Has reports whether key is present.
func (m Map[K, V]) Has(key K) bool {
	return treeFromMap(m).Has(key)
}

// Get returns the value bound to a key required to be present, failing with
// wbtree.ErrKeyNotFound otherwise.
func (m Map[K, V]) Get(key K) (V, error) {
	return treeFromMap(m).Get(key)
}

// Smallest returns the entry with the minimum key, failing with
// wbtree.ErrEmptyTree on an empty map.
func (m Map[K, V]) Smallest() (wbtree.Entry[K, V], error) {
	return treeFromMap(m).Smallest()
}

// Largest returns the entry with the maximum key, failing with
// wbtree.ErrEmptyTree on an empty map.
func (m Map[K, V]) Largest() (wbtree.Entry[K, V], error) {
	return treeFromMap(m).Largest()
}

// At returns the entry with the i-th smallest key, counting from 0.
func (m Map[K, V]) At(i int) (wbtree.Entry[K, V], error) {
	return treeFromMap(m).At(i)
}

// Rank returns the number of keys strictly smaller than key; the second
// return value reports whether key itself is present.
func (m Map[K, V]) Rank(key K) (int, bool) {
	return treeFromMap(m).Rank(key)
}

// Entries returns all entries in ascending key order.
func (m Map[K, V]) Entries() []wbtree.Entry[K, V] {
	return treeFromMap(m).Entries()
}

// Keys returns all keys in ascending order.
func (m Map[K, V]) Keys() []K {
	return treeFromMap(m).Keys()
}

// Values returns all values, ordered by their keys.
func (m Map[K, V]) Values() []V {
	return treeFromMap(m).Values()
}

// EachEntry visits all entries in ascending key order.
//
// Iteration stops at the first callback error and returns that error to the
// caller.
func (m Map[K, V]) EachEntry(f func(key K, val V) error) error {
	var err error
	treeFromMap(m).ForEach(func(key K, val V) bool {
		err = f(key, val)
		return err == nil
	})
	return err
}

// InspectNodes reports structural information for every tree node, in
// ascending key order. Iteration stops early if fn returns false. Diagnostic
// frontends like the display subpackage build on this walk.
func (m Map[K, V]) InspectNodes(fn func(info wbtree.NodeInfo[K, V]) bool) {
	treeFromMap(m).InspectNodes(fn)
}

// Cursor returns a cursor positioned before the smallest key of this map
// version.
func (m Map[K, V]) Cursor() wbtree.Cursor[K, V] {
	return treeFromMap(m).Cursor()
}

// CursorAt returns a cursor positioned before the smallest key >= key of
// this map version.
func (m Map[K, V]) CursorAt(key K) wbtree.Cursor[K, V] {
	return treeFromMap(m).CursorAt(key)
}
