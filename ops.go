package ordmap

import (
	"cmp"

	"github.com/npillmayer/ordmap/wbtree"
)

// Set binds key to val and returns the new map version. An existing binding
// for key is replaced, otherwise the entry is inserted.
func (m Map[K, V]) Set(key K, val V) Map[K, V] {
	return mapFromTree(treeFromMap(m).Set(key, val))
}

// Insert adds an entry for a key required to be absent, failing with
// wbtree.ErrDuplicateKey otherwise. The map is unchanged in the failure case.
func (m Map[K, V]) Insert(key K, val V) (Map[K, V], error) {
	tree, err := treeFromMap(m).Insert(key, val)
	if err != nil {
		return Map[K, V]{}, err
	}
	return mapFromTree(tree), nil
}

// Update replaces the value of a key required to be present, failing with
// wbtree.ErrKeyNotFound otherwise. The map is unchanged in the failure case.
func (m Map[K, V]) Update(key K, val V) (Map[K, V], error) {
	tree, err := treeFromMap(m).Update(key, val)
	if err != nil {
		return Map[K, V]{}, err
	}
	return mapFromTree(tree), nil
}

// Delete removes the entry of a key required to be present, failing with
// wbtree.ErrKeyNotFound otherwise. The map is unchanged in the failure case.
func (m Map[K, V]) Delete(key K) (Map[K, V], error) {
	tree, err := treeFromMap(m).Delete(key)
	if err != nil {
		return Map[K, V]{}, err
	}
	return mapFromTree(tree), nil
}

// DeleteIfPresent removes the entry for key if there is one and returns the
// map unchanged otherwise.
func (m Map[K, V]) DeleteIfPresent(key K) Map[K, V] {
	return mapFromTree(treeFromMap(m).DeleteIfPresent(key))
}

// Take removes the entry of a key required to be present and returns its
// value together with the new map version, failing with wbtree.ErrKeyNotFound
// otherwise.
func (m Map[K, V]) Take(key K) (V, Map[K, V], error) {
	val, tree, err := treeFromMap(m).Take(key)
	if err != nil {
		return val, Map[K, V]{}, err
	}
	return val, mapFromTree(tree), nil
}

// TakeIfPresent removes the entry for key if there is one. For an absent key
// it returns the zero value, the map unchanged and false.
func (m Map[K, V]) TakeIfPresent(key K) (V, Map[K, V], bool) {
	val, tree, ok := treeFromMap(m).TakeIfPresent(key)
	if !ok {
		return val, m, false
	}
	return val, mapFromTree(tree), true
}

// TakeSmallest removes the entry with the minimum key and returns it together
// with the new map version, failing with wbtree.ErrEmptyTree on an empty map.
func (m Map[K, V]) TakeSmallest() (wbtree.Entry[K, V], Map[K, V], error) {
	entry, tree, err := treeFromMap(m).TakeSmallest()
	if err != nil {
		return entry, Map[K, V]{}, err
	}
	return entry, mapFromTree(tree), nil
}

// TakeLargest removes the entry with the maximum key and returns it together
// with the new map version, failing with wbtree.ErrEmptyTree on an empty map.
func (m Map[K, V]) TakeLargest() (wbtree.Entry[K, V], Map[K, V], error) {
	entry, tree, err := treeFromMap(m).TakeLargest()
	if err != nil {
		return entry, Map[K, V]{}, err
	}
	return entry, mapFromTree(tree), nil
}

// Rebalance rebuilds the map's search tree into minimum height, in O(n).
// Useful after bulk deletions, which deliberately skip rebalancing.
func (m Map[K, V]) Rebalance() Map[K, V] {
	return mapFromTree(treeFromMap(m).Rebalance())
}

// MapValues returns a map with the same keys where every value is replaced by
// f(value).
//
// MapValues is a package function rather than a method because the result
// value type W is a fresh type parameter, which Go methods cannot introduce.
func MapValues[K cmp.Ordered, V, W any](m Map[K, V], f func(V) W) Map[K, W] {
	return mapFromTree(wbtree.MapValues(treeFromMap(m), f))
}

func treeFromMap[K cmp.Ordered, V any](m Map[K, V]) *wbtree.Tree[K, V] {
	if m.tree != nil {
		return m.tree
	}
	tree, err := wbtree.New[K, V](wbtree.Config[K]{Compare: cmp.Compare[K]})
	assert(err == nil, "ordmap: cannot create engine tree")
	return tree
}

func mapFromTree[K cmp.Ordered, V any](tree *wbtree.Tree[K, V]) Map[K, V] {
	if tree == nil || tree.IsEmpty() {
		return Map[K, V]{}
	}
	return Map[K, V]{tree: tree}
}
