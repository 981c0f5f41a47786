package wbtree

// ForEach walks entries in ascending key order.
//
// Iteration stops early if callback returns false.
func (t *Tree[K, V]) ForEach(fn func(key K, val V) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	forEachNode(t.root, fn)
}

func forEachNode[K, V any](n *node[K, V], fn func(key K, val V) bool) bool {
	if n == nil {
		return true
	}
	if !forEachNode(n.left, fn) {
		return false
	}
	if !fn(n.key, n.val) {
		return false
	}
	return forEachNode(n.right, fn)
}

// Entries returns all entries in ascending key order.
func (t *Tree[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, t.Len())
	t.ForEach(func(key K, val V) bool {
		entries = append(entries, Entry[K, V]{Key: key, Val: val})
		return true
	})
	return entries
}

// Keys returns all keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.Len())
	t.ForEach(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Values returns all values, ordered by their keys.
func (t *Tree[K, V]) Values() []V {
	values := make([]V, 0, t.Len())
	t.ForEach(func(_ K, val V) bool {
		values = append(values, val)
		return true
	})
	return values
}

// MapValues returns a tree with the same keys and shape where every value is
// replaced by f(value). The application order over entries is unspecified.
//
// MapValues is a package function rather than a method because the result
// value type W is a fresh type parameter, which Go methods cannot introduce.
func MapValues[K, V, W any](t *Tree[K, V], f func(V) W) *Tree[K, W] {
	assert(t != nil && t.cfg.Compare != nil, "wbtree: map values on uninitialized tree")
	assert(f != nil, "wbtree: map values needs a transform")
	return &Tree[K, W]{cfg: t.cfg, root: mapNode(t.root, f)}
}

func mapNode[K, V, W any](n *node[K, V], f func(V) W) *node[K, W] {
	if n == nil {
		return nil
	}
	return &node[K, W]{
		key:   n.key,
		val:   f(n.val),
		left:  mapNode(n.left, f),
		right: mapNode(n.right, f),
		size:  n.size,
	}
}
