package wbtree

import "fmt"

// Lookup returns the value bound to key, with the second return value
// reporting whether the key is present.
func (t *Tree[K, V]) Lookup(key K) (V, bool) {
	var zero V
	if t == nil || t.root == nil {
		return zero, false
	}
	n := t.root
	for n != nil {
		switch cmp := t.cfg.Compare(key, n.key); {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return n.val, true
		}
	}
	return zero, false
}

// Has reports whether key is present.
func (t *Tree[K, V]) Has(key K) bool {
	_, ok := t.Lookup(key)
	return ok
}

// Get returns the value bound to a key required to be present, failing with
// ErrKeyNotFound otherwise.
func (t *Tree[K, V]) Get(key K) (V, error) {
	val, ok := t.Lookup(key)
	if !ok {
		return val, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return val, nil
}

// Smallest returns the entry with the minimum key, failing with ErrEmptyTree
// on an empty tree.
func (t *Tree[K, V]) Smallest() (Entry[K, V], error) {
	if t == nil || t.root == nil {
		return Entry[K, V]{}, ErrEmptyTree
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return Entry[K, V]{Key: n.key, Val: n.val}, nil
}

// Largest returns the entry with the maximum key, failing with ErrEmptyTree
// on an empty tree.
func (t *Tree[K, V]) Largest() (Entry[K, V], error) {
	if t == nil || t.root == nil {
		return Entry[K, V]{}, ErrEmptyTree
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return Entry[K, V]{Key: n.key, Val: n.val}, nil
}

// At returns the entry with the i-th smallest key, counting from 0. The
// cached subtree sizes make this a plain descent.
func (t *Tree[K, V]) At(i int) (Entry[K, V], error) {
	if t == nil || i < 0 || i >= t.Len() {
		return Entry[K, V]{}, ErrIndexOutOfBounds
	}
	n := t.root
	for {
		assert(n != nil, "rank descent fell off the tree")
		switch l := n.left.weight(); {
		case i < l:
			n = n.left
		case i > l:
			i -= l + 1
			n = n.right
		default:
			return Entry[K, V]{Key: n.key, Val: n.val}, nil
		}
	}
}

// Rank returns the number of keys strictly smaller than key; the second
// return value reports whether key itself is present. For an absent key the
// rank is the position the key would be inserted at.
func (t *Tree[K, V]) Rank(key K) (int, bool) {
	if t == nil || t.root == nil {
		return 0, false
	}
	rank := 0
	n := t.root
	for n != nil {
		switch cmp := t.cfg.Compare(key, n.key); {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			rank += n.left.weight() + 1
			n = n.right
		default:
			return rank + n.left.weight(), true
		}
	}
	return rank, false
}
