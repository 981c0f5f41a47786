package wbtree

import "fmt"

// Delete removes the entry of a key required to be present and returns the
// new tree version. Deleting an absent key fails with ErrKeyNotFound.
//
// Deletion never rebalances: repeated deletions may leave the tree flatter
// on one side than the balance criterion allows, which later insertions heal
// incrementally and Rebalance heals at once. Lookups stay correct either way.
func (t *Tree[K, V]) Delete(key K) (*Tree[K, V], error) {
	if t == nil || t.cfg.Compare == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	root, err := t.deleteNode(t.root, key)
	if err != nil {
		return nil, err
	}
	cloned := t.Clone()
	cloned.root = root
	return cloned, nil
}

// DeleteIfPresent removes the entry for key if there is one and returns the
// receiver unchanged otherwise.
func (t *Tree[K, V]) DeleteIfPresent(key K) *Tree[K, V] {
	assert(t != nil && t.cfg.Compare != nil, "wbtree: delete on uninitialized tree")
	deleted, err := t.Delete(key)
	if err != nil {
		return t
	}
	return deleted
}

// Take removes the entry of a key required to be present and returns its
// value together with the new tree version. Taking an absent key fails with
// ErrKeyNotFound.
func (t *Tree[K, V]) Take(key K) (V, *Tree[K, V], error) {
	var zero V
	if t == nil || t.cfg.Compare == nil {
		return zero, nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	val, ok := t.Lookup(key)
	if !ok {
		return zero, nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	root, err := t.deleteNode(t.root, key)
	assert(err == nil, "wbtree: delete failed after successful lookup")
	cloned := t.Clone()
	cloned.root = root
	return val, cloned, nil
}

// TakeIfPresent removes the entry for key if there is one. For an absent key
// it returns the zero value, the receiver unchanged and false.
func (t *Tree[K, V]) TakeIfPresent(key K) (V, *Tree[K, V], bool) {
	assert(t != nil && t.cfg.Compare != nil, "wbtree: take on uninitialized tree")
	val, taken, err := t.Take(key)
	if err != nil {
		return val, t, false
	}
	return val, taken, true
}

// TakeSmallest removes the entry with the minimum key and returns it together
// with the new tree version, failing with ErrEmptyTree on an empty tree.
func (t *Tree[K, V]) TakeSmallest() (Entry[K, V], *Tree[K, V], error) {
	if t == nil || t.cfg.Compare == nil {
		return Entry[K, V]{}, nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		return Entry[K, V]{}, nil, ErrEmptyTree
	}
	m, root := detachSmallest(t.root)
	cloned := t.Clone()
	cloned.root = root
	return Entry[K, V]{Key: m.key, Val: m.val}, cloned, nil
}

// TakeLargest removes the entry with the maximum key and returns it together
// with the new tree version, failing with ErrEmptyTree on an empty tree.
func (t *Tree[K, V]) TakeLargest() (Entry[K, V], *Tree[K, V], error) {
	if t == nil || t.cfg.Compare == nil {
		return Entry[K, V]{}, nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		return Entry[K, V]{}, nil, ErrEmptyTree
	}
	m, root := detachLargest(t.root)
	cloned := t.Clone()
	cloned.root = root
	return Entry[K, V]{Key: m.key, Val: m.val}, cloned, nil
}

func (t *Tree[K, V]) deleteNode(n *node[K, V], key K) (*node[K, V], error) {
	if n == nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	switch cmp := t.cfg.Compare(key, n.key); {
	case cmp < 0:
		left, err := t.deleteNode(n.left, key)
		if err != nil {
			return nil, err
		}
		return newNode(n.key, n.val, left, n.right), nil
	case cmp > 0:
		right, err := t.deleteNode(n.right, key)
		if err != nil {
			return nil, err
		}
		return newNode(n.key, n.val, n.left, right), nil
	default:
		return spliceOut(n), nil
	}
}

// spliceOut removes the root entry of subtree n. With both children present
// the in-order successor is lifted out of the right subtree to take its
// place, so the key order is preserved.
func spliceOut[K, V any](n *node[K, V]) *node[K, V] {
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}
	successor, right := detachSmallest(n.right)
	return newNode(successor.key, successor.val, n.left, right)
}

// detachSmallest removes the minimum node of subtree n, returning it and the
// remaining subtree with a copied search path.
func detachSmallest[K, V any](n *node[K, V]) (*node[K, V], *node[K, V]) {
	if n.left == nil {
		return n, n.right
	}
	m, left := detachSmallest(n.left)
	return m, newNode(n.key, n.val, left, n.right)
}

// detachLargest removes the maximum node of subtree n, returning it and the
// remaining subtree with a copied search path.
func detachLargest[K, V any](n *node[K, V]) (*node[K, V], *node[K, V]) {
	if n.right == nil {
		return n, n.left
	}
	m, right := detachLargest(n.right)
	return m, newNode(n.key, n.val, n.left, right)
}
