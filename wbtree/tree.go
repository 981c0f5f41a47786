package wbtree

import (
	"fmt"
)

// Entry is one key/value pair of a tree.
type Entry[K, V any] struct {
	Key K
	Val V
}

// Tree is a persistent, weight-balanced binary search tree.
//
// K is the key type, ordered by the configured comparison, V is an arbitrary
// value type. Trees are immutable: mutating operations leave the receiver
// untouched and return a new tree which shares all unmodified subtrees with
// its predecessor. Any number of tree versions may therefore be read
// concurrently without synchronization.
type Tree[K, V any] struct {
	cfg  Config[K]
	root *node[K, V]
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, V]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// Clone returns a shallow clone of the tree root container.
//
// Node contents are shared intentionally; mutating operations path-copy
// whatever they touch.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	if t == nil {
		return nil
	}
	cloned := *t
	return &cloned
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.root.weight()
}

// Height returns the length of the longest root-to-leaf path, with 0 meaning
// an empty tree. It walks the whole tree and is meant for diagnostics.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Set binds key to val and returns the new tree version. An existing binding
// for key is replaced, otherwise the entry is inserted. Insertion may trigger
// subtree rebuilds along the search path (amortized O(log n)).
func (t *Tree[K, V]) Set(key K, val V) *Tree[K, V] {
	assert(t != nil && t.cfg.Compare != nil, "wbtree: set on uninitialized tree")
	cloned := t.Clone()
	cloned.root = t.setNode(t.root, key, val)
	return cloned
}

// Insert adds an entry for a key required to be absent and returns the new
// tree version. Inserting a present key fails with ErrDuplicateKey.
func (t *Tree[K, V]) Insert(key K, val V) (*Tree[K, V], error) {
	if t == nil || t.cfg.Compare == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	root, err := t.insertNode(t.root, key, val)
	if err != nil {
		return nil, err
	}
	cloned := t.Clone()
	cloned.root = root
	return cloned, nil
}

// Update replaces the value of a key required to be present and returns the
// new tree version. Updating an absent key fails with ErrKeyNotFound.
//
// An update changes no subtree sizes, so the balance criterion cannot newly
// fail and the operation is a pure path copy.
func (t *Tree[K, V]) Update(key K, val V) (*Tree[K, V], error) {
	if t == nil || t.cfg.Compare == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	root, err := t.updateNode(t.root, key, val)
	if err != nil {
		return nil, err
	}
	cloned := t.Clone()
	cloned.root = root
	return cloned, nil
}

func (t *Tree[K, V]) setNode(n *node[K, V], key K, val V) *node[K, V] {
	if n == nil {
		return newNode(key, val, nil, nil)
	}
	switch cmp := t.cfg.Compare(key, n.key); {
	case cmp < 0:
		return balance(newNode(n.key, n.val, t.setNode(n.left, key, val), n.right))
	case cmp > 0:
		return balance(newNode(n.key, n.val, n.left, t.setNode(n.right, key, val)))
	default:
		// Replacement: the stored key stays, only the value changes.
		return newNode(n.key, val, n.left, n.right)
	}
}

func (t *Tree[K, V]) insertNode(n *node[K, V], key K, val V) (*node[K, V], error) {
	if n == nil {
		return newNode(key, val, nil, nil), nil
	}
	switch cmp := t.cfg.Compare(key, n.key); {
	case cmp < 0:
		left, err := t.insertNode(n.left, key, val)
		if err != nil {
			return nil, err
		}
		return balance(newNode(n.key, n.val, left, n.right)), nil
	case cmp > 0:
		right, err := t.insertNode(n.right, key, val)
		if err != nil {
			return nil, err
		}
		return balance(newNode(n.key, n.val, n.left, right)), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
}

func (t *Tree[K, V]) updateNode(n *node[K, V], key K, val V) (*node[K, V], error) {
	if n == nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	switch cmp := t.cfg.Compare(key, n.key); {
	case cmp < 0:
		left, err := t.updateNode(n.left, key, val)
		if err != nil {
			return nil, err
		}
		return newNode(n.key, n.val, left, n.right), nil
	case cmp > 0:
		right, err := t.updateNode(n.right, key, val)
		if err != nil {
			return nil, err
		}
		return newNode(n.key, n.val, n.left, right), nil
	default:
		return newNode(n.key, val, n.left, n.right), nil
	}
}
