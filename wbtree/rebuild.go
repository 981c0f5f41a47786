package wbtree

import "fmt"

// Rebalance rebuilds the whole tree into minimum height and returns it as a
// new tree version. The rebuild walks every entry, so this is O(n); use it
// after bulk deletions when the shape matters again. An empty tree is
// returned unchanged.
func (t *Tree[K, V]) Rebalance() *Tree[K, V] {
	assert(t != nil && t.cfg.Compare != nil, "wbtree: rebalance on uninitialized tree")
	if t.root == nil {
		return t
	}
	cloned := t.Clone()
	cloned.root = rebuild(t.root)
	return cloned
}

// FromOrderedEntries builds a minimum-height tree from entries in strictly
// ascending key order, in linear time. Input out of order fails with
// ErrUnordered.
func FromOrderedEntries[K, V any](cfg Config[K], entries []Entry[K, V]) (*Tree[K, V], error) {
	t, err := New[K, V](cfg)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(entries); i++ {
		if cfg.Compare(entries[i-1].Key, entries[i].Key) >= 0 {
			return nil, fmt.Errorf("%w: index %d", ErrUnordered, i)
		}
	}
	t.root = buildEntries(entries)
	return t, nil
}

// rebuild reassembles subtree n into minimum height: flatten to an in-order
// node list, then let the median of every sublist become its subtree root.
// Even-sized sublists put the extra node into the left subtree.
func rebuild[K, V any](n *node[K, V]) *node[K, V] {
	nodes := flattenInto(n, make([]*node[K, V], 0, n.weight()))
	return buildNodes(nodes)
}

func flattenInto[K, V any](n *node[K, V], acc []*node[K, V]) []*node[K, V] {
	if n == nil {
		return acc
	}
	acc = flattenInto(n.left, acc)
	acc = append(acc, n)
	return flattenInto(n.right, acc)
}

func buildNodes[K, V any](nodes []*node[K, V]) *node[K, V] {
	if len(nodes) == 0 {
		return nil
	}
	mid := len(nodes) / 2
	m := nodes[mid]
	return newNode(m.key, m.val, buildNodes(nodes[:mid]), buildNodes(nodes[mid+1:]))
}

func buildEntries[K, V any](entries []Entry[K, V]) *node[K, V] {
	if len(entries) == 0 {
		return nil
	}
	mid := len(entries) / 2
	e := entries[mid]
	return newNode(e.Key, e.Val, buildEntries(entries[:mid]), buildEntries(entries[mid+1:]))
}
