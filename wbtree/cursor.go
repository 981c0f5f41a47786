package wbtree

// Cursor is a resumable position in the in-order key sequence of one tree
// version. It keeps the not-yet-visited part of the root-to-position path on
// an immutable stack, so a cursor occupies O(log n) space instead of
// materializing the sequence.
//
// Cursors are values: Next returns the advanced cursor and leaves the
// receiver usable, so a traversal can be forked or restarted from any point
// by keeping the older cursor around.
type Cursor[K, V any] struct {
	stack *pathStep[K, V]
}

// pathStep is one suspended node on the cursor's path stack. The stack is a
// shared cons list; pushing never touches cells reachable by other cursors.
type pathStep[K, V any] struct {
	n    *node[K, V]
	rest *pathStep[K, V]
}

// Cursor returns a cursor positioned before the smallest key of the tree.
// On an empty tree the cursor is exhausted from the start.
func (t *Tree[K, V]) Cursor() Cursor[K, V] {
	if t == nil {
		return Cursor[K, V]{}
	}
	return Cursor[K, V]{stack: pushLeftSpine(t.root, nil)}
}

// CursorAt returns a cursor positioned before the smallest key >= key, which
// makes Next deliver the tail of the key sequence starting there. With all
// keys < key the cursor is exhausted from the start.
func (t *Tree[K, V]) CursorAt(key K) Cursor[K, V] {
	assert(t != nil && t.cfg.Compare != nil, "wbtree: cursor on uninitialized tree")
	var stack *pathStep[K, V]
	for n := t.root; n != nil; {
		if t.cfg.Compare(n.key, key) >= 0 {
			stack = &pathStep[K, V]{n: n, rest: stack}
			n = n.left
		} else {
			n = n.right
		}
	}
	return Cursor[K, V]{stack: stack}
}

// Next returns the entry at the cursor position, the cursor advanced past it,
// and true. An exhausted cursor returns a zero entry, the receiver unchanged
// and false.
//
// A single step may descend a whole left spine, but a full traversal visits
// every node at most twice, so Next is amortized O(1).
func (c Cursor[K, V]) Next() (Entry[K, V], Cursor[K, V], bool) {
	if c.stack == nil {
		return Entry[K, V]{}, c, false
	}
	top := c.stack.n
	advanced := Cursor[K, V]{stack: pushLeftSpine(top.right, c.stack.rest)}
	return Entry[K, V]{Key: top.key, Val: top.val}, advanced, true
}

// Done reports whether the cursor is exhausted.
func (c Cursor[K, V]) Done() bool {
	return c.stack == nil
}

func pushLeftSpine[K, V any](n *node[K, V], rest *pathStep[K, V]) *pathStep[K, V] {
	for n != nil {
		rest = &pathStep[K, V]{n: n, rest: rest}
		n = n.left
	}
	return rest
}
