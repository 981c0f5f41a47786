package wbtree

const (
	// Weight-balance bounds: sibling subtree sizes a and b must satisfy
	// a <= weightRatio*b + weightSlack in both directions. The slack of 1
	// keeps small subtrees (sizes 0..2) out of trouble.
	weightRatio = 2
	weightSlack = 1
)

type node[K, V any] struct {
	key   K
	val   V
	left  *node[K, V]
	right *node[K, V]
	// size is the entry count of the subtree rooted here, children included.
	size int
}

// weight is the subtree size with nil meaning the empty subtree.
func (n *node[K, V]) weight() int {
	if n == nil {
		return 0
	}
	return n.size
}

// newNode is the single construction point for nodes; it derives the cached
// size from the children, which keeps size bookkeeping in one place.
func newNode[K, V any](key K, val V, left, right *node[K, V]) *node[K, V] {
	return &node[K, V]{
		key:   key,
		val:   val,
		left:  left,
		right: right,
		size:  left.weight() + right.weight() + 1,
	}
}

func unbalanced[K, V any](heavy, light *node[K, V]) bool {
	return heavy.weight() > weightRatio*light.weight()+weightSlack
}

// balance returns n unchanged while the weight criterion holds between its
// children, and a minimum-height rebuild of n otherwise. Mutating operations
// call it on every path-copied node on the way back up.
func balance[K, V any](n *node[K, V]) *node[K, V] {
	if unbalanced(n.left, n.right) || unbalanced(n.right, n.left) {
		return rebuild(n)
	}
	return n
}
