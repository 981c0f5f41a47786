package wbtree

import "fmt"

// Check validates the structural tree invariants: strict key order and
// consistency of the cached subtree sizes.
//
// This checker is intentionally strict and meant for tests. Note that weight
// balance is not checked here, since deletions are allowed to leave the tree
// out of balance; use CheckBalanced where balance is guaranteed.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.cfg.Compare == nil {
		return fmt.Errorf("%w: comparison is required", ErrInvalidConfig)
	}
	_, err := t.checkNode(t.root, nil, nil)
	return err
}

// CheckBalanced validates Check's invariants plus the weight-balance
// criterion at every node. It holds for trees built by insertions and
// rebuilds only.
func (t *Tree[K, V]) CheckBalanced() error {
	if err := t.Check(); err != nil {
		return err
	}
	return checkWeights(t.root)
}

// checkNode validates subtree n within the open key interval (lo, hi), where
// nil bounds mean unbounded, and returns the verified subtree size.
func (t *Tree[K, V]) checkNode(n *node[K, V], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && t.cfg.Compare(n.key, *lo) <= 0 {
		return 0, fmt.Errorf("%w: key %v not above left bound", ErrInvariant, n.key)
	}
	if hi != nil && t.cfg.Compare(n.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: key %v not below right bound", ErrInvariant, n.key)
	}
	leftSize, err := t.checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	rightSize, err := t.checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}
	if n.size != leftSize+rightSize+1 {
		return 0, fmt.Errorf("%w: cached size %d at key %v, subtrees hold %d",
			ErrInvariant, n.size, n.key, leftSize+rightSize+1)
	}
	return n.size, nil
}

func checkWeights[K, V any](n *node[K, V]) error {
	if n == nil {
		return nil
	}
	if unbalanced(n.left, n.right) || unbalanced(n.right, n.left) {
		return fmt.Errorf("%w: weights %d vs %d at key %v",
			ErrInvariant, n.left.weight(), n.right.weight(), n.key)
	}
	if err := checkWeights(n.left); err != nil {
		return err
	}
	return checkWeights(n.right)
}
