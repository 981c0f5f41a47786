/*
Package wbtree provides a persistent weight-balanced binary search tree,
the storage engine behind ordered immutable maps.

The package is intentionally small in surface: it stores strictly ordered
key/value entries and offers the classic ordered-map operations plus a
resumable in-order cursor. Clients usually want the ordmap root package,
which wraps this engine with an ergonomic value type.

Structure:
  - nodes carry key, value, both children and the cached subtree size,
  - every update copies the search path and shares all untouched subtrees,
  - published trees and nodes are never mutated afterwards.

Balancing:
  - the balance criterion is weight-based: for sibling subtrees with sizes
    a and b, a <= weightRatio*b + weightSlack must hold in both directions,
  - insertion restores the criterion by rebuilding the smallest violating
    subtree into minimum height (flatten in-order, reassemble by recursive
    median split), which is amortized O(log n) per insertion,
  - while only insertions run, the criterion holds at every node and bounds
    the height by log(n)/log(3/2), about 1.71 * log2(n), plus a small
    constant,
  - deletion performs no rebalancing at all; a shrinking tree keeps the
    shape it had, and Rebalance offers an explicit full rebuild.

Failure is communicated through sentinel errors (ErrKeyNotFound,
ErrDuplicateKey, ErrEmptyTree, ...); a failed operation returns before any
new tree version is assembled, so the input tree is never left half-changed.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package wbtree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
