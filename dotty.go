package ordmap

import (
	"cmp"
	"io"

	"github.com/npillmayer/ordmap/wbtree"
)

// Map2Dot outputs the internal structure of a Map in Graphviz DOT format
// (for debugging purposes).
//
// Inner nodes carry the key and the size of their subtree; unbalanced nodes
// are highlighted, which makes before/after pictures of Rebalance instructive.
func Map2Dot[K cmp.Ordered, V any](m Map[K, V], w io.Writer) {
	wbtree.Dot(w, m.tree)
}
