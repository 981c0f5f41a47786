package wbtree

import (
	"fmt"
	"io"
)

// NodeInfo describes one tree node during structural inspection.
type NodeInfo[K, V any] struct {
	Entry Entry[K, V]
	// Depth of the node, with 0 meaning the root.
	Depth int
	// Size of the subtree rooted here; LeftSize/RightSize cover the children.
	Size      int
	LeftSize  int
	RightSize int
	// Balanced reports the weight criterion between the two children.
	Balanced bool
}

// InspectNodes reports structural information for every node, in ascending
// key order. Iteration stops early if callback returns false. Diagnostic
// frontends (console rendering, DOT dumps) build on this walk.
func (t *Tree[K, V]) InspectNodes(fn func(info NodeInfo[K, V]) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	inspectNode(t.root, 0, fn)
}

func inspectNode[K, V any](n *node[K, V], depth int, fn func(info NodeInfo[K, V]) bool) bool {
	if n == nil {
		return true
	}
	if !inspectNode(n.left, depth+1, fn) {
		return false
	}
	info := NodeInfo[K, V]{
		Entry:     Entry[K, V]{Key: n.key, Val: n.val},
		Depth:     depth,
		Size:      n.size,
		LeftSize:  n.left.weight(),
		RightSize: n.right.weight(),
		Balanced:  !unbalanced(n.left, n.right) && !unbalanced(n.right, n.left),
	}
	if !fn(info) {
		return false
	}
	return inspectNode(n.right, depth+1, fn)
}

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func Dot[K, V any](w io.Writer, t *Tree[K, V]) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if t != nil && t.root != nil {
		ids := newtable[K, V]()
		nodelist, edgelist := "", ""
		dotNode(t.root, &ids, &nodelist, &edgelist)
		io.WriteString(w, nodelist)
		io.WriteString(w, edgelist)
	}
	io.WriteString(w, "}\n")
}

func dotNode[K, V any](n *node[K, V], ids *nodeids[K, V], nodelist, edgelist *string) {
	ID := ids.alloc(n)
	label := fmt.Sprintf("%v\\n#%d", n.key, n.size)
	*nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"%s];\n", ID, label, nodeDotStyles(n))
	for _, child := range []*node[K, V]{n.left, n.right} {
		if child == nil {
			nilid := ids.max + 10000
			ids.max++
			*nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
			*edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
			continue
		}
		*edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		dotNode(child, ids, nodelist, edgelist)
	}
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles[K, V any](n *node[K, V]) string {
	s := ",style=filled,shape=circle"
	if unbalanced(n.left, n.right) || unbalanced(n.right, n.left) {
		s += ",color=black,fillcolor=\"#FF8822\""
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
	}
	return s
}
