package Trees

import "golang.org/x/exp/constraints"

// A node in the BST. Every node is owned by exactly one parent slot (or the root).
// sz is the number of nodes in the subtree rooting at this node, including itself.
type node[K any, V any, S constraints.Unsigned] struct {
	key  K
	val  V
	l, r *node[K, V, S]
	sz   S
}

// size of the subtree. A nil node is an empty subtree.
func (n *node[K, V, S]) size() S {
	if n == nil {
		return 0
	}
	return n.sz
}

// fix the size after the children changed.
func (n *node[K, V, S]) fix() {
	n.sz = n.l.size() + n.r.size() + 1
}

// fixPath recomputes sizes bottom up along a descent path, path[0] being the highest node.
func fixPath[K any, V any, S constraints.Unsigned](path []*node[K, V, S]) {
	for i := len(path) - 1; i > -1; i-- {
		path[i].fix()
	}
}

// leftmost node of the subtree rooting at n, which mustn't be nil.
func leftmost[K any, V any, S constraints.Unsigned](n *node[K, V, S]) *node[K, V, S] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost node of the subtree rooting at n, which mustn't be nil.
func rightmost[K any, V any, S constraints.Unsigned](n *node[K, V, S]) *node[K, V, S] {
	for n.r != nil {
		n = n.r
	}
	return n
}
