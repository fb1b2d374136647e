package Trees

import (
	"github.com/g-m-twostay/ordered-tree/Queues"
	"golang.org/x/exp/constraints"
)

// inOrder keeps the left spine of the unvisited part of the tree; the top is the next key.
type inOrder[K any, V any, S constraints.Unsigned] struct {
	st Queues.Stack[*node[K, V, S]]
}

// InOrder [OrderedMap.InOrder]
// Time: Next is amortized O(1). Space: O(D)
func (u *BST[K, V, S]) InOrder() Iterator[K] {
	it := &inOrder[K, V, S]{Queues.MakeArrayStack[*node[K, V, S]](0)}
	it.pushLeft(u.root)
	return it
}

func (it *inOrder[K, V, S]) pushLeft(n *node[K, V, S]) {
	for ; n != nil; n = n.l {
		it.st.Push(n)
	}
}

func (it *inOrder[K, V, S]) HasNext() bool {
	return !it.st.Empty()
}

func (it *inOrder[K, V, S]) Next() (K, error) {
	n, err := it.st.Pop()
	if err != nil {
		return *new(K), &ExhaustedError{}
	}
	it.pushLeft(n.r)
	return n.key, nil
}

// preOrder keeps the roots of the subtrees still to be visited; the top is the next key.
type preOrder[K any, V any, S constraints.Unsigned] struct {
	st Queues.Stack[*node[K, V, S]]
}

// PreOrder [OrderedMap.PreOrder]
// Time: Next is O(1). Space: O(D)
func (u *BST[K, V, S]) PreOrder() Iterator[K] {
	it := &preOrder[K, V, S]{Queues.MakeArrayStack[*node[K, V, S]](0)}
	if u.root != nil {
		it.st.Push(u.root)
	}
	return it
}

func (it *preOrder[K, V, S]) HasNext() bool {
	return !it.st.Empty()
}

func (it *preOrder[K, V, S]) Next() (K, error) {
	n, err := it.st.Pop()
	if err != nil {
		return *new(K), &ExhaustedError{}
	}
	if n.r != nil {
		it.st.Push(n.r)
	}
	if n.l != nil {
		it.st.Push(n.l)
	}
	return n.key, nil
}

// postOrder keeps the path from the root to the node being expanded. prev is the last node
// looked at, which tells whether the top's children were already expanded: coming down from
// the parent, coming up from the left child, or coming up from the right child.
type postOrder[K any, V any, S constraints.Unsigned] struct {
	st   Queues.Stack[*node[K, V, S]]
	prev *node[K, V, S]
}

// PostOrder [OrderedMap.PostOrder]
// Time: Next is amortized O(1). Space: O(D)
func (u *BST[K, V, S]) PostOrder() Iterator[K] {
	it := &postOrder[K, V, S]{st: Queues.MakeArrayStack[*node[K, V, S]](0)}
	if u.root != nil {
		it.st.Push(u.root)
	}
	return it
}

func (it *postOrder[K, V, S]) HasNext() bool {
	return !it.st.Empty()
}

func (it *postOrder[K, V, S]) Next() (K, error) {
	if it.st.Empty() {
		return *new(K), &ExhaustedError{}
	}
	for {
		cur := it.st.Peek()
		if p := it.prev; p == nil || p.l == cur || p.r == cur { //going down
			if cur.l != nil {
				it.st.Push(cur.l)
			} else if cur.r != nil {
				it.st.Push(cur.r)
			} else {
				break
			}
		} else if cur.l == p && cur.r != nil { //up from left
			it.st.Push(cur.r)
		} else { //up from the last child
			break
		}
		it.prev = cur
	}
	n, _ := it.st.Pop()
	it.prev = n
	return n.key, nil
}
