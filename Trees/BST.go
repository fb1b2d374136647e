package Trees

import (
	"cmp"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// BST is a binary search tree mapping unique keys to values. Every node caches
// the size of its subtree, which gives Rank and Select in O(D) where D is the
// depth of the tree.
// K is the key type, V is the value type, S is the type of the variables used
// for storing the sizes of different subtrees. S should be a wide upperbound for
// the size of the tree.
// The tree is never rebalanced: inserting keys in sorted order produces a chain
// whose depth equals its size. All descents are iterative, so such a chain costs
// time but never stack.
// BST isn't safe for concurrent use; callers must serialize access to the whole tree.
// BST shouldn't be created directly using struct literal.
type BST[K any, V any, S constraints.Unsigned] struct {
	root *node[K, V, S]
	cmp  func(K, K) int
	path []*node[K, V, S] //descent path buffer reused by Put and Delete.
}

// New BST ordering keys by cmp.Compare.
func New[K cmp.Ordered, V any, S constraints.Unsigned]() *BST[K, V, S] {
	return &BST[K, V, S]{cmp: cmp.Compare[K]}
}

// NewFunc is the New equivalence for any key type. compare(a, b) must be negative when a<b,
// 0 when a==b, and positive when a>b, defining a total order. Keys comparing 0 are the same key.
func NewFunc[K any, V any, S constraints.Unsigned](compare func(K, K) int) *BST[K, V, S] {
	return &BST[K, V, S]{cmp: compare}
}

// From builds a BST from keys sorted in strictly increasing order; vals[i] is stored under keys[i].
// This is faster than repeatedly calling Put and the result has minimal height.
// Returns InvalidSliceError if keys aren't strictly increasing.
// Time: O(n).
func From[K cmp.Ordered, V any, S constraints.Unsigned](keys []K, vals []V) (*BST[K, V, S], error) {
	return FromFunc[K, V, S](keys, vals, cmp.Compare[K])
}

// FromFunc is the From equivalence of NewFunc.
func FromFunc[K any, V any, S constraints.Unsigned](keys []K, vals []V, compare func(K, K) int) (*BST[K, V, S], error) {
	if len(keys) != len(vals) {
		return nil, errors.Newf("%d keys but %d values", len(keys), len(vals))
	}
	for i := 1; i < len(keys); i++ {
		if compare(keys[i-1], keys[i]) >= 0 {
			Log.WithFields(logrus.Fields{"op": "from", "index": i}).Debug("rejected unsorted keys")
			return nil, &InvalidSliceError{[2]any{keys[i-1], keys[i]}, i}
		}
	}
	var build func(lo, hi int) *node[K, V, S]
	build = func(lo, hi int) *node[K, V, S] {
		if lo < hi {
			mid := int(uint(lo+hi) >> 1)
			n := &node[K, V, S]{key: keys[mid], val: vals[mid], l: build(lo, mid), r: build(mid+1, hi)}
			n.fix()
			return n
		}
		return nil
	}
	return &BST[K, V, S]{root: build(0, len(keys)), cmp: compare}, nil
}

// Size of the tree.
// Time: O(1)
func (u *BST[K, V, S]) Size() S {
	return u.root.size()
}

func (u *BST[K, V, S]) IsEmpty() bool {
	return u.root == nil
}

// Clear the tree. Live iterators keep seeing the old nodes.
func (u *BST[K, V, S]) Clear() {
	u.root = nil
}

// release the path buffer so that it doesn't keep removed nodes alive.
func (u *BST[K, V, S]) release(path []*node[K, V, S]) {
	clear(path)
	u.path = path[:0]
}

// Put [OrderedMap.Put]
// Time: O(D)
func (u *BST[K, V, S]) Put(k K, v V) {
	path := u.path[:0]
	cur := &u.root
	for *cur != nil {
		n := *cur
		path = append(path, n)
		if c := u.cmp(k, n.key); c < 0 {
			cur = &n.l
		} else if c > 0 {
			cur = &n.r
		} else {
			n.val = v
			break
		}
	}
	if *cur == nil {
		*cur = &node[K, V, S]{key: k, val: v, sz: 1}
	}
	fixPath(path)
	u.release(path)
}

// Get [OrderedMap.Get]
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) Get(k K) (V, bool) {
	for cur := u.root; cur != nil; {
		if c := u.cmp(k, cur.key); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur.val, true
		}
	}
	return *new(V), false
}

// Contains [OrderedMap.Contains]
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) Contains(k K) bool {
	_, ok := u.Get(k)
	return ok
}

// Delete [OrderedMap.Delete]
// A node with two children is replaced by the minimum node of its right subtree.
// Time: O(D)
func (u *BST[K, V, S]) Delete(k K) bool {
	path := u.path[:0]
	for cur := &u.root; *cur != nil; {
		n := *cur
		if c := u.cmp(k, n.key); c < 0 {
			path = append(path, n)
			cur = &n.l
		} else if c > 0 {
			path = append(path, n)
			cur = &n.r
		} else {
			*cur = u.hibbard(n)
			fixPath(path)
			u.release(path)
			return true
		}
	}
	u.release(path)
	return false
}

// hibbard returns the subtree that takes the place of n once n is removed.
func (u *BST[K, V, S]) hibbard(n *node[K, V, S]) *node[K, V, S] {
	if n.l == nil {
		return n.r
	} else if n.r == nil {
		return n.l
	}
	s := leftmost(n.r)
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{"op": "delete", "key": n.key, "successor": s.key}).Debug("promoting successor")
	}
	s.r = deleteMin(n.r)
	s.l = n.l
	s.fix()
	n.l, n.r = nil, nil
	return s
}

// deleteMin from the subtree rooting at n, which mustn't be nil, and return the new subtree.
// Every node on the left spine loses exactly one descendant, so sizes are decremented on the way down.
func deleteMin[K any, V any, S constraints.Unsigned](n *node[K, V, S]) *node[K, V, S] {
	if n.l == nil {
		return n.r
	}
	root := n
	for ; n.l.l != nil; n = n.l {
		n.sz--
	}
	n.sz--
	n.l = n.l.r
	return root
}

// deleteMax is the mirror of deleteMin.
func deleteMax[K any, V any, S constraints.Unsigned](n *node[K, V, S]) *node[K, V, S] {
	if n.r == nil {
		return n.l
	}
	root := n
	for ; n.r.r != nil; n = n.r {
		n.sz--
	}
	n.sz--
	n.r = n.r.l
	return root
}

// DeleteMin [OrderedMap.DeleteMin]
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) DeleteMin() error {
	if u.root == nil {
		Log.WithField("op", "deleteMin").Debug("tree is empty")
		return &EmptyTreeError{}
	}
	u.root = deleteMin(u.root)
	return nil
}

// DeleteMax [OrderedMap.DeleteMax]
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) DeleteMax() error {
	if u.root == nil {
		Log.WithField("op", "deleteMax").Debug("tree is empty")
		return &EmptyTreeError{}
	}
	u.root = deleteMax(u.root)
	return nil
}
