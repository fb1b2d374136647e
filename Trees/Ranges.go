package Trees

import (
	"github.com/g-m-twostay/ordered-tree/Queues"
)

// KeysBetween [OrderedMap.KeysBetween]
// Subtrees that can't hold keys in [lo, hi] are never entered.
// Time: O(D+m) where m is the number of keys returned; Space: O(D)
func (u *BST[K, V, S]) KeysBetween(lo, hi K) []K {
	var ks []K
	if u.root == nil || u.cmp(lo, hi) > 0 {
		return ks
	}
	st := Queues.MakeArrayStack[*node[K, V, S]](0)
	for cur := u.root; cur != nil || !st.Empty(); {
		for ; cur != nil; cur = cur.l {
			st.Push(cur)
			if u.cmp(lo, cur.key) >= 0 {
				break
			}
		}
		cur, _ = st.Pop()
		cl, ch := u.cmp(lo, cur.key), u.cmp(hi, cur.key)
		if cl <= 0 && ch >= 0 {
			ks = append(ks, cur.key)
		}
		if ch > 0 {
			cur = cur.r
		} else {
			cur = nil
		}
	}
	return ks
}

// Keys [OrderedMap.Keys]
// It's KeysBetween(Min(), Max()), which is empty for an empty tree.
func (u *BST[K, V, S]) Keys() []K {
	lo, ok := u.Min()
	if !ok {
		return nil
	}
	hi, _ := u.Max()
	return u.KeysBetween(lo, hi)
}

// CountBetween lo and hi inclusively, without listing them.
// Time: O(D); Space: O(1)
func (u *BST[K, V, S]) CountBetween(lo, hi K) S {
	if u.cmp(lo, hi) > 0 {
		return 0
	} else if u.Contains(hi) {
		return u.Rank(hi) - u.Rank(lo) + 1
	}
	return u.Rank(hi) - u.Rank(lo)
}

// Height [OrderedMap.Height]
// Computed level by level rather than recursively.
// Time: O(n); Space: O(n)
func (u *BST[K, V, S]) Height() (h S) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*node[K, V, S]](1)
	q.Push(u.root)
	for !q.Empty() {
		h++
		for range q.Size() {
			n, _ := q.Pop()
			if n.l != nil {
				q.Push(n.l)
			}
			if n.r != nil {
				q.Push(n.r)
			}
		}
	}
	return
}

// LevelOrder [OrderedMap.LevelOrder]
// Time: O(n); Space: O(n)
func (u *BST[K, V, S]) LevelOrder() []K {
	if u.root == nil {
		return nil
	}
	ks := make([]K, 0, u.root.sz)
	q := Queues.MakeArrayQueue[*node[K, V, S]](1)
	for q.Push(u.root); !q.Empty(); {
		n, _ := q.Pop()
		ks = append(ks, n.key)
		if n.l != nil {
			q.Push(n.l)
		}
		if n.r != nil {
			q.Push(n.r)
		}
	}
	return ks
}

// Ascend calls f on every key-value pair in ascending key order until f returns false.
// f mustn't modify the tree.
// Time: O(n); Space: O(D)
func (u *BST[K, V, S]) Ascend(f func(K, V) bool) {
	st := Queues.MakeArrayStack[*node[K, V, S]](0)
	for cur := u.root; cur != nil; cur = cur.l {
		st.Push(cur)
	}
	for !st.Empty() {
		n, _ := st.Pop()
		if !f(n.key, n.val) {
			return
		}
		for cur := n.r; cur != nil; cur = cur.l {
			st.Push(cur)
		}
	}
}
