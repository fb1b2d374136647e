package Trees

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// bounded is a subtree together with the exclusive key bounds its keys must fall within.
type bounded[K any, V any, S constraints.Unsigned] struct {
	n      *node[K, V, S]
	lo, hi *K
	depth  uint
}

// walk every node with its bounds and depth in pre-order, until f returns an error.
func (u *BST[K, V, S]) walk(f func(b bounded[K, V, S]) error) error {
	if u.root == nil {
		return nil
	}
	st := []bounded[K, V, S]{{n: u.root}}
	for len(st) > 0 {
		b := st[len(st)-1]
		st = st[:len(st)-1]
		if err := f(b); err != nil {
			return err
		}
		if b.n.r != nil {
			st = append(st, bounded[K, V, S]{b.n.r, &b.n.key, b.hi, b.depth + 1})
		}
		if b.n.l != nil {
			st = append(st, bounded[K, V, S]{b.n.l, b.lo, &b.n.key, b.depth + 1})
		}
	}
	return nil
}

// Check returns an assertion failure describing the first node found breaking the
// ordering or size invariants, or nil if the tree is sound.
// Time: O(n); Space: O(D)
func (u *BST[K, V, S]) Check() error {
	return u.walk(func(b bounded[K, V, S]) error {
		if b.lo != nil && u.cmp(*b.lo, b.n.key) >= 0 {
			return errors.AssertionFailedf("key %v at depth %d isn't greater than ancestor %v", b.n.key, b.depth, *b.lo)
		}
		if b.hi != nil && u.cmp(b.n.key, *b.hi) >= 0 {
			return errors.AssertionFailedf("key %v at depth %d isn't less than ancestor %v", b.n.key, b.depth, *b.hi)
		}
		if want := b.n.l.size() + b.n.r.size() + 1; b.n.sz != want {
			return errors.AssertionFailedf("key %v has size %d, want %d", b.n.key, b.n.sz, want)
		}
		return nil
	})
}

// Corrupt returns whether the tree has corrupt structures. See Check for the reason.
func (u *BST[K, V, S]) Corrupt() bool {
	return u.Check() != nil
}

// Print every node with its depth and subtree size to Log, in pre-order.
func (u *BST[K, V, S]) Print() {
	_ = u.walk(func(b bounded[K, V, S]) error {
		Log.WithFields(logrus.Fields{"key": b.n.key, "depth": b.depth, "size": b.n.sz}).Info("node")
		return nil
	})
}
