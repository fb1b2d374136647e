package TreeSet

import (
	"cmp"

	"github.com/g-m-twostay/ordered-tree/Sets"
	"github.com/g-m-twostay/ordered-tree/Trees"
	"golang.org/x/exp/constraints"
)

// TreeSet is a Sets.ExtendedSet keeping its elements in ascending order in a Trees.BST.
// S is the size type of the underlying tree. Like the tree, it isn't safe for concurrent use.
type TreeSet[E cmp.Ordered, S constraints.Unsigned] struct {
	tree *Trees.BST[E, struct{}, S]
}

func New[E cmp.Ordered, S constraints.Unsigned]() *TreeSet[E, S] {
	return &TreeSet[E, S]{Trees.New[E, struct{}, S]()}
}

// From a strictly increasing slice of elements. Returns Trees.InvalidSliceError otherwise.
func From[E cmp.Ordered, S constraints.Unsigned](es []E) (*TreeSet[E, S], error) {
	t, err := Trees.From[E, struct{}, S](es, make([]struct{}, len(es)))
	if err != nil {
		return nil, err
	}
	return &TreeSet[E, S]{t}, nil
}

func (u *TreeSet[E, S]) Put(e E) bool {
	if u.tree.Contains(e) {
		return false
	}
	u.tree.Put(e, struct{}{})
	return true
}

func (u *TreeSet[E, S]) Has(e E) bool {
	return u.tree.Contains(e)
}

func (u *TreeSet[E, S]) Remove(e E) bool {
	return u.tree.Delete(e)
}

func (u *TreeSet[E, S]) Size() uint {
	return uint(u.tree.Size())
}

// Take the smallest element.
func (u *TreeSet[E, S]) Take() E {
	e, _ := u.tree.Min()
	return e
}

// PopMin removes and returns the smallest element. Returns Trees.EmptyTreeError on an empty set.
func (u *TreeSet[E, S]) PopMin() (E, error) {
	e, _ := u.tree.Min()
	return e, u.tree.DeleteMin()
}

// Range over the elements in ascending order. f mustn't modify the set.
func (u *TreeSet[E, S]) Range(f func(E) bool) {
	u.tree.Ascend(func(e E, _ struct{}) bool {
		return f(e)
	})
}

func (u *TreeSet[E, S]) Min() (E, bool) {
	return u.tree.Min()
}

func (u *TreeSet[E, S]) Max() (E, bool) {
	return u.tree.Max()
}

// Rank is the number of elements less than e.
func (u *TreeSet[E, S]) Rank(e E) S {
	return u.tree.Rank(e)
}

// Select the i-th smallest element, starting from 0.
func (u *TreeSet[E, S]) Select(i S) (E, bool) {
	return u.tree.Select(i)
}

// Between lists the elements in [lo, hi] in ascending order.
func (u *TreeSet[E, S]) Between(lo, hi E) []E {
	return u.tree.KeysBetween(lo, hi)
}

// PutAll elements of s. Returns the number of elements that were new.
func (u *TreeSet[E, S]) PutAll(s Sets.Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.Put(e) {
			n++
		}
		return true
	})
	return
}

// RemoveAll elements of s. Returns the number of elements removed.
func (u *TreeSet[E, S]) RemoveAll(s Sets.Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.Remove(e) {
			n++
		}
		return true
	})
	return
}

func (u *TreeSet[E, S]) Eq(s Sets.Set[E]) bool {
	if u.Size() != s.Size() {
		return false
	}
	eq := true
	s.Range(func(e E) bool {
		eq = u.Has(e)
		return eq
	})
	return eq
}

func (u *TreeSet[E, S]) Union(s Sets.Set[E]) {
	u.PutAll(s)
}

// Intersect keeps only the elements also in s.
func (u *TreeSet[E, S]) Intersect(s Sets.Set[E]) {
	var drop []E
	u.Range(func(e E) bool {
		if !s.Has(e) {
			drop = append(drop, e)
		}
		return true
	})
	for _, e := range drop {
		u.tree.Delete(e)
	}
}

// Filter returns a new TreeSet with the elements satisfying f.
func (u *TreeSet[E, S]) Filter(f func(E) bool) Sets.ExtendedSet[E] {
	var keep []E
	u.Range(func(e E) bool {
		if f(e) {
			keep = append(keep, e)
		}
		return true
	})
	r, _ := From[E, S](keep) //keep is ascending.
	return r
}
