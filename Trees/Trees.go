package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// OrderedMap represents an ordered key-value index implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Min on
// an empty tree, the return value will be (x K, false bool). In this
// case the value of x is the zero value of K and should not be used.
// A stored zero value is therefore distinguishable from a missing key.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here.
type OrderedMap[K any, V any, S constraints.Unsigned] interface {
	//Put k with value v. If k exists, only its value is replaced.
	Put(k K, v V)
	//Get the value stored under k.
	Get(k K) (V, bool)
	//Contains k.
	Contains(k K) bool
	//Delete k. Returns false if k isn't in the tree, which isn't an error.
	Delete(k K) bool
	//DeleteMin removes the smallest key. Returns EmptyTreeError on an empty tree.
	DeleteMin() error
	//DeleteMax removes the greatest key. Returns EmptyTreeError on an empty tree.
	DeleteMax() error
	//Min is the smallest key.
	Min() (K, bool)
	//Max is the greatest key.
	Max() (K, bool)
	//Floor is the greatest key <= k.
	Floor(k K) (K, bool)
	//Ceiling is the smallest key >= k.
	Ceiling(k K) (K, bool)
	//Rank is the number of keys strictly less than k. k needn't be in the tree.
	Rank(k K) S
	//Select the key with exactly i smaller keys.
	//0<=i<Size(), otherwise (zero, false).
	Select(i S) (K, bool)
	//KeysBetween lo and hi inclusively, in ascending order.
	KeysBetween(lo, hi K) []K
	//Keys in ascending order.
	Keys() []K
	//LevelOrder lists the keys breadth first.
	LevelOrder() []K
	//Height is the number of nodes on the longest root to leaf path.
	Height() S
	//Size of the tree.
	Size() S
	IsEmpty() bool
	//InOrder returns an Iterator giving keys in ascending order.
	//The tree must not be modified during the iteration, otherwise the
	//iterator gives unspecified keys. There will be no error or panic if
	//that happens, so design the algorithm with this in mind.
	InOrder() Iterator[K]
	//PreOrder returns an Iterator giving each node's key before its subtrees'.
	PreOrder() Iterator[K]
	//PostOrder returns an Iterator giving each node's key after its subtrees'.
	PostOrder() Iterator[K]
}

// Iterator is a pull based sequence of keys. It can't be restarted.
type Iterator[K any] interface {
	//HasNext reports whether Next will succeed. It has no side effects.
	HasNext() bool
	//Next key. Returns ExhaustedError if there's none.
	Next() (K, error)
}

var (
	ErrEmptyTree = &EmptyTreeError{}
	ErrExhausted = &ExhaustedError{}
)

type EmptyTreeError struct {
}

func (e *EmptyTreeError) Error() string {
	return "Tree is Empty: cannot delete."
}

func (e *EmptyTreeError) Is(target error) bool {
	_, ok := target.(*EmptyTreeError)
	return ok
}

type ExhaustedError struct {
}

func (e *ExhaustedError) Error() string {
	return "Iterator is exhausted: no more keys."
}

func (e *ExhaustedError) Is(target error) bool {
	_, ok := target.(*ExhaustedError)
	return ok
}

// InvalidSliceError is returned when building a tree from keys that aren't strictly increasing.
// Keys[0] should be less than Keys[1], at Index in the input slice.
type InvalidSliceError struct {
	Keys  [2]any
	Index int
}

func (e *InvalidSliceError) Error() string {
	return fmt.Sprintf("keys not strictly increasing at %d: %v, %v", e.Index, e.Keys[0], e.Keys[1])
}
