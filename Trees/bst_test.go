package Trees

import (
	"errors"
	"io"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

var rg = *rand.New(rand.NewSource(0))

var _ OrderedMap[int, int, uint] = (*BST[int, int, uint])(nil)

func init() {
	Log.SetOutput(io.Discard)
}

const (
	tAddN        = 20000
	tAddValRange = 40000
)

// randomTree puts tAddN random keys and returns the tree with the map of its content.
func randomTree(t testing.TB) (*BST[int, int, uint32], map[int]int) {
	t.Helper()
	tree := New[int, int, uint32]()
	content := make(map[int]int)
	for i := range tAddN {
		k := rg.Intn(tAddValRange)
		tree.Put(k, i)
		content[k] = i
	}
	return tree, content
}

func sortedKeys(content map[int]int) []int {
	ks := make([]int, 0, len(content))
	for k := range content {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return ks
}

func TestBST_Put(t *testing.T) {
	tree, content := randomTree(t)
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	for k, v := range content {
		if got, ok := tree.Get(k); !ok || got != v {
			t.Errorf("tree has (%v, %v) for key %v, want %v", got, ok, k, v)
		}
	}
	for range 1000 {
		if k := rg.Intn(tAddValRange) + tAddValRange; tree.Contains(k) {
			t.Errorf("tree has non existent key %v", k)
		}
	}
	size := tree.Size()
	for k := range content {
		tree.Put(k, -k)
	}
	if tree.Size() != size {
		t.Errorf("overwriting changed size from %d to %d", size, tree.Size())
	}
	for k := range content {
		if got, _ := tree.Get(k); got != -k {
			t.Errorf("key %v has value %v after overwrite, want %v", k, got, -k)
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestBST_ZeroValue(t *testing.T) {
	tree := New[string, *int, uint8]()
	tree.Put("nil", nil)
	if v, ok := tree.Get("nil"); !ok || v != nil {
		t.Errorf("stored nil reads as (%v, %v)", v, ok)
	}
	if v, ok := tree.Get("missing"); ok || v != nil {
		t.Errorf("missing key reads as (%v, %v)", v, ok)
	}
	if !tree.Contains("nil") {
		t.Errorf("stored nil isn't contained")
	}
}

func TestBST_Delete(t *testing.T) {
	tree, content := randomTree(t)
	if New[int, int, uint]().Delete(0) {
		t.Errorf("empty tree deleted key %v", 0)
	}
	for range tAddN {
		k := rg.Intn(tAddValRange)
		_, in := content[k]
		size := tree.Size()
		if tree.Delete(k) != in {
			t.Errorf("deleting key %v returned %v", k, !in)
		}
		if in && tree.Size() != size-1 {
			t.Errorf("size is %d after deleting %v, want %d", tree.Size(), k, size-1)
		} else if !in && tree.Size() != size {
			t.Errorf("size changed from %d to %d deleting absent %v", size, tree.Size(), k)
		}
		if tree.Contains(k) {
			t.Errorf("tree still has key %v", k)
		}
		delete(content, k)
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	for k := range content {
		if !tree.Contains(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	for k := range content {
		tree.Delete(k)
	}
	if !tree.IsEmpty() || tree.Size() != 0 {
		t.Errorf("tree of size %d isn't empty", tree.Size())
	}
}

func TestBST_DeleteCases(t *testing.T) {
	tests := []struct {
		name string
		keys []int
		del  int
	}{
		{"leaf", []int{5, 3, 8}, 3},
		{"only left", []int{5, 3, 2}, 3},
		{"only right", []int{5, 3, 4}, 3},
		{"successor is right child", []int{5, 3, 8, 9}, 5},
		{"successor deep in right", []int{5, 3, 9, 7, 6, 8}, 5},
		{"successor has right child", []int{5, 3, 9, 6, 7}, 5},
		{"root alone", []int{1}, 1},
		{"absent", []int{5, 3, 8}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := New[int, string, uint]()
			for _, k := range tt.keys {
				tree.Put(k, "")
			}
			want := slices.DeleteFunc(slices.Sorted(slices.Values(tt.keys)), func(k int) bool { return k == tt.del })
			tree.Delete(tt.del)
			if err := tree.Check(); err != nil {
				t.Fatal(err)
			}
			if got := tree.Keys(); !slices.Equal(got, want) {
				t.Errorf("keys are %v, want %v", got, want)
			}
		})
	}
}

func TestBST_DeleteMinMax(t *testing.T) {
	tree := New[int, int, uint16]()
	if err := tree.DeleteMin(); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("DeleteMin on empty tree returned %v", err)
	}
	if err := tree.DeleteMax(); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("DeleteMax on empty tree returned %v", err)
	}
	for _, k := range rg.Perm(1000) {
		tree.Put(k, k)
	}
	for i := range 500 {
		if err := tree.DeleteMin(); err != nil {
			t.Fatal(err)
		}
		if err := tree.DeleteMax(); err != nil {
			t.Fatal(err)
		}
		if i < 499 {
			if lo, _ := tree.Min(); lo != i+1 {
				t.Errorf("min is %v after %d DeleteMin, want %v", lo, i+1, i+1)
			}
			if hi, _ := tree.Max(); hi != 998-i {
				t.Errorf("max is %v after %d DeleteMax, want %v", hi, i+1, 998-i)
			}
		}
		if err := tree.Check(); err != nil {
			t.Fatal(err)
		}
	}
	if !tree.IsEmpty() {
		t.Errorf("tree of size %d isn't empty", tree.Size())
	}
}

func TestBST_Chain(t *testing.T) {
	const n = 1 << 14
	tree := New[int, struct{}, uint32]()
	for i := range n {
		tree.Put(i, struct{}{})
	}
	if h := tree.Height(); h != n {
		t.Errorf("sorted insertion height is %d, want %d", h, n)
	}
	if r := tree.Rank(n); r != n {
		t.Errorf("rank past the end is %d, want %d", r, n)
	}
	if k, _ := tree.Select(n - 1); k != n-1 {
		t.Errorf("select(%d) is %d", n-1, k)
	}
	if !tree.Delete(n / 2) {
		t.Errorf("failed to delete from chain")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	it, c := tree.PostOrder(), 0
	for ; it.HasNext(); c++ {
		it.Next()
	}
	if c != n-1 {
		t.Errorf("post-order gave %d keys, want %d", c, n-1)
	}
}

func TestBST_CustomOrder(t *testing.T) {
	tree := NewFunc[string, int, uint](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	tree.Put("b", 1)
	tree.Put("A", 2)
	tree.Put("a", 3)
	tree.Put("C", 4)
	if tree.Size() != 3 {
		t.Errorf("size is %d, want 3", tree.Size())
	}
	if v, _ := tree.Get("A"); v != 3 {
		t.Errorf("A has %d, want 3", v)
	}
	if got := tree.Keys(); !slices.Equal(got, []string{"A", "b", "C"}) {
		t.Errorf("keys are %v", got)
	}
}

func TestFrom(t *testing.T) {
	ks := make([]int, 1000)
	for i := range ks {
		ks[i] = i * 2
	}
	tree, err := From[int, int, uint16](ks, ks)
	if err != nil {
		t.Fatal(err)
	}
	if err = tree.Check(); err != nil {
		t.Fatal(err)
	}
	if tree.Height() != 10 {
		t.Errorf("height is %d, want 10", tree.Height())
	}
	if !slices.Equal(tree.Keys(), ks) {
		t.Errorf("keys aren't the input")
	}
	empty, err := From[int, int, uint16](nil, nil)
	if err != nil || !empty.IsEmpty() {
		t.Errorf("building from nothing returned (%v, %v)", empty, err)
	}

	var ise *InvalidSliceError
	if _, err = From[int, int, uint16]([]int{1, 3, 3}, []int{0, 0, 0}); !errors.As(err, &ise) {
		t.Errorf("duplicate keys returned %v", err)
	} else if ise.Index != 2 {
		t.Errorf("duplicate reported at %d, want 2", ise.Index)
	}
	if _, err = From[int, int, uint16]([]int{1, 2}, []int{0}); err == nil {
		t.Errorf("mismatched lengths accepted")
	}
}

func TestBST_Check(t *testing.T) {
	tree, _ := randomTree(t)
	if tree.Corrupt() {
		t.Fatal(tree.Check())
	}
	tree.root.sz++
	if !tree.Corrupt() {
		t.Errorf("wrong root size went unnoticed")
	}
	tree.root.sz--
	l := leftmost(tree.root)
	l.key = tree.root.key + 1
	if !tree.Corrupt() {
		t.Errorf("misplaced key went unnoticed")
	}
}

func TestBST_Print(t *testing.T) {
	var sb strings.Builder
	Log.SetOutput(&sb)
	Log.SetFormatter(&logrus.JSONFormatter{})
	defer Log.SetOutput(io.Discard)
	tree := New[int, int, uint8]()
	for _, k := range []int{2, 1, 3} {
		tree.Put(k, k)
	}
	tree.Print()
	if lines := strings.Count(sb.String(), "\n"); lines != 3 {
		t.Errorf("Print logged %d lines, want 3", lines)
	}
	if !strings.Contains(sb.String(), `"depth":1`) {
		t.Errorf("Print didn't log depths: %s", sb.String())
	}
}
