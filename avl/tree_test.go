package avl

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeTree(t *testing.T, values ...int) *Tree[int] {
	t.Helper()
	tree, err := FromValues(Config[int]{}, values, true)
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}
	return tree
}

func mustCheck(t *testing.T, tree *Tree[int]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v\n%s", err, tree)
	}
}

func assertValues(t *testing.T, tree *Tree[int], want []int) {
	t.Helper()
	got := tree.Values()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got=%d want=%d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mismatch at %d: got=%v want=%v", i, got, want)
		}
		v, err := tree.At(i)
		if err != nil || v != want[i] {
			t.Fatalf("At(%d) = (%d, %v), want %d", i, v, err, want[i])
		}
	}
}

func TestFromValuesIsSingleLeaf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dvector")
	defer teardown()

	tree := makeTree(t, 0, 1, 2, 3, 4)
	if tree.Len() != 5 || tree.Height() != 0 || tree.LeafCount() != 1 {
		t.Fatalf("unexpected shape: len=%d height=%d leaves=%d", tree.Len(), tree.Height(), tree.LeafCount())
	}
	if !tree.Root().IsLeaf() {
		t.Fatalf("expected root to be a leaf")
	}
	empty := New(Config[int]{})
	if !empty.IsEmpty() || empty.Height() != -1 || empty.Len() != 0 {
		t.Fatalf("unexpected empty tree state")
	}
	mustCheck(t, empty)
}

func TestAccessRoutesByCount(t *testing.T) {
	tree := makeTree(t, 10, 20, 30)
	if err := tree.Insert(3, 40, 50); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	leaf, local, err := tree.Locate(3)
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if local != 0 || leaf.Segment().At(0) != 40 {
		t.Fatalf("Locate(3) = leaf %v local %d", leaf.Segment().Values(), local)
	}
	leaf, local, _ = tree.Locate(5)
	if local != 2 || leaf.Count() != 2 {
		t.Fatalf("Locate(Len) should land behind the last leaf, got local=%d", local)
	}
	if _, _, err := tree.Locate(6); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestInsertScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dvector")
	defer teardown()

	tree := makeTree(t, 1, 3, 5)
	if err := tree.Insert(1, 2); err != nil {
		t.Fatalf("Insert(1,2) failed: %v", err)
	}
	assertValues(t, tree, []int{1, 2, 3, 5})
	mustCheck(t, tree)
	if err := tree.Insert(3, 4); err != nil {
		t.Fatalf("Insert(3,4) failed: %v", err)
	}
	assertValues(t, tree, []int{1, 2, 3, 4, 5})
	mustCheck(t, tree)
	want := strings.Join([]string{
		"(-1) 5",
		"  (-1) 3",
		"    (0) 2",
		"      [5]",
		"      [4]",
		"    [3]",
		"  (0) 2",
		"    [2]",
		"    [1]",
		"",
	}, "\n")
	if got := tree.String(); got != want {
		t.Fatalf("unexpected tree:\n%s\nwant:\n%s", got, want)
	}
}

func TestMiddleInsertSharesBuffer(t *testing.T) {
	tree := makeTree(t, 1, 3, 5)
	buf := tree.Root().(*Leaf[int]).Segment().Buffer()
	if err := tree.Insert(1, 2); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	shared := 0
	tree.EachLeaf(func(leaf *Leaf[int], _ int) bool {
		if leaf.Segment().Buffer() == buf {
			shared++
		}
		return true
	})
	if shared != 2 || buf.Refs() != 2 {
		t.Fatalf("expected head and tail to share the buffer, shared=%d refs=%d", shared, buf.Refs())
	}
}

func TestInsertBoundaries(t *testing.T) {
	tree := makeTree(t, 5)
	if err := tree.Insert(0, 4); err != nil {
		t.Fatalf("Insert front failed: %v", err)
	}
	if err := tree.Insert(tree.Len(), 6); err != nil {
		t.Fatalf("Insert back failed: %v", err)
	}
	if err := tree.Insert(0, 1, 2, 3); err != nil {
		t.Fatalf("bulk Insert failed: %v", err)
	}
	assertValues(t, tree, []int{1, 2, 3, 4, 5, 6})
	mustCheck(t, tree)
	if err := tree.Insert(7, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := tree.Insert(-1, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange for negative index, got %v", err)
	}
	if err := tree.Insert(2); err != nil || tree.Len() != 6 {
		t.Fatalf("empty insert should be a no-op, err=%v len=%d", err, tree.Len())
	}
}

func TestInsertIntoEmptyTree(t *testing.T) {
	tree := New(Config[int]{})
	if err := tree.Insert(0, 7); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if !tree.Root().IsLeaf() || tree.Len() != 1 {
		t.Fatalf("expected single leaf root")
	}
	mustCheck(t, tree)
}

func TestSequentialAppendsRotate(t *testing.T) {
	tree := makeTree(t, 0)
	tree.cfg.NoAppendFastPath = true
	for i := 1; i <= 6; i++ {
		if err := tree.Append(i * 10); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		mustCheck(t, tree)
	}
	if err := tree.Insert(2, 21); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := tree.Insert(2, 22); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	mustCheck(t, tree)
	assertValues(t, tree, []int{0, 10, 22, 21, 20, 30, 40, 50, 60})
	if tree.LeafCount() != 9 || tree.Height() > 4 {
		t.Fatalf("unexpected shape: leaves=%d height=%d", tree.LeafCount(), tree.Height())
	}
}

func TestAppendFastPathKeepsShape(t *testing.T) {
	tree := makeTree(t, 0)
	for i := 1; i < 100; i++ {
		if err := tree.Append(i); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	if tree.LeafCount() != 1 || tree.Len() != 100 {
		t.Fatalf("expected appends to grow the single leaf, leaves=%d len=%d", tree.LeafCount(), tree.Len())
	}
	// after a middle split only the tail leaf may grow its buffer
	if err := tree.Insert(50, -1); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	leaves := tree.LeafCount()
	if err := tree.Append(100); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if tree.LeafCount() != leaves {
		t.Fatalf("append after split should reuse tail buffer, leaves %d -> %d", leaves, tree.LeafCount())
	}
	mustCheck(t, tree)
	if v, _ := tree.At(101); v != 100 {
		t.Fatalf("last element = %d, want 100", v)
	}
	if v, _ := tree.At(50); v != -1 {
		t.Fatalf("element 50 = %d, want -1", v)
	}
}

func TestRepeatedInsideInsertions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dvector")
	defer teardown()

	tree := makeTree(t, 0, 10, 20, 30, 40)
	if err := tree.Insert(1, 5); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	model := []int{0, 5, 10, 20, 30, 40}
	for i := 0; i < 1000; i++ {
		for _, op := range []struct{ at, v int }{{2, 6}, {3, 7}, {3, 8}, {3, 9}} {
			if err := tree.Insert(op.at, op.v); err != nil {
				t.Fatalf("Insert failed: %v", err)
			}
			model = append(model[:op.at], append([]int{op.v}, model[op.at:]...)...)
		}
	}
	mustCheck(t, tree)
	assertValues(t, tree, model)
}

func TestRandomInsertsKeepBalance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dvector")
	defer teardown()

	tree := makeTree(t, 0)
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 1000; i++ {
		if err := tree.Insert(r.Intn(tree.Len()), 233); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		mustCheck(t, tree)
	}
	if tree.Len() != 1001 {
		t.Fatalf("len = %d, want 1001", tree.Len())
	}
	// an AVL tree over n leaves is at most ~1.44 log2(n) high
	if h := tree.Height(); h > 16 {
		t.Fatalf("tree too high: %d for %d leaves", h, tree.LeafCount())
	}
}

func TestEraseBoundariesCollapseEmptyLeaves(t *testing.T) {
	tree := makeTree(t, 1, 3, 5)
	_ = tree.Insert(1, 2)
	_ = tree.Insert(3, 4)
	if err := tree.Erase(0); err != nil {
		t.Fatalf("Erase(0) failed: %v", err)
	}
	mustCheck(t, tree)
	assertValues(t, tree, []int{2, 3, 4, 5})
	if err := tree.Erase(tree.Len() - 1); err != nil {
		t.Fatalf("Erase(last) failed: %v", err)
	}
	mustCheck(t, tree)
	assertValues(t, tree, []int{2, 3, 4})
	for tree.Len() > 0 {
		if err := tree.Erase(tree.Len() - 1); err != nil {
			t.Fatalf("Erase failed: %v", err)
		}
		mustCheck(t, tree)
	}
	if !tree.IsEmpty() {
		t.Fatalf("expected empty tree")
	}
	if err := tree.Erase(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange on empty tree, got %v", err)
	}
}

func TestEraseFromLeafEnds(t *testing.T) {
	tree := makeTree(t, 0, 1, 2, 3, 4)
	if err := tree.Erase(0); err != nil {
		t.Fatalf("Erase failed: %v", err)
	}
	if err := tree.Erase(3); err != nil {
		t.Fatalf("Erase failed: %v", err)
	}
	if !tree.Root().IsLeaf() {
		t.Fatalf("erasing at leaf ends must not change the shape")
	}
	assertValues(t, tree, []int{1, 2, 3})
}

func TestEraseMiddleSplitsLeaf(t *testing.T) {
	tree := makeTree(t, 0, 1, 2, 3, 4)
	if err := tree.Erase(2); err != nil {
		t.Fatalf("Erase failed: %v", err)
	}
	mustCheck(t, tree)
	assertValues(t, tree, []int{0, 1, 3, 4})
	if tree.LeafCount() != 2 || tree.Height() != 1 {
		t.Fatalf("expected two leaves under one branch, leaves=%d height=%d", tree.LeafCount(), tree.Height())
	}
}

func TestRandomInsertEraseAgainstModel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dvector")
	defer teardown()

	tree := makeTree(t, 0)
	model := []int{0}
	r := rand.New(rand.NewSource(0))
	for i := 1; i <= 1000; i++ {
		at := r.Intn(len(model))
		if err := tree.Insert(at, i); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		model = append(model[:at], append([]int{i}, model[at:]...)...)
		mustCheck(t, tree)
	}
	clone, err := tree.Clone(false)
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	for len(model) > 0 {
		at := r.Intn(len(model))
		if err := clone.Erase(at); err != nil {
			t.Fatalf("Erase failed: %v", err)
		}
		model = append(model[:at], model[at+1:]...)
		if err := clone.Check(); err != nil {
			t.Fatalf("invariant check failed after erase: %v", err)
		}
		if clone.Len() != len(model) {
			t.Fatalf("len = %d, want %d", clone.Len(), len(model))
		}
	}
	if tree.Len() != 1001 {
		t.Fatalf("erasing from the clone changed the original")
	}
	mustCheck(t, tree)
}

func TestRotationsPreserveOrder(t *testing.T) {
	tree := makeTree(t, 1, 2, 3)
	tree.cfg.NoAppendFastPath = true
	_ = tree.Append(4)
	_ = tree.Append(5)
	root := tree.Root().(*Branch[int])
	before := tree.Values()
	top := tree.rotateLeft(root)
	if tree.Root() != Node[int](top) || top.Parent() != nil {
		t.Fatalf("rotateLeft did not install new root")
	}
	assertValues(t, tree, before)
	back := tree.rotateRight(top)
	if back != root || tree.Root() != Node[int](root) {
		t.Fatalf("rotateRight did not restore the root")
	}
	assertValues(t, tree, before)
	if root.Count() != 5 {
		t.Fatalf("count after rotations = %d, want 5", root.Count())
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := makeTree(t, 1, 2, 3, 4)
	_ = tree.Erase(1)
	root := tree.Root().(*Branch[int])
	root.count++
	if err := tree.Check(); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("expected count violation, got %v", err)
	}
	root.count--
	root.balance = 1
	if err := tree.Check(); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("expected balance violation, got %v", err)
	}
	root.balance = 0
	root.left.setParent(nil)
	if err := tree.Check(); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("expected back-reference violation, got %v", err)
	}
	root.left.setParent(root)
	mustCheck(t, tree)
}

func TestCloneIsolation(t *testing.T) {
	tree := makeTree(t, 1, 2, 3, 4)
	_ = tree.Insert(2, 9)
	clone, err := tree.Clone(false)
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	mustCheck(t, clone)
	_ = clone.Set(0, 100)
	if v, _ := tree.At(0); v != 1 {
		t.Fatalf("value clone aliases original: tree[0]=%d", v)
	}
	shared, err := tree.Clone(true)
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	_ = shared.Set(0, 100)
	if v, _ := tree.At(0); v != 100 {
		t.Fatalf("shared clone should alias original buffers: tree[0]=%d", v)
	}
	if shared.Root() == tree.Root() {
		t.Fatalf("shared clone must not share nodes")
	}
}

func TestTakeLeavesSourceEmpty(t *testing.T) {
	tree := makeTree(t, 1, 2, 3)
	moved := tree.Take()
	if tree.Len() != 0 || !tree.IsEmpty() {
		t.Fatalf("source not empty after Take")
	}
	assertValues(t, moved, []int{1, 2, 3})
	if err := tree.Insert(0, 42); err != nil {
		t.Fatalf("source unusable after Take: %v", err)
	}
	assertValues(t, tree, []int{42})
}

func TestEraseRangeCutsOnlyEndLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dvector")
	defer teardown()

	tree := makeTree(t, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	if err := tree.Insert(10, 10, 11, 12); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := tree.Insert(13, 13, 14); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if tree.LeafCount() != 3 {
		t.Fatalf("expected 3 leaves, have %d:\n%s", tree.LeafCount(), tree)
	}
	if err := tree.EraseRange(5, 14); err != nil {
		t.Fatalf("EraseRange failed: %v", err)
	}
	mustCheck(t, tree)
	assertValues(t, tree, []int{0, 1, 2, 3, 4, 14})
	if tree.LeafCount() != 2 {
		t.Errorf("covered leaf should be collapsed, have %d leaves:\n%s", tree.LeafCount(), tree)
	}
	//
	tree = makeTree(t, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	if err := tree.EraseRange(2, 4); err != nil {
		t.Fatalf("EraseRange failed: %v", err)
	}
	mustCheck(t, tree)
	assertValues(t, tree, []int{0, 1, 4, 5, 6, 7, 8, 9})
	if tree.LeafCount() != 2 {
		t.Errorf("range inside a leaf should split it, have %d leaves", tree.LeafCount())
	}
	if err := tree.EraseRange(3, 3); err != nil || tree.Len() != 8 {
		t.Errorf("empty range should be a no-op, err=%v len=%d", err, tree.Len())
	}
	if err := tree.EraseRange(4, 2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange for reversed range, got %v", err)
	}
	if err := tree.EraseRange(0, 9); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange for range beyond end, got %v", err)
	}
	if err := tree.EraseRange(0, tree.Len()); err != nil {
		t.Fatalf("EraseRange failed: %v", err)
	}
	if !tree.IsEmpty() {
		t.Errorf("tree should be empty, is\n%s", tree)
	}
	mustCheck(t, tree)
}

func TestRandomEraseRangeAgainstModel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dvector")
	defer teardown()

	tree := makeTree(t, 0)
	model := []int{0}
	r := rand.New(rand.NewSource(3))
	for i := 1; i < 400; i++ {
		at := r.Intn(len(model) + 1)
		if err := tree.Insert(at, i, -i); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		model = append(model[:at], append([]int{i, -i}, model[at:]...)...)
	}
	for len(model) > 0 {
		from := r.Intn(len(model))
		to := from + r.Intn(len(model)-from+1)
		if to-from > 40 {
			to = from + 40
		}
		if err := tree.EraseRange(from, to); err != nil {
			t.Fatalf("EraseRange(%d,%d) failed: %v", from, to, err)
		}
		model = append(model[:from], model[to:]...)
		mustCheck(t, tree)
		if tree.Len() != len(model) {
			t.Fatalf("len = %d, want %d", tree.Len(), len(model))
		}
	}
	assertValues(t, tree, nil)
}
