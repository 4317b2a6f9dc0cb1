package avl

// ForEach walks the elements in order, passing each element's absolute
// position.
//
// Iteration stops early if fn returns false.
func (t *Tree[T]) ForEach(fn func(index int, value T) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.EachLeaf(func(leaf *Leaf[T], start int) bool {
		return leaf.seg.Each(func(i int, v T) bool {
			return fn(start+i, v)
		})
	})
}

// EachLeaf walks the leaves in order, passing each leaf's absolute start
// position. Iteration stops early if fn returns false.
func (t *Tree[T]) EachLeaf(fn func(leaf *Leaf[T], start int) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.Walk(func(n Node[T], pos, depth int) bool {
		if leaf, ok := n.(*Leaf[T]); ok {
			return fn(leaf, pos)
		}
		return true
	})
}

// Walk visits all nodes in pre-order, left subtree first. For each node it
// passes the absolute position of the subtree's first element and the depth,
// where the root has depth 0. Returning false from fn stops the walk.
func (t *Tree[T]) Walk(fn func(n Node[T], pos, depth int) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	walk(t.root, 0, 0, fn)
}

func walk[T any](n Node[T], pos, depth int, fn func(Node[T], int, int) bool) bool {
	assert(n != nil, "walk called with nil node")
	if !fn(n, pos, depth) {
		return false
	}
	if b, ok := n.(*Branch[T]); ok {
		if !walk(b.left, pos, depth+1, fn) {
			return false
		}
		return walk(b.right, pos+b.left.Count(), depth+1, fn)
	}
	return true
}

// LeafCount returns the number of leaves.
func (t *Tree[T]) LeafCount() int {
	cnt := 0
	t.EachLeaf(func(*Leaf[T], int) bool {
		cnt++
		return true
	})
	return cnt
}

// Values collects all elements into a new slice.
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.Len())
	t.ForEach(func(_ int, v T) bool {
		out = append(out, v)
		return true
	})
	return out
}
