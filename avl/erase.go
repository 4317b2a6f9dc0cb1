package avl

// Erase removes the element at index, 0 ≤ index < Len().
func (t *Tree[T]) Erase(index int) error {
	if index < 0 || index >= t.Len() {
		return ErrIndexOutOfRange
	}
	leaf, local := t.access(t.root, index)
	n := leaf.Count()
	b := batch[T]{t: t}
	if local == 0 || local == n-1 {
		from, to := 1, n
		if local != 0 {
			from, to = 0, n-1
		}
		if from == to {
			t.collapse(leaf)
			return nil
		}
		narrowed, _ := leaf.seg.Slice(from, to)
		repl := b.leaf(narrowed)
		if err := b.commit(); err != nil {
			return err
		}
		// a shrinking leaf leaves the tree's shape alone
		t.replace(repl, leaf)
		t.renewCounts(repl.parent)
		t.free(leaf)
		return nil
	}
	head, _ := leaf.seg.Slice(0, local)
	tail, _ := leaf.seg.Slice(local+1, n)
	p := b.branch()
	left, right := b.leaf(head), b.leaf(tail)
	if err := b.commit(); err != nil {
		return err
	}
	t.replace(p, leaf)
	p.attach(left, right)
	t.renewCounts(p)
	t.rebalance(p, +1)
	t.free(leaf)
	return nil
}

// EraseRange removes the elements in [from, to). Leaves lying completely
// inside the range are collapsed; at most two leaves are cut. Everything the
// cuts need is allocated before the tree is changed, so a failing allocation
// leaves the tree as it was.
func (t *Tree[T]) EraseRange(from, to int) error {
	if from < 0 || to > t.Len() || from > to {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}
	type cut struct {
		old, repl *Leaf[T]
	}
	var cuts []cut
	var covered []*Leaf[T]
	var middle, head, tail *Leaf[T]
	var p *Branch[T]
	b := batch[T]{t: t}
	for pos := from; pos < to; {
		leaf, local := t.access(t.root, pos)
		start, n := pos-local, leaf.Count()
		switch end := start + n; {
		case local == 0 && end <= to:
			covered = append(covered, leaf)
		case local > 0 && end > to:
			// range lies inside a single leaf
			h, _ := leaf.seg.Slice(0, local)
			tl, _ := leaf.seg.Slice(to-start, n)
			middle, p = leaf, b.branch()
			head, tail = b.leaf(h), b.leaf(tl)
		case local > 0:
			keep, _ := leaf.seg.Slice(0, local)
			cuts = append(cuts, cut{old: leaf, repl: b.leaf(keep)})
		default:
			keep, _ := leaf.seg.Slice(to-start, n)
			cuts = append(cuts, cut{old: leaf, repl: b.leaf(keep)})
		}
		pos = start + n
	}
	if err := b.commit(); err != nil {
		return err
	}
	for _, c := range cuts {
		t.replace(c.repl, c.old)
		t.renewCounts(c.repl.parent)
		t.free(c.old)
	}
	if middle != nil {
		t.replace(p, middle)
		p.attach(head, tail)
		t.renewCounts(p)
		t.rebalance(p, +1)
		t.free(middle)
	}
	for _, leaf := range covered {
		t.collapse(leaf)
	}
	tracer().Debugf("avl: erased [%d,%d), cut %d leaves, collapsed %d", from, to, len(cuts), len(covered))
	return nil
}

// collapse removes a leaf which has run empty. Its parent branch is replaced
// by the leaf's sibling, which lowers that part of the tree by one level.
//
//	     o                o
//	     |                |
//	     p       ->    sibling
//	    / \
//	leaf   sibling
func (t *Tree[T]) collapse(leaf *Leaf[T]) {
	p := leaf.parent
	if p == nil {
		t.root = nil
		t.free(leaf)
		return
	}
	brother := sibling[T](leaf)
	t.replace(brother, p)
	t.free(leaf)
	t.free(p)
	t.renewCounts(brother.Parent())
	t.rebalance(brother, -1)
}
