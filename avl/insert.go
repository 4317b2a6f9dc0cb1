package avl

import "github.com/npillmayer/dvector/segment"

// Insert inserts values before position index, 0 ≤ index ≤ Len(). All values
// go into one new leaf, so inserting k values costs O(log n + k).
func (t *Tree[T]) Insert(index int, values ...T) error {
	if index < 0 || index > t.Len() {
		return ErrIndexOutOfRange
	}
	if len(values) == 0 {
		return nil
	}
	buf, err := t.cfg.Allocator.NewBuffer(values, true)
	if err != nil {
		return err
	}
	return t.insertSegment(index, segment.Wrap(buf))
}

// InsertOwned is like Insert, but the tree takes ownership of values instead
// of copying them.
func (t *Tree[T]) InsertOwned(index int, values []T) error {
	if index < 0 || index > t.Len() {
		return ErrIndexOutOfRange
	}
	if len(values) == 0 {
		return nil
	}
	buf, err := t.cfg.Allocator.NewBuffer(values, false)
	if err != nil {
		return err
	}
	return t.insertSegment(index, segment.Wrap(buf))
}

// insertSegment inserts a leaf for seg at index. The tree takes over seg's
// buffer reference.
func (t *Tree[T]) insertSegment(index int, seg segment.Segment[T]) error {
	b := batch[T]{t: t}
	if t.root == nil {
		leaf := b.leaf(seg)
		if err := b.commit(); err != nil {
			return err
		}
		t.root = leaf
		return nil
	}
	leaf, local := t.access(t.root, index)
	if local == 0 || local == leaf.Count() {
		p := b.branch()
		incoming := b.leaf(seg)
		if err := b.commit(); err != nil {
			return err
		}
		t.grow(leaf, local, incoming, p)
		return nil
	}
	// Insertion into the middle of a leaf: split the leaf's segment at local,
	// put the new leaf behind the head and then splice the tail in right after
	// the new leaf. Head and tail keep sharing the original buffer.
	head, tail, err := leaf.seg.Split(local)
	assert(err == nil, "insert: split position outside of leaf")
	p, q := b.branch(), b.branch()
	incoming := b.leaf(seg)
	left, right := b.leaf(head), b.leaf(tail)
	if err := b.commit(); err != nil {
		return err
	}
	t.replace(p, leaf)
	p.attach(left, incoming)
	t.renewCounts(p)
	t.rebalance(p, +1)
	t.grow(incoming, incoming.Count(), right, q)
	t.free(leaf)
	return nil
}

// grow replaces leaf by branch p holding leaf and incoming, with incoming
// in front of leaf if local is 0 and behind it otherwise. The subtree grows
// by one level.
//
//	  o                 o
//	  |                 |
//	leaf      ->        p
//	                   / \
//	               leaf   incoming
func (t *Tree[T]) grow(leaf *Leaf[T], local int, incoming *Leaf[T], p *Branch[T]) {
	t.replace(p, leaf)
	if local == 0 {
		p.attach(incoming, leaf)
	} else {
		p.attach(leaf, incoming)
	}
	t.renewCounts(p)
	t.rebalance(p, +1)
}
