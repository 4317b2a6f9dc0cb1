package avl

import (
	"fmt"

	"github.com/npillmayer/dvector/segment"
)

// Tree is an AVL-balanced binary tree over a sequence of elements.
//
// The zero Tree is not usable; create trees with New or FromValues.
type Tree[T any] struct {
	cfg  Config[T]
	root Node[T] // nil for the empty sequence
}

// New creates an empty tree.
func New[T any](cfg Config[T]) *Tree[T] {
	return &Tree[T]{cfg: cfg.normalized()}
}

// FromValues creates a tree holding values in a single leaf. If copyValues is
// false, the tree takes ownership of values. This is an O(1) operation apart
// from an optional copy.
func FromValues[T any](cfg Config[T], values []T, copyValues bool) (*Tree[T], error) {
	t := New(cfg)
	if len(values) == 0 {
		return t, nil
	}
	buf, err := t.cfg.Allocator.NewBuffer(values, copyValues)
	if err != nil {
		return nil, err
	}
	leaf, err := t.cfg.Allocator.NewLeaf(segment.Wrap(buf))
	if err != nil {
		_ = buf.Release()
		return nil, err
	}
	t.root = leaf
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of elements. O(1).
func (t *Tree[T]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.Count()
}

// Height returns the number of branch levels above the deepest leaf, i.e. 0
// for a single leaf and -1 for the empty tree. It follows the heavier side
// of every branch and is therefore O(log n).
func (t *Tree[T]) Height() int {
	if t == nil || t.root == nil {
		return -1
	}
	h := 0
	n := t.root
	for !n.IsLeaf() {
		b := n.(*Branch[T])
		if b.balance >= 0 {
			n = b.left
		} else {
			n = b.right
		}
		h++
	}
	return h
}

// At returns the element at index.
func (t *Tree[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= t.Len() {
		return zero, ErrIndexOutOfRange
	}
	leaf, local := t.access(t.root, index)
	return leaf.seg.At(local), nil
}

// Set overwrites the element at index.
func (t *Tree[T]) Set(index int, value T) error {
	if index < 0 || index >= t.Len() {
		return ErrIndexOutOfRange
	}
	leaf, local := t.access(t.root, index)
	leaf.seg.Set(local, value)
	return nil
}

// Locate returns the leaf containing index and the offset within that leaf.
// index == Len() is permitted and yields the position behind the last element.
func (t *Tree[T]) Locate(index int) (*Leaf[T], int, error) {
	if t.root == nil || index < 0 || index > t.Len() {
		return nil, 0, ErrIndexOutOfRange
	}
	leaf, local := t.access(t.root, index)
	return leaf, local, nil
}

// --- Structural primitives -------------------------------------------------

// replace puts n into old's position, which is either the root or a child
// slot of old's parent. O(1).
func (t *Tree[T]) replace(n, old Node[T]) {
	p := old.Parent()
	n.setParent(p)
	if p == nil {
		assert(t.root == old, "replace: parentless node is not the root")
		t.root = n
		return
	}
	if p.left == old {
		p.left = n
	} else {
		assert(p.right == old, "replace: node is not a child of its parent")
		p.right = n
	}
}

// rotateLeft lifts x's right child above x and returns it.
//
//	  x                y
//	 / \              / \
//	a   y     ->     x   c
//	   / \          / \
//	  b   c        a   b
//
// Balance factors are left to the caller.
func (t *Tree[T]) rotateLeft(x *Branch[T]) *Branch[T] {
	y, ok := x.right.(*Branch[T])
	assert(ok, "rotateLeft: right child is not a branch")
	t.replace(y, x)
	x.right = y.left
	x.right.setParent(x)
	y.left = x
	x.parent = y
	x.count = x.left.Count() + x.right.Count()
	y.count = x.count + y.right.Count()
	return y
}

// rotateRight lifts y's left child above y and returns it. Mirror image of
// rotateLeft.
func (t *Tree[T]) rotateRight(y *Branch[T]) *Branch[T] {
	x, ok := y.left.(*Branch[T])
	assert(ok, "rotateRight: left child is not a branch")
	t.replace(x, y)
	y.left = x.right
	y.left.setParent(y)
	x.right = y
	y.parent = x
	y.count = y.left.Count() + y.right.Count()
	x.count = x.left.Count() + y.count
	return x
}

// renewCounts recomputes cached counts from b up to the root.
func (t *Tree[T]) renewCounts(b *Branch[T]) {
	for ; b != nil; b = b.parent {
		b.count = b.left.Count() + b.right.Count()
	}
}

// free hands n back to the allocator, dropping a leaf's buffer reference.
func (t *Tree[T]) free(n Node[T]) {
	if leaf, ok := n.(*Leaf[T]); ok {
		leaf.seg.Release()
		leaf.seg = segment.Segment[T]{}
	}
	t.cfg.Allocator.Free(n)
}

// freeSubtree frees n and all of its descendants, children first.
func (t *Tree[T]) freeSubtree(n Node[T]) {
	if b, ok := n.(*Branch[T]); ok {
		t.freeSubtree(b.left)
		t.freeSubtree(b.right)
	}
	t.free(n)
}

func (t *Tree[T]) rightmost() *Leaf[T] {
	n := t.root
	for n != nil && !n.IsLeaf() {
		n = n.(*Branch[T]).right
	}
	if n == nil {
		return nil
	}
	return n.(*Leaf[T])
}

// --- Whole-tree operations -------------------------------------------------

// Append adds value behind the last element. If the rightmost leaf ends at
// the tail of its buffer, the buffer grows in place and the tree keeps its
// shape; otherwise Append falls back to an insertion at Len().
func (t *Tree[T]) Append(value T) error {
	if !t.cfg.NoAppendFastPath {
		if leaf := t.rightmost(); leaf != nil {
			if seg, err := leaf.seg.Extend(value); err == nil {
				leaf.seg = seg
				t.renewCounts(leaf.parent)
				return nil
			}
		}
	}
	return t.Insert(t.Len(), value)
}

// Clone creates a structural copy of t with independent nodes. With
// shareBuffers set, leaves of the copy view the same buffers as t, so element
// writes are visible in both trees. Otherwise every leaf gets a fresh buffer
// holding a copy of its elements.
func (t *Tree[T]) Clone(shareBuffers bool) (*Tree[T], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	c := New(t.cfg)
	if t.root == nil {
		return c, nil
	}
	root, err := c.cloneNode(t.root, nil, shareBuffers)
	if err != nil {
		return nil, err
	}
	c.root = root
	tracer().Debugf("avl: cloned tree of %d elements (shared buffers=%v)", c.Len(), shareBuffers)
	return c, nil
}

func (t *Tree[T]) cloneNode(n Node[T], parent *Branch[T], share bool) (Node[T], error) {
	switch n := n.(type) {
	case *Leaf[T]:
		var seg segment.Segment[T]
		if share {
			seg, _ = n.seg.Slice(0, n.Count())
		} else {
			buf, err := t.cfg.Allocator.NewBuffer(n.seg.Values(), false)
			if err != nil {
				return nil, err
			}
			seg = segment.Wrap(buf)
		}
		leaf, err := t.cfg.Allocator.NewLeaf(seg)
		if err != nil {
			seg.Release()
			return nil, err
		}
		leaf.parent = parent
		return leaf, nil
	case *Branch[T]:
		b, err := t.cfg.Allocator.NewBranch()
		if err != nil {
			return nil, err
		}
		b.parent, b.balance, b.count = parent, n.balance, n.count
		l, err := t.cloneNode(n.left, b, share)
		if err != nil {
			t.free(b)
			return nil, err
		}
		r, err := t.cloneNode(n.right, b, share)
		if err != nil {
			t.freeSubtree(l)
			t.free(b)
			return nil, err
		}
		b.left, b.right = l, r
		return b, nil
	}
	panic("avl: unknown node type")
}

// Take moves all elements of t into a new tree and leaves t empty.
func (t *Tree[T]) Take() *Tree[T] {
	moved := &Tree[T]{cfg: t.cfg, root: t.root}
	t.root = nil
	return moved
}

// Release frees all nodes of t through its allocator and leaves t empty.
func (t *Tree[T]) Release() {
	if t == nil || t.root == nil {
		return
	}
	t.freeSubtree(t.root)
	t.root = nil
}
