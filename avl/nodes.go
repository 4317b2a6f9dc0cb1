package avl

import "github.com/npillmayer/dvector/segment"

// Node is either a *Leaf or a *Branch.
type Node[T any] interface {
	// Count returns the number of elements in the subtree.
	Count() int
	// Parent returns the owning branch, or nil for the root.
	Parent() *Branch[T]
	IsLeaf() bool
	setParent(p *Branch[T])
}

// Leaf holds one segment of elements.
type Leaf[T any] struct {
	parent *Branch[T]
	seg    segment.Segment[T]
}

func (l *Leaf[T]) Count() int                  { return l.seg.Len() }
func (l *Leaf[T]) Parent() *Branch[T]          { return l.parent }
func (l *Leaf[T]) IsLeaf() bool                { return true }
func (l *Leaf[T]) setParent(p *Branch[T])      { l.parent = p }
func (l *Leaf[T]) Segment() segment.Segment[T] { return l.seg }

// Branch owns exactly two children.
type Branch[T any] struct {
	parent      *Branch[T]
	left, right Node[T]
	balance     int8 // height(left) - height(right)
	count       int  // left.Count() + right.Count()
}

func (b *Branch[T]) Count() int             { return b.count }
func (b *Branch[T]) Parent() *Branch[T]     { return b.parent }
func (b *Branch[T]) IsLeaf() bool           { return false }
func (b *Branch[T]) setParent(p *Branch[T]) { b.parent = p }

// Left returns the left child.
func (b *Branch[T]) Left() Node[T] { return b.left }

// Right returns the right child.
func (b *Branch[T]) Right() Node[T] { return b.right }

// Balance returns height(left) − height(right).
func (b *Branch[T]) Balance() int { return int(b.balance) }

// attach installs l and r as children of a freshly built branch over two
// subtrees of equal height.
func (b *Branch[T]) attach(l, r Node[T]) {
	b.left, b.right = l, r
	l.setParent(b)
	r.setParent(b)
	b.balance = 0
	b.count = l.Count() + r.Count()
}

func (b *Branch[T]) isLeftChild(n Node[T]) bool {
	return b.left == n
}

// sibling returns the other child of n's parent.
func sibling[T any](n Node[T]) Node[T] {
	p := n.Parent()
	assert(p != nil, "sibling of root requested")
	if p.left == n {
		return p.right
	}
	assert(p.right == n, "node is not a child of its parent")
	return p.left
}
