package avl

// Cursor is a random-access position within a tree.
//
// A cursor remembers the leaf it points into, the offset within that leaf and
// the absolute position. Moving within a leaf is O(1). Moving out of a leaf
// climbs the parent chain until the enclosing subtree covers the target and
// descends again, which is O(log n) for any distance.
//
// The end position (one behind the last element) has no leaf. Cursors never
// change the tree; any structural change of the tree invalidates them.
type Cursor[T any] struct {
	tree  *Tree[T]
	leaf  *Leaf[T] // nil at end
	local int
	pos   int
}

// Begin returns a cursor at the first element, or at the end position for an
// empty tree.
func (t *Tree[T]) Begin() Cursor[T] {
	c, _ := t.CursorAt(0)
	return c
}

// End returns a cursor at the position behind the last element.
func (t *Tree[T]) End() Cursor[T] {
	return Cursor[T]{tree: t, pos: t.Len()}
}

// CursorAt returns a cursor at index, 0 ≤ index ≤ Len().
func (t *Tree[T]) CursorAt(index int) (Cursor[T], error) {
	if index < 0 || index > t.Len() {
		return Cursor[T]{}, ErrIndexOutOfRange
	}
	if index == t.Len() {
		return t.End(), nil
	}
	leaf, local := t.access(t.root, index)
	return Cursor[T]{tree: t, leaf: leaf, local: local, pos: index}, nil
}

// Pos returns the absolute position of the cursor.
func (c Cursor[T]) Pos() int {
	return c.pos
}

// IsEnd reports whether c is at the position behind the last element.
func (c Cursor[T]) IsEnd() bool {
	return c.leaf == nil
}

// Equal reports whether c and other are at the same position.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.pos == other.pos
}

// Less reports whether c is positioned before other.
func (c Cursor[T]) Less(other Cursor[T]) bool {
	return c.pos < other.pos
}

// Distance returns c.Pos() − other.Pos().
func (c Cursor[T]) Distance(other Cursor[T]) int {
	return c.pos - other.pos
}

// Value returns the element under the cursor.
func (c Cursor[T]) Value() (T, error) {
	if c.leaf == nil {
		var zero T
		return zero, ErrCursorOutOfRange
	}
	return c.leaf.seg.At(c.local), nil
}

// Set overwrites the element under the cursor.
func (c Cursor[T]) Set(value T) error {
	if c.leaf == nil {
		return ErrCursorOutOfRange
	}
	c.leaf.seg.Set(c.local, value)
	return nil
}

// Ptr returns a pointer to the element under the cursor, or nil at the end.
func (c Cursor[T]) Ptr() *T {
	if c.leaf == nil {
		return nil
	}
	return c.leaf.seg.Ptr(c.local)
}

// Next moves c one element forward. Moving forward from the last element
// yields the end position.
func (c *Cursor[T]) Next() error {
	return c.Advance(1)
}

// Prev moves c one element backward.
func (c *Cursor[T]) Prev() error {
	return c.Advance(-1)
}

// Seek moves c to the absolute position index, 0 ≤ index ≤ Len().
func (c *Cursor[T]) Seek(index int) error {
	return c.Advance(index - c.pos)
}

// Advance moves c by k positions. If the target lies before the first
// element or behind the end position, Advance returns ErrCursorOutOfRange and
// leaves c unchanged.
func (c *Cursor[T]) Advance(k int) error {
	switch {
	case c.tree == nil:
		return ErrCursorOutOfRange
	case k > 0:
		return c.forward(k)
	case k < 0:
		return c.backward(-k)
	}
	return nil
}

func (c *Cursor[T]) forward(k int) error {
	if c.leaf == nil {
		return ErrCursorOutOfRange
	}
	target := c.local + k
	if target < c.leaf.Count() {
		c.local = target
		c.pos += k
		return nil
	}
	var n Node[T] = c.leaf
	for n.Count() <= target {
		p := n.Parent()
		if p == nil {
			if target == n.Count() {
				c.leaf, c.local = nil, 0
				c.pos += k
				return nil
			}
			return ErrCursorOutOfRange
		}
		if !p.isLeftChild(n) {
			target += p.left.Count()
		}
		n = p
	}
	c.leaf, c.local = c.tree.access(n, target)
	c.pos += k
	return nil
}

func (c *Cursor[T]) backward(k int) error {
	var n Node[T]
	var target int
	if c.leaf == nil {
		n = c.tree.root
		if n == nil || k > n.Count() {
			return ErrCursorOutOfRange
		}
		target = n.Count() - k
	} else {
		target = c.local - k
		if target >= 0 {
			c.local = target
			c.pos -= k
			return nil
		}
		n = c.leaf
		for target < 0 {
			p := n.Parent()
			if p == nil {
				return ErrCursorOutOfRange
			}
			if !p.isLeftChild(n) {
				target += p.left.Count()
			}
			n = p
		}
	}
	c.leaf, c.local = c.tree.access(n, target)
	c.pos -= k
	return nil
}
