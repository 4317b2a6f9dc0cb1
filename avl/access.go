package avl

// access descends from n to the leaf holding index and returns the leaf with
// the leaf-local offset. index == n.Count() is permitted and lands behind the
// last element of the rightmost leaf of n, which is where appends go.
func (t *Tree[T]) access(n Node[T], index int) (*Leaf[T], int) {
	assert(n != nil, "access called with nil node")
	assert(index >= 0 && index <= n.Count(), "access index out of range")
	for !n.IsLeaf() {
		b := n.(*Branch[T])
		if lc := b.left.Count(); index < lc {
			n = b.left
		} else {
			index -= lc
			n = b.right
		}
	}
	return n.(*Leaf[T]), index
}
