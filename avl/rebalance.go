package avl

// rebalance walks up from start, whose subtree height just changed by delta
// (+1 or −1), and repairs balance factors on the way.
//
// Growth (delta = +1) stops as soon as a branch becomes balanced, because
// that branch kept its height, or after one repair: a rotation after growth
// always restores the subtree's previous height.
//
// Shrinking (delta = −1) stops as soon as a branch was balanced before the
// update, because that branch kept its height. A repair after shrinking may
// itself lower the subtree, in which case the walk goes on above it. Hence
// erasures may rotate on several levels.
func (t *Tree[T]) rebalance(start Node[T], delta int8) {
	child := start
	for {
		parent := child.Parent()
		if parent == nil {
			return
		}
		before := parent.balance
		if parent.isLeftChild(child) {
			parent.balance += delta
		} else {
			parent.balance -= delta
		}
		switch {
		case delta > 0 && parent.balance == 0:
			return
		case delta < 0 && before == 0:
			return
		case parent.balance == 2 || parent.balance == -2:
			top, shrunk := t.repair(parent)
			if delta > 0 || !shrunk {
				return
			}
			child = top
		default:
			child = parent
		}
	}
}

// repair resolves a balance factor of ±2 at x by one or two rotations. It
// returns the new top of the subtree and whether the subtree got lower than it
// was before the repair.
func (t *Tree[T]) repair(x *Branch[T]) (top *Branch[T], shrunk bool) {
	if x.balance == 2 {
		l, ok := x.left.(*Branch[T])
		assert(ok, "repair: left-heavy branch without left branch")
		if lb := l.balance; lb >= 0 { // left-left
			top = t.rotateRight(x)
			x.balance = 1 - lb
			l.balance = lb - 1
			return top, lb != 0
		}
		// left-right
		m, ok := l.right.(*Branch[T])
		assert(ok, "repair: left-right case without inner branch")
		mb := m.balance
		t.rotateLeft(l)
		top = t.rotateRight(x)
		l.balance, x.balance, m.balance = 0, 0, 0
		if mb == 1 {
			x.balance = -1
		} else if mb == -1 {
			l.balance = 1
		}
		return top, true
	}
	assert(x.balance == -2, "repair called on balanced branch")
	r, ok := x.right.(*Branch[T])
	assert(ok, "repair: right-heavy branch without right branch")
	if rb := r.balance; rb <= 0 { // right-right
		top = t.rotateLeft(x)
		x.balance = -1 - rb
		r.balance = rb + 1
		return top, rb != 0
	}
	// right-left
	m, ok := r.left.(*Branch[T])
	assert(ok, "repair: right-left case without inner branch")
	mb := m.balance
	t.rotateRight(r)
	top = t.rotateLeft(x)
	r.balance, x.balance, m.balance = 0, 0, 0
	if mb == -1 {
		x.balance = 1
	} else if mb == 1 {
		r.balance = -1
	}
	return top, true
}
