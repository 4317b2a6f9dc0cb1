package avl

import "fmt"

// Check validates all structural tree invariants.
//
// This checker is strict and walks the whole tree. It is meant for tests and
// diagnostics, not for production call sites.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		return nil
	}
	if t.root.Parent() != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariantViolation)
	}
	_, _, err := t.checkNode(t.root, nil)
	return err
}

func (t *Tree[T]) checkNode(n Node[T], parent *Branch[T]) (count int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvariantViolation)
	}
	if n.Parent() != parent {
		return 0, 0, fmt.Errorf("%w: parent back-reference does not match owner", ErrInvariantViolation)
	}
	switch n := n.(type) {
	case *Leaf[T]:
		if n.Count() == 0 {
			return 0, 0, fmt.Errorf("%w: empty leaf in tree", ErrInvariantViolation)
		}
		start, end := n.seg.Bounds()
		if start < 0 || start > end || end > n.seg.Buffer().Len() {
			return 0, 0, fmt.Errorf("%w: leaf window [%d,%d) exceeds buffer of length %d",
				ErrInvariantViolation, start, end, n.seg.Buffer().Len())
		}
		return n.Count(), 0, nil
	case *Branch[T]:
		lc, lh, err := t.checkNode(n.left, n)
		if err != nil {
			return 0, 0, err
		}
		rc, rh, err := t.checkNode(n.right, n)
		if err != nil {
			return 0, 0, err
		}
		if n.count != lc+rc {
			return 0, 0, fmt.Errorf("%w: cached count %d != %d+%d",
				ErrInvariantViolation, n.count, lc, rc)
		}
		if int(n.balance) != lh-rh {
			return 0, 0, fmt.Errorf("%w: balance %d != height difference %d-%d",
				ErrInvariantViolation, n.balance, lh, rh)
		}
		if n.balance < -1 || n.balance > 1 {
			return 0, 0, fmt.Errorf("%w: balance %d out of range", ErrInvariantViolation, n.balance)
		}
		return lc + rc, max(lh, rh) + 1, nil
	}
	return 0, 0, fmt.Errorf("%w: unknown node type %T", ErrInvariantViolation, n)
}
