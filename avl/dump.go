package avl

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a text rendering of the tree to w. Nodes are listed in
// pre-order with the right subtree first, indented by depth, so the output
// reads like the tree turned 90° counter-clockwise. Branches show their
// balance factor and element count, leaves their elements.
//
//	(+1) 5
//	  [4, 5]
//	  (0) 3
//	    [3]
//	    [1, 2]
func (t *Tree[T]) Dump(w io.Writer) error {
	if t == nil || t.root == nil {
		_, err := io.WriteString(w, "<empty>\n")
		return err
	}
	var err error
	dumpNode(t.root, 0, func(n Node[T], depth int) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), NodeLabel(n))
	})
	return err
}

func dumpNode[T any](n Node[T], depth int, fn func(Node[T], int)) {
	fn(n, depth)
	if b, ok := n.(*Branch[T]); ok {
		dumpNode(b.right, depth+1, fn)
		dumpNode(b.left, depth+1, fn)
	}
}

// NodeLabel returns a short description of a node: "(balance) count" for
// branches and the element list for leaves.
func NodeLabel[T any](n Node[T]) string {
	switch n := n.(type) {
	case *Branch[T]:
		if n.balance == 0 {
			return fmt.Sprintf("(0) %d", n.count)
		}
		return fmt.Sprintf("(%+d) %d", n.balance, n.count)
	case *Leaf[T]:
		var sb strings.Builder
		sb.WriteByte('[')
		n.seg.Each(func(i int, v T) bool {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", v)
			return true
		})
		sb.WriteByte(']')
		return sb.String()
	}
	return "?"
}

// String returns the Dump output as a string.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	_ = t.Dump(&sb)
	return sb.String()
}
