package dvector

import (
	"fmt"
	"io"

	"github.com/npillmayer/dvector/avl"
)

type nodeids[T any] struct {
	idTable map[avl.Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[avl.Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node avl.Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node avl.Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Vector2Dot outputs the internal structure of a Vector in Graphviz DOT format
// (for debugging purposes).
func Vector2Dot[T any](vec *Vector[T], w io.Writer) error {
	if vec == nil {
		return ErrIllegalArguments
	}
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	vec.Tree().Walk(func(node avl.Node[T], pos, depth int) bool {
		ID := ids.alloc(node)
		styles := nodeDotStyles(node.IsLeaf())
		if node.IsLeaf() {
			label := fmt.Sprintf("%d @%d\\n%s", node.Count(), pos, leafstart(node.(*avl.Leaf[T])))
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
			return true
		}
		branch := node.(*avl.Branch[T])
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(branch.Left()))
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(branch.Right()))
		nodelist += fmt.Sprintf("\"%d\" [label=\"%d|%+d\" %s];\n", ID, node.Count(),
			branch.Balance(), styles)
		return true
	})
	for _, s := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist,
		edgelist,
		"}\n",
	} {
		if _, err := io.WriteString(w, s); err != nil {
			tracer().Errorf("vector DOT: %s", err.Error())
			return err
		}
	}
	return nil
}

// leafstart renders the first few elements of a leaf.
func leafstart[T any](leaf *avl.Leaf[T]) string {
	seg := leaf.Segment()
	s := "["
	seg.Each(func(i int, v T) bool {
		if i == 3 {
			s += ", …"
			return false
		}
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%v", v)
		return true
	})
	return s + "]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
