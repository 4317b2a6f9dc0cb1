/*
Package avl provides the height-balanced binary tree backing dvector.

The tree stores a sequence of elements. Leaves hold segments, i.e. windows onto
shared element buffers; branches hold exactly two children, the cached element
count of their subtree and a balance factor

	balance = height(left) − height(right)

which is kept within {−1, 0, 1} by AVL rotations. Every node except the root
carries a non-owning back-reference to its parent branch. Cursors use these
references to climb out of a leaf and re-descend into a neighbouring subtree.

Positional access descends by cached counts and is O(log n). Inserting into the
middle of a leaf splits its segment without copying the payload: both halves
keep sharing the original buffer.

Structural invariants:

  - branch counts equal the sum of their children's counts,
  - balance factors are exact and within {−1, 0, 1},
  - no branch has an empty leaf as a child; the empty tree has no root,
  - parent back-references are the inverse of the child links.

The package is not safe for concurrent use. Any structural change to a tree
invalidates cursors positioned on it.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package avl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dvector'
func tracer() tracing.Trace {
	return tracing.Select("dvector")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
