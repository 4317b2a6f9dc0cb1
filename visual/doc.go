/*
Package visual renders the tree behind a vector on a console.

Output follows the layout of avl's Dump: the tree is listed in pre-order,
right subtree first, which reads like the tree turned counter-clockwise.
Branches are colored according to their balance factor, which makes lopsided
regions of a tree easy to spot in large dumps:

	green    balanced branch (0)
	yellow   branch leaning to one side (±1)
	red      branch violating the AVL condition

Leaves are printed with their elements, cut off at the configured line width.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package visual

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dvector'
func tracer() tracing.Trace {
	return tracing.Select("dvector")
}
