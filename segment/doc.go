/*
Package segment provides shared element buffers and non-copying windows onto
them.

A Buffer is a contiguous, reference-counted block of element values. A Segment
is a half-open range [start, end) into a Buffer. Splitting a segment yields new
segments over the same buffer, so payload is never copied when a tree leaf is
split. Segments derived from the same parent never overlap; writes through
different segments therefore never touch the same element.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package segment

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
