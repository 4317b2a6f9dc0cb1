package segment

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid segment-local offset or range.
	ErrIndexOutOfBounds = errors.New("segment: index out of bounds")
	// ErrReleased signals use of a buffer after its last reference was dropped.
	ErrReleased = errors.New("segment: buffer already released")
	// ErrNotAtTail signals an append to a segment which does not end at the
	// end of its buffer.
	ErrNotAtTail = errors.New("segment: segment does not end at buffer tail")
)
