package avl

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration or a nil tree.
	ErrInvalidConfig = errors.New("avl: invalid configuration")
	// ErrIndexOutOfRange signals an invalid positional index.
	ErrIndexOutOfRange = errors.New("avl: index out of range")
	// ErrCursorOutOfRange signals a cursor moved before the start or past the
	// end of the sequence, or dereferenced at the end position.
	ErrCursorOutOfRange = errors.New("avl: cursor out of range")
	// ErrOutOfMemory signals that an allocator could not provide a node or
	// buffer.
	ErrOutOfMemory = errors.New("avl: out of memory")
	// ErrInvariantViolation signals a broken structural invariant. It always
	// indicates an implementation bug.
	ErrInvariantViolation = errors.New("avl: invariant violation")
)
