package segment

// Segment is a window [start, end) onto a shared Buffer.
//
// The zero value is a valid empty segment without a buffer.
type Segment[T any] struct {
	buf        *Buffer[T]
	start, end int
}

// Wrap creates a segment spanning all of buf. The segment takes over the
// reference the caller holds on buf.
func Wrap[T any](buf *Buffer[T]) Segment[T] {
	return Segment[T]{buf: buf, start: 0, end: buf.Len()}
}

// New creates a segment spanning a fresh buffer holding a copy of values.
func New[T any](values ...T) Segment[T] {
	return Wrap(CopyBuffer(values))
}

// Len returns the number of elements in the window.
func (s Segment[T]) Len() int {
	return s.end - s.start
}

// IsEmpty reports whether the window is empty.
func (s Segment[T]) IsEmpty() bool {
	return s.end == s.start
}

// Buffer returns the underlying buffer. It may be nil for an empty segment.
func (s Segment[T]) Buffer() *Buffer[T] {
	return s.buf
}

// Bounds returns the window's position within its buffer.
func (s Segment[T]) Bounds() (start, end int) {
	return s.start, s.end
}

// At returns the element at segment-local offset i.
func (s Segment[T]) At(i int) T {
	assert(i >= 0 && s.start+i < s.end, "segment: At out of bounds")
	return s.buf.data[s.start+i]
}

// Set overwrites the element at segment-local offset i.
func (s Segment[T]) Set(i int, v T) {
	assert(i >= 0 && s.start+i < s.end, "segment: Set out of bounds")
	s.buf.data[s.start+i] = v
}

// Ptr returns a pointer to the element at segment-local offset i. The pointer
// is valid until the buffer grows by an append at its tail.
func (s Segment[T]) Ptr(i int) *T {
	assert(i >= 0 && s.start+i < s.end, "segment: Ptr out of bounds")
	return &s.buf.data[s.start+i]
}

// Slice creates a new segment [from, to) relative to s, sharing s's buffer.
// The new segment holds its own reference on the buffer.
func (s Segment[T]) Slice(from, to int) (Segment[T], error) {
	if from < 0 || from > to || to > s.Len() {
		return Segment[T]{}, ErrIndexOutOfBounds
	}
	if from == to {
		// empty windows need no storage
		return Segment[T]{}, nil
	}
	s.buf.Retain()
	return Segment[T]{buf: s.buf, start: s.start + from, end: s.start + to}, nil
}

// Split divides s at offset i into two segments sharing s's buffer. Either
// half may be empty. s keeps its own reference.
func (s Segment[T]) Split(i int) (Segment[T], Segment[T], error) {
	if i < 0 || i > s.Len() {
		return Segment[T]{}, Segment[T]{}, ErrIndexOutOfBounds
	}
	left, _ := s.Slice(0, i)
	right, _ := s.Slice(i, s.Len())
	return left, right, nil
}

// AtTail reports whether s ends at the end of its buffer, i.e. whether s may
// grow by Extend.
func (s Segment[T]) AtTail() bool {
	return s.buf != nil && s.buf.refs > 0 && s.end == len(s.buf.data)
}

// Extend appends v to the buffer behind s and returns the widened segment.
// This is the only way a buffer ever grows. No other segment can cover the
// appended position, as s ends at the buffer's tail.
func (s Segment[T]) Extend(v T) (Segment[T], error) {
	if !s.AtTail() {
		return s, ErrNotAtTail
	}
	s.buf.appendValue(v)
	s.end++
	return s, nil
}

// Values returns a copy of the elements in the window.
func (s Segment[T]) Values() []T {
	if s.IsEmpty() {
		return nil
	}
	out := make([]T, s.Len())
	copy(out, s.buf.data[s.start:s.end])
	return out
}

// Each calls f for every element in the window until f returns false.
func (s Segment[T]) Each(f func(i int, v T) bool) bool {
	for i := s.start; i < s.end; i++ {
		if !f(i-s.start, s.buf.data[i]) {
			return false
		}
	}
	return true
}

// Release drops the segment's reference on its buffer.
func (s Segment[T]) Release() {
	if s.buf == nil {
		return
	}
	if err := s.buf.Release(); err != nil {
		tracer().Errorf("segment release: %v", err)
	}
}
