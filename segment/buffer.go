package segment

// Buffer is shared, reference-counted storage for element values.
//
// A buffer is created with one reference, held by the first segment wrapping
// it. Every derived segment retains the buffer; releasing the last reference
// drops the element storage and calls the release hook, if any.
//
// Buffers are never resized, except for appends at the tail (see
// Segment.Extend).
type Buffer[T any] struct {
	data      []T
	refs      int
	onRelease func(*Buffer[T])
}

// NewBuffer creates a buffer which takes ownership of values. The caller must
// not use values afterwards.
func NewBuffer[T any](values []T) *Buffer[T] {
	return &Buffer[T]{data: values, refs: 1}
}

// CopyBuffer creates a buffer holding a copy of values.
func CopyBuffer[T any](values []T) *Buffer[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &Buffer[T]{data: data, refs: 1}
}

// OnRelease installs a hook which is called once the last reference to b is
// dropped. Instrumented allocators use this to track buffer lifetimes.
func (b *Buffer[T]) OnRelease(hook func(*Buffer[T])) {
	b.onRelease = hook
}

// Len returns the number of elements in the buffer.
func (b *Buffer[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Refs returns the current reference count.
func (b *Buffer[T]) Refs() int {
	if b == nil {
		return 0
	}
	return b.refs
}

// Retain adds a reference to b.
func (b *Buffer[T]) Retain() {
	if b == nil {
		return
	}
	assert(b.refs > 0, "segment: retain on released buffer")
	b.refs++
}

// Release drops a reference to b. Dropping the last reference releases the
// element storage.
func (b *Buffer[T]) Release() error {
	if b == nil {
		return nil
	}
	if b.refs <= 0 {
		return ErrReleased
	}
	b.refs--
	if b.refs == 0 {
		b.data = nil
		if b.onRelease != nil {
			b.onRelease(b)
		}
	}
	return nil
}

func (b *Buffer[T]) appendValue(v T) {
	assert(b.refs > 0, "segment: append to released buffer")
	b.data = append(b.data, v)
}
