package dvector

import "github.com/npillmayer/dvector/avl"

// Iterator is a random-access position within a vector.
//
// An iterator is bound to the vector's current structure. Insertions or
// erasures invalidate all iterators of a vector, while Set does not.
type Iterator[T any] struct {
	cursor avl.Cursor[T]
}

// Begin returns an iterator at the first element of v.
func (v *Vector[T]) Begin() *Iterator[T] {
	return &Iterator[T]{cursor: v.t().Begin()}
}

// End returns an iterator at the position behind the last element of v.
func (v *Vector[T]) End() *Iterator[T] {
	return &Iterator[T]{cursor: v.t().End()}
}

// IteratorAt returns an iterator at index i, 0 ≤ i ≤ Len().
func (v *Vector[T]) IteratorAt(i int) (*Iterator[T], error) {
	c, err := v.t().CursorAt(i)
	if err != nil {
		return nil, ErrIndexOutOfRange
	}
	return &Iterator[T]{cursor: c}, nil
}

// Pos returns the index the iterator is positioned at.
func (it *Iterator[T]) Pos() int {
	if it == nil {
		return 0
	}
	return it.cursor.Pos()
}

// IsEnd reports whether the iterator is behind the last element.
func (it *Iterator[T]) IsEnd() bool {
	return it == nil || it.cursor.IsEnd()
}

// Next returns the element at the current position and advances by one.
//
// If the iterator is at the end, ok is false.
func (it *Iterator[T]) Next() (value T, ok bool) {
	if it.IsEnd() {
		return value, false
	}
	value, err := it.cursor.Value()
	if err != nil {
		return value, false
	}
	return value, it.cursor.Next() == nil
}

// Prev moves back by one and returns the element at the new position.
//
// If the iterator is at the first element, ok is false.
func (it *Iterator[T]) Prev() (value T, ok bool) {
	if it == nil || it.cursor.Prev() != nil {
		return value, false
	}
	value, err := it.cursor.Value()
	return value, err == nil
}

// Value returns the element at the current position.
func (it *Iterator[T]) Value() (T, error) {
	if it == nil {
		var zero T
		return zero, ErrIllegalArguments
	}
	value, err := it.cursor.Value()
	if err != nil {
		return value, ErrIndexOutOfRange
	}
	return value, nil
}

// Set overwrites the element at the current position.
func (it *Iterator[T]) Set(value T) error {
	if it == nil {
		return ErrIllegalArguments
	}
	if err := it.cursor.Set(value); err != nil {
		return ErrIndexOutOfRange
	}
	return nil
}

// Seek moves the iterator to index i, 0 ≤ i ≤ Len(). On error the iterator
// does not move.
func (it *Iterator[T]) Seek(i int) error {
	if it == nil {
		return ErrIllegalArguments
	}
	if err := it.cursor.Seek(i); err != nil {
		return ErrIndexOutOfRange
	}
	return nil
}

// Advance moves the iterator by k positions, backwards for negative k. On
// error the iterator does not move.
func (it *Iterator[T]) Advance(k int) error {
	if it == nil {
		return ErrIllegalArguments
	}
	if err := it.cursor.Advance(k); err != nil {
		return ErrIndexOutOfRange
	}
	return nil
}

// Distance returns it.Pos() − other.Pos().
func (it *Iterator[T]) Distance(other *Iterator[T]) int {
	return it.Pos() - other.Pos()
}
