package dvector

import (
	"github.com/npillmayer/dvector/avl"
)

// Builder incrementally stages elements and finalizes them into a Vector.
//
// Builder collects elements at both ends and materializes the vector only when
// Vector() is called. The result holds all staged elements in a single leaf,
// which is the most compact shape a tree can have.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[T any] struct {
	// front keeps prepended elements in reverse logical order.
	front []T
	// back keeps appended elements in logical order.
	back []T

	cfg    Config[T]
	done   bool
	dirty  bool
	vector *Vector[T]
}

// NewBuilder creates a new and empty vector builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// NewBuilderWithConfig creates a builder for vectors with configuration cfg.
func NewBuilderWithConfig[T any](cfg Config[T]) *Builder[T] {
	return &Builder[T]{cfg: cfg}
}

// Vector returns the vector built from all staged elements.
//
// It is illegal to continue adding elements after Vector has been called, but
// Vector may be called multiple times. Every call returns the same vector, so
// modifications by one caller are visible to all others. Use Vector.Clone to
// get an independent copy.
func (b *Builder[T]) Vector() (*Vector[T], error) {
	if b == nil {
		return nil, ErrIllegalArguments
	}
	if b.dirty || b.vector == nil {
		vec, err := b.buildVector()
		if err != nil {
			return nil, err
		}
		b.vector = vec
		b.dirty = false
	}
	b.done = true
	if b.vector.IsEmpty() {
		tracer().Debugf("vector builder: vector is empty")
	}
	return b.vector, nil
}

// Len returns the number of staged elements.
func (b *Builder[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.front) + len(b.back)
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.vector = nil
}

// Append appends values to the staged build.
func (b *Builder[T]) Append(values ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBuilderCompleted
	}
	if len(values) > 0 {
		b.back = append(b.back, values...)
		b.dirty = true
	}
	return nil
}

// Prepend prepends values to the staged build, keeping their order:
// Prepend(1, 2) followed by Prepend(0) stages 0, 1, 2.
func (b *Builder[T]) Prepend(values ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBuilderCompleted
	}
	// front is stored in reverse logical order.
	for i := len(values) - 1; i >= 0; i-- {
		b.front = append(b.front, values[i])
	}
	if len(values) > 0 {
		b.dirty = true
	}
	return nil
}

func (b *Builder[T]) buildVector() (*Vector[T], error) {
	tree, err := avl.FromValues(b.cfg.treeConfig(), b.orderedValues(), false)
	if err != nil {
		tracer().Errorf("vector builder: %v", err)
		return nil, err
	}
	return &Vector[T]{tree: tree}, nil
}

func (b *Builder[T]) orderedValues() []T {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]T, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}
