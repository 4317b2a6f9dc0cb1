package dvector

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"
	"iter"

	"github.com/npillmayer/dvector/avl"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer. Before a core-tracer has been installed,
// it traces with key 'dvector'.
func T() tracing.Trace {
	if gtrace.CoreTracer == nil {
		return tracing.Select("dvector")
	}
	return gtrace.CoreTracer
}

// tracer forwards to T; usable inside generic code where the type parameter T
// shadows the package-level function.
func tracer() tracing.Trace {
	return T()
}

// VectorError is an error type for the dvector module
type VectorError string

func (e VectorError) Error() string {
	return string(e)
}

// ErrIndexOutOfRange is flagged whenever an index is negative or not smaller
// than the length of the vector (not greater, for insertions).
const ErrIndexOutOfRange = VectorError("index out of range")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = VectorError("illegal arguments")

// ErrBuilderCompleted signals that a builder has already produced its vector
// and it's illegal to further add elements.
const ErrBuilderCompleted = VectorError("forbidden to add elements; vector has been completed")

// Config configures a Vector.
type Config[T any] struct {
	// Allocator produces tree nodes and element buffers. Defaults to plain
	// heap allocation.
	Allocator avl.Allocator[T]
	// NoAppendFastPath makes PushBack always create a new leaf instead of
	// growing the rightmost buffer in place.
	NoAppendFastPath bool
}

func (cfg Config[T]) treeConfig() avl.Config[T] {
	return avl.Config[T]{
		Allocator:        cfg.Allocator,
		NoAppendFastPath: cfg.NoAppendFastPath,
	}
}

// Vector is an ordered sequence of elements with O(log n) indexing, insertion
// and erasure.
//
// A vector created by
//
//	Vector[T]{}
//
// is a valid object and behaves like an empty vector with default
// configuration.
type Vector[T any] struct {
	tree *avl.Tree[T]
}

// New creates an empty vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{tree: avl.New(avl.Config[T]{})}
}

// NewWithConfig creates an empty vector with a custom configuration.
func NewWithConfig[T any](cfg Config[T]) *Vector[T] {
	return &Vector[T]{tree: avl.New(cfg.treeConfig())}
}

// FromSlice creates a vector holding a copy of values.
func FromSlice[T any](values []T) *Vector[T] {
	tree, err := avl.FromValues(avl.Config[T]{}, values, true)
	assert(err == nil, "FromSlice: cannot create tree")
	return &Vector[T]{tree: tree}
}

// Wrap creates a vector on top of values without copying them. The vector
// takes ownership of values; clients must not use the slice afterwards.
func Wrap[T any](values []T) *Vector[T] {
	tree, err := avl.FromValues(avl.Config[T]{}, values, false)
	assert(err == nil, "Wrap: cannot create tree")
	return &Vector[T]{tree: tree}
}

func (v *Vector[T]) t() *avl.Tree[T] {
	if v.tree == nil {
		v.tree = avl.New(avl.Config[T]{})
	}
	return v.tree
}

// Len returns the number of elements of v.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.tree.Len()
}

// IsEmpty is a predicate: does v contain any elements?
func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// At returns the element at index i, 0 ≤ i < Len().
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.Len() {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return v.tree.At(i)
}

// Set overwrites the element at index i, 0 ≤ i < Len().
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= v.Len() {
		return ErrIndexOutOfRange
	}
	return v.tree.Set(i, value)
}

// Insert inserts values in front of index i, 0 ≤ i ≤ Len(). Insert(Len(), …)
// appends. All values are stored in a single new leaf.
func (v *Vector[T]) Insert(i int, values ...T) error {
	if v == nil {
		return ErrIllegalArguments
	}
	if i < 0 || i > v.Len() {
		return ErrIndexOutOfRange
	}
	return v.t().Insert(i, values...)
}

// InsertOwned inserts values in front of index i without copying them. The
// slice becomes the storage of a new leaf; clients must not use it afterwards.
func (v *Vector[T]) InsertOwned(i int, values []T) error {
	if v == nil {
		return ErrIllegalArguments
	}
	if i < 0 || i > v.Len() {
		return ErrIndexOutOfRange
	}
	return v.t().InsertOwned(i, values)
}

// Erase removes the element at index i, 0 ≤ i < Len().
func (v *Vector[T]) Erase(i int) error {
	if i < 0 || i >= v.Len() {
		return ErrIndexOutOfRange
	}
	return v.tree.Erase(i)
}

// EraseRange removes the elements in [from, to). If the allocator fails, v is
// left unchanged.
func (v *Vector[T]) EraseRange(from, to int) error {
	if from < 0 || to > v.Len() || from > to {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}
	return v.tree.EraseRange(from, to)
}

// PushBack appends value to the end of v.
func (v *Vector[T]) PushBack(value T) error {
	if v == nil {
		return ErrIllegalArguments
	}
	return v.t().Append(value)
}

// Values copies all elements of v into a new slice. This may be an expensive
// operation for large vectors.
func (v *Vector[T]) Values() []T {
	if v == nil {
		return []T{}
	}
	return v.tree.Values()
}

// All returns an iterator over index/element pairs, front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v == nil {
			return
		}
		v.tree.ForEach(yield)
	}
}

// Backward returns an iterator over index/element pairs, back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v.Len() == 0 {
			return
		}
		c := v.tree.End()
		for c.Prev() == nil {
			value, _ := c.Value()
			if !yield(c.Pos(), value) {
				return
			}
		}
	}
}

// Clone creates a copy of v with independent element storage. Changing
// elements of the clone does not affect v and vice versa.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.clone(false)
}

// CloneShared creates a structural copy of v whose leaves view the same
// element buffers as v. Set on either vector is visible in both, whereas
// insertions and erasures affect only the vector they are applied to.
func (v *Vector[T]) CloneShared() (*Vector[T], error) {
	return v.clone(true)
}

func (v *Vector[T]) clone(share bool) (*Vector[T], error) {
	if v == nil {
		return nil, ErrIllegalArguments
	}
	tree, err := v.t().Clone(share)
	if err != nil {
		tracer().Errorf("vector clone: %v", err)
		return nil, err
	}
	return &Vector[T]{tree: tree}, nil
}

// Take moves all elements of v into a new vector and leaves v empty. v remains
// valid for further use.
func (v *Vector[T]) Take() *Vector[T] {
	if v == nil {
		return New[T]()
	}
	moved := &Vector[T]{tree: v.t().Take()}
	tracer().Debugf("vector: moved %d elements", moved.Len())
	return moved
}

// Reset drops all elements of v.
func (v *Vector[T]) Reset() {
	if v == nil || v.tree == nil {
		return
	}
	v.tree.Release()
}

// Check validates the internal structure of v. A non-nil result always
// indicates a bug in this package.
func (v *Vector[T]) Check() error {
	if v == nil {
		return ErrIllegalArguments
	}
	return v.t().Check()
}

// Dump writes the internal tree structure of v to w, for debugging purposes.
func (v *Vector[T]) Dump(w io.Writer) error {
	if v == nil {
		return ErrIllegalArguments
	}
	return v.t().Dump(w)
}

// String returns the internal tree structure of v in the format of Dump.
func (v *Vector[T]) String() string {
	if v == nil {
		return "<nil>"
	}
	return v.t().String()
}

// Tree returns the tree backing v, for diagnostic renderers. Clients must
// not modify it.
func (v *Vector[T]) Tree() *avl.Tree[T] {
	return v.t()
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
