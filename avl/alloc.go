package avl

import (
	"sync"

	"github.com/npillmayer/dvector/segment"
)

// Allocator produces and reclaims tree nodes and element buffers.
//
// Implementations return an error wrapping ErrOutOfMemory if they cannot
// serve a request. The tree never retries a failed allocation.
//
// Free is called for nodes which are no longer part of any tree. For leaves,
// the tree has already dropped the leaf's segment reference. Free must not
// touch children or parents of a branch.
type Allocator[T any] interface {
	NewBranch() (*Branch[T], error)
	NewLeaf(seg segment.Segment[T]) (*Leaf[T], error)
	// NewBuffer wraps values into a buffer. If copyValues is false, the buffer
	// takes ownership of values.
	NewBuffer(values []T, copyValues bool) (*segment.Buffer[T], error)
	Free(n Node[T])
}

// MakeLeaf initializes a leaf for allocator implementations.
func MakeLeaf[T any](leaf *Leaf[T], seg segment.Segment[T]) *Leaf[T] {
	*leaf = Leaf[T]{seg: seg}
	return leaf
}

// MakeBuffer creates a buffer for allocator implementations.
func MakeBuffer[T any](values []T, copyValues bool) *segment.Buffer[T] {
	if copyValues {
		return segment.CopyBuffer(values)
	}
	return segment.NewBuffer(values)
}

// --- Heap allocation -------------------------------------------------------

// HeapAllocator allocates from the Go heap and leaves reclamation to the
// garbage collector. It is the default allocator.
type HeapAllocator[T any] struct{}

func (HeapAllocator[T]) NewBranch() (*Branch[T], error) {
	return &Branch[T]{}, nil
}

func (HeapAllocator[T]) NewLeaf(seg segment.Segment[T]) (*Leaf[T], error) {
	return MakeLeaf(&Leaf[T]{}, seg), nil
}

func (HeapAllocator[T]) NewBuffer(values []T, copyValues bool) (*segment.Buffer[T], error) {
	return MakeBuffer(values, copyValues), nil
}

func (HeapAllocator[T]) Free(Node[T]) {}

var _ Allocator[int] = HeapAllocator[int]{}

// --- Pooled allocation -----------------------------------------------------

// PoolAllocator recycles branches and leaves through sync.Pool. This reduces
// GC pressure for edit-heavy workloads, where every insert and erase creates
// and discards a few nodes.
type PoolAllocator[T any] struct {
	branchPool sync.Pool
	leafPool   sync.Pool
}

// NewPoolAllocator creates a new node pool.
func NewPoolAllocator[T any]() *PoolAllocator[T] {
	return &PoolAllocator[T]{
		branchPool: sync.Pool{
			New: func() interface{} {
				return &Branch[T]{}
			},
		},
		leafPool: sync.Pool{
			New: func() interface{} {
				return &Leaf[T]{}
			},
		},
	}
}

func (pa *PoolAllocator[T]) NewBranch() (*Branch[T], error) {
	return pa.branchPool.Get().(*Branch[T]), nil
}

func (pa *PoolAllocator[T]) NewLeaf(seg segment.Segment[T]) (*Leaf[T], error) {
	return MakeLeaf(pa.leafPool.Get().(*Leaf[T]), seg), nil
}

func (pa *PoolAllocator[T]) NewBuffer(values []T, copyValues bool) (*segment.Buffer[T], error) {
	return MakeBuffer(values, copyValues), nil
}

// Free clears n and returns it to its pool. n must not be used afterwards.
func (pa *PoolAllocator[T]) Free(n Node[T]) {
	switch n := n.(type) {
	case *Branch[T]:
		*n = Branch[T]{}
		pa.branchPool.Put(n)
	case *Leaf[T]:
		*n = Leaf[T]{}
		pa.leafPool.Put(n)
	}
}

var _ Allocator[int] = (*PoolAllocator[int])(nil)

// --- Allocation batches ----------------------------------------------------

// batch collects the nodes a single tree operation needs. Operations allocate
// everything up front and only then start restructuring, so a failing
// allocation leaves the tree untouched.
type batch[T any] struct {
	t     *Tree[T]
	nodes [5]Node[T]
	n     int
	err   error
}

func (b *batch[T]) branch() *Branch[T] {
	if b.err != nil {
		return nil
	}
	br, err := b.t.cfg.Allocator.NewBranch()
	if err != nil {
		b.err = err
		return nil
	}
	b.keep(br)
	return br
}

// leaf takes over seg, even if allocation fails.
func (b *batch[T]) leaf(seg segment.Segment[T]) *Leaf[T] {
	if b.err != nil {
		seg.Release()
		return nil
	}
	lf, err := b.t.cfg.Allocator.NewLeaf(seg)
	if err != nil {
		seg.Release()
		b.err = err
		return nil
	}
	b.keep(lf)
	return lf
}

func (b *batch[T]) keep(n Node[T]) {
	assert(b.n < len(b.nodes), "allocation batch overflow")
	b.nodes[b.n] = n
	b.n++
}

// commit returns nil if all allocations succeeded. Otherwise it hands back
// every node of the batch to the allocator and reports the failure.
func (b *batch[T]) commit() error {
	if b.err == nil {
		return nil
	}
	for i := 0; i < b.n; i++ {
		b.t.free(b.nodes[i])
	}
	tracer().Errorf("avl: allocation failed: %v", b.err)
	return b.err
}
