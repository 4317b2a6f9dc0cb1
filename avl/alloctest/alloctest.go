/*
Package alloctest provides an instrumented allocator for tests of package avl
and its clients.

The allocator counts live branches, leaves and buffers, detects nodes which are
freed twice or were never handed out, and can be told to fail after a number of
allocations to exercise out-of-memory paths. All bookkeeping lives in the
Allocator value, so independent tests do not share any state.
*/
package alloctest

import (
	"errors"
	"fmt"

	"github.com/npillmayer/dvector/avl"
	"github.com/npillmayer/dvector/segment"
)

// Allocator is an avl.Allocator with bookkeeping. Create it with New.
type Allocator[T any] struct {
	seq       int         // allocation sequence number
	failAfter int         // remaining successful allocations; <0 means unlimited
	live      map[any]int // live nodes -> sequence number
	branches  int
	leaves    int
	buffers   int
	problems  []error
}

// New creates an instrumented allocator without failure injection.
func New[T any]() *Allocator[T] {
	return &Allocator[T]{
		failAfter: -1,
		live:      make(map[any]int),
	}
}

var _ avl.Allocator[int] = (*Allocator[int])(nil)

// FailAfter lets the next n allocations succeed and every following one
// fail with avl.ErrOutOfMemory. A negative n disables failure injection.
func (a *Allocator[T]) FailAfter(n int) {
	a.failAfter = n
}

func (a *Allocator[T]) grant() error {
	if a.failAfter == 0 {
		return fmt.Errorf("%w: injected failure after %d allocations", avl.ErrOutOfMemory, a.seq)
	}
	if a.failAfter > 0 {
		a.failAfter--
	}
	a.seq++
	return nil
}

func (a *Allocator[T]) NewBranch() (*avl.Branch[T], error) {
	if err := a.grant(); err != nil {
		return nil, err
	}
	b := &avl.Branch[T]{}
	a.live[b] = a.seq
	a.branches++
	return b, nil
}

func (a *Allocator[T]) NewLeaf(seg segment.Segment[T]) (*avl.Leaf[T], error) {
	if err := a.grant(); err != nil {
		return nil, err
	}
	leaf := avl.MakeLeaf(&avl.Leaf[T]{}, seg)
	a.live[leaf] = a.seq
	a.leaves++
	return leaf, nil
}

func (a *Allocator[T]) NewBuffer(values []T, copyValues bool) (*segment.Buffer[T], error) {
	if err := a.grant(); err != nil {
		return nil, err
	}
	buf := avl.MakeBuffer(values, copyValues)
	a.buffers++
	buf.OnRelease(func(*segment.Buffer[T]) {
		a.buffers--
	})
	return buf, nil
}

func (a *Allocator[T]) Free(n avl.Node[T]) {
	if n == nil {
		a.problems = append(a.problems, errors.New("alloctest: free of nil node"))
		return
	}
	if _, ok := a.live[n]; !ok {
		a.problems = append(a.problems, fmt.Errorf("alloctest: double or foreign free of %T %p", n, n))
		return
	}
	delete(a.live, n)
	if n.IsLeaf() {
		a.leaves--
	} else {
		a.branches--
	}
}

// Allocations returns the number of successful allocations so far.
func (a *Allocator[T]) Allocations() int {
	return a.seq
}

// Live returns the number of live branches, leaves and buffers.
func (a *Allocator[T]) Live() (branches, leaves, buffers int) {
	return a.branches, a.leaves, a.buffers
}

// ID returns the allocation sequence number of a live node, or 0.
func (a *Allocator[T]) ID(n avl.Node[T]) int {
	return a.live[n]
}

// Err reports all problems detected so far, or nil.
func (a *Allocator[T]) Err() error {
	return errors.Join(a.problems...)
}

// CheckBalanced verifies that the live node and buffer counts match tree,
// i.e. that nothing has leaked. A nil tree expects no live objects at all.
func (a *Allocator[T]) CheckBalanced(tree *avl.Tree[T]) error {
	if err := a.Err(); err != nil {
		return err
	}
	var branches, leaves int
	buffers := make(map[*segment.Buffer[T]]struct{})
	tree.Walk(func(n avl.Node[T], _, _ int) bool {
		if leaf, ok := n.(*avl.Leaf[T]); ok {
			leaves++
			buffers[leaf.Segment().Buffer()] = struct{}{}
		} else {
			branches++
		}
		return true
	})
	if branches != a.branches || leaves != a.leaves || len(buffers) != a.buffers {
		return fmt.Errorf("alloctest: live objects branches=%d leaves=%d buffers=%d, tree uses %d/%d/%d",
			a.branches, a.leaves, a.buffers, branches, leaves, len(buffers))
	}
	return nil
}
