package testutil

import (
	"sync/atomic"
	"testing"

	"github.com/calvinalkan/oncelist/pkg/oncelist"
	"github.com/calvinalkan/oncelist/pkg/oncelist/model"
)

// Harness wires together a real list and the slice model.
//
// The real list takes its nodes from a counting slab allocator so every state
// comparison can also check that no node leaked or was freed twice.
type Harness struct {
	TB    testing.TB
	Real  *oncelist.List[int]
	Model *model.List[int]
	Alloc *CountingAllocator[int]
}

// NewHarness creates an empty real list and model with the same options.
func NewHarness(tb testing.TB, opts oncelist.Options) *Harness {
	tb.Helper()

	alloc := NewCountingAllocator[int](oncelist.NewSlabAllocator[int]())

	list, err := oncelist.NewWithAllocator[int](opts, alloc)
	if err != nil {
		tb.Fatalf("oncelist.NewWithAllocator(%+v): %v", opts, err)
	}

	m, err := model.New[int](opts)
	if err != nil {
		tb.Fatalf("model.New(%+v): %v", opts, err)
	}

	return &Harness{
		TB:    tb,
		Real:  list,
		Model: m,
		Alloc: alloc,
	}
}

// Apply runs the operation against the real list first, then the model.
func (h *Harness) Apply(op Op) (Result, Result) {
	realRes := op.ApplyReal(h)
	modelRes := op.ApplyModel(h)

	return modelRes, realRes
}

// CountingAllocator wraps another allocator and counts nodes in and out.
type CountingAllocator[T any] struct {
	inner oncelist.Allocator[T]

	allocated   atomic.Int64
	deallocated atomic.Int64
}

// NewCountingAllocator wraps inner.
func NewCountingAllocator[T any](inner oncelist.Allocator[T]) *CountingAllocator[T] {
	return &CountingAllocator[T]{inner: inner}
}

// Allocate counts and forwards.
func (a *CountingAllocator[T]) Allocate() *oncelist.Node[T] {
	a.allocated.Add(1)

	return a.inner.Allocate()
}

// Deallocate counts and forwards.
func (a *CountingAllocator[T]) Deallocate(n *oncelist.Node[T]) {
	a.deallocated.Add(1)
	a.inner.Deallocate(n)
}

// Allocated returns how many nodes were handed out.
func (a *CountingAllocator[T]) Allocated() int64 { return a.allocated.Load() }

// Deallocated returns how many nodes were given back.
func (a *CountingAllocator[T]) Deallocated() int64 { return a.deallocated.Load() }

// Live returns Allocated minus Deallocated.
func (a *CountingAllocator[T]) Live() int64 {
	return a.allocated.Load() - a.deallocated.Load()
}
