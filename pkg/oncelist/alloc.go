package oncelist

import "sync"

// Allocator supplies and reclaims list nodes.
//
// Allocate must return a node with a zero value and an empty successor slot.
// Deallocate receives nodes the list has already cleared; the allocator may
// reuse them for later Allocate calls.
//
// An Allocator used by a [oncecell.Shared] list, or by several lists, must be
// safe for concurrent use. All allocators in this package are.
type Allocator[T any] interface {
	Allocate() *Node[T]
	Deallocate(n *Node[T])
}

// HeapAllocator allocates every node fresh and leaves reclamation to the
// garbage collector. It is the default.
type HeapAllocator[T any] struct{}

// Allocate returns a new node.
func (HeapAllocator[T]) Allocate() *Node[T] { return new(Node[T]) }

// Deallocate is a no-op.
func (HeapAllocator[T]) Deallocate(*Node[T]) {}

// PoolAllocator recycles removed nodes through a [sync.Pool].
//
// With a recycling allocator, the pointer returned by [List.PushBack] for a
// value becomes invalid once that value is removed from the list.
type PoolAllocator[T any] struct {
	pool sync.Pool
}

// NewPoolAllocator returns an empty pool allocator.
func NewPoolAllocator[T any]() *PoolAllocator[T] {
	return &PoolAllocator[T]{
		pool: sync.Pool{New: func() any { return new(Node[T]) }},
	}
}

// Allocate returns a recycled node if one is available.
func (a *PoolAllocator[T]) Allocate() *Node[T] {
	n, _ := a.pool.Get().(*Node[T])
	if n == nil {
		n = new(Node[T])
	}

	return n
}

// Deallocate hands n back to the pool.
func (a *PoolAllocator[T]) Deallocate(n *Node[T]) {
	a.pool.Put(n)
}

// slabSize is the number of nodes carved out of one slab allocation.
const slabSize = 32

// SlabAllocator carves nodes out of fixed-size slabs and keeps a free list
// of deallocated nodes. Slabs are never returned to the runtime while any
// node of theirs is reachable.
//
// With a recycling allocator, the pointer returned by [List.PushBack] for a
// value becomes invalid once that value is removed from the list.
type SlabAllocator[T any] struct {
	mu   sync.Mutex
	slab []Node[T]
	free []*Node[T]

	slabs int
}

// NewSlabAllocator returns an allocator with no slabs yet.
func NewSlabAllocator[T any]() *SlabAllocator[T] {
	return &SlabAllocator[T]{}
}

// Allocate pops the free list or carves the next node from the current slab.
func (a *SlabAllocator[T]) Allocate() *Node[T] {
	a.mu.Lock()
	defer a.mu.Unlock()

	if last := len(a.free) - 1; last >= 0 {
		n := a.free[last]
		a.free[last] = nil
		a.free = a.free[:last]

		return n
	}

	if len(a.slab) == 0 {
		a.slab = make([]Node[T], slabSize)
		a.slabs++
	}

	n := &a.slab[0]
	a.slab = a.slab[1:]

	return n
}

// Deallocate pushes n onto the free list.
func (a *SlabAllocator[T]) Deallocate(n *Node[T]) {
	a.mu.Lock()
	a.free = append(a.free, n)
	a.mu.Unlock()
}

// Slabs returns how many slabs have been allocated so far.
func (a *SlabAllocator[T]) Slabs() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.slabs
}
