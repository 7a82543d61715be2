package oncelist

import (
	"fmt"
	"strings"

	"github.com/calvinalkan/oncelist/pkg/oncecell"
)

// List is an append-only singly linked list built from write-once slots.
//
// Lists are created with [New] or [NewWithAllocator] and always handled by
// pointer. A List must not be copied.
type List[T any] struct {
	head oncecell.Cell[Node[T]]

	sync  oncecell.Mode
	cache cache[T]
	alloc Allocator[T]
}

// New returns an empty list backed by a [HeapAllocator].
//
// Returns [ErrInvalidInput] if opts names an unknown cache or sync mode.
func New[T any](opts Options) (*List[T], error) {
	return NewWithAllocator[T](opts, HeapAllocator[T]{})
}

// NewWithAllocator returns an empty list that takes its nodes from alloc.
//
// Returns [ErrInvalidInput] if alloc is nil or opts is invalid.
func NewWithAllocator[T any](opts Options, alloc Allocator[T]) (*List[T], error) {
	if alloc == nil {
		return nil, fmt.Errorf("%w: nil allocator", ErrInvalidInput)
	}

	err := opts.validate()
	if err != nil {
		return nil, err
	}

	return &List[T]{
		sync:  opts.Sync,
		cache: newCache[T](opts.Cache),
		alloc: alloc,
	}, nil
}

// Allocator returns the allocator the list takes nodes from.
func (l *List[T]) Allocator() Allocator[T] { return l.alloc }

// CacheMode returns the cache mode the list was created with.
func (l *List[T]) CacheMode() CacheMode { return l.cache.mode() }

// Mode returns the slot access mode the list was created with.
func (l *List[T]) Mode() oncecell.Mode { return l.sync }

// Options returns the options the list was created with.
func (l *List[T]) Options() Options {
	return Options{Cache: l.cache.mode(), Sync: l.sync}
}

// first returns the head node, or nil.
func (l *List[T]) first() *Node[T] {
	return l.head.Get(l.sync)
}

// after returns the successor of n, or nil.
func (l *List[T]) after(n *Node[T]) *Node[T] {
	return n.next.Get(l.sync)
}

// last walks to the final node, or returns nil for an empty list.
func (l *List[T]) last() *Node[T] {
	n := l.first()
	if n == nil {
		return nil
	}

	for next := l.after(n); next != nil; next = l.after(n) {
		n = next
	}

	return n
}

// Len returns the number of values in the list.
//
// O(1) when the cache mode keeps a length, O(n) otherwise. Under
// [oncecell.Shared], a cached length may briefly lag pushes that are still
// in flight.
func (l *List[T]) Len() int {
	if n, ok := l.cache.length(); ok {
		return n
	}

	n := 0
	for node := l.first(); node != nil; node = l.after(node) {
		n++
	}

	return n
}

// IsEmpty reports whether the list holds no values. O(1).
func (l *List[T]) IsEmpty() bool {
	return l.head.IsEmpty(l.sync)
}

// Front returns the first value. O(1).
func (l *List[T]) Front() (T, bool) {
	n := l.first()
	if n == nil {
		var zero T

		return zero, false
	}

	return n.value, true
}

// Back returns the last value. O(n) in every cache mode.
func (l *List[T]) Back() (T, bool) {
	n := l.last()
	if n == nil {
		var zero T

		return zero, false
	}

	return n.value, true
}

// FrontMut returns a pointer to the first value, or nil.
//
// Requires exclusive access for as long as the pointer is used.
func (l *List[T]) FrontMut() *T {
	n := l.head.GetMut()
	if n == nil {
		return nil
	}

	return &n.value
}

// BackMut returns a pointer to the last value, or nil.
//
// Requires exclusive access for as long as the pointer is used.
func (l *List[T]) BackMut() *T {
	n := l.head.GetMut()
	if n == nil {
		return nil
	}

	for next := n.next.GetMut(); next != nil; next = n.next.GetMut() {
		n = next
	}

	return &n.value
}

// Clear removes every value. Requires exclusive access.
//
// The chain is torn down one node at a time, so arbitrarily long lists do not
// need deep stacks.
func (l *List[T]) Clear() {
	n := l.head.Take()
	for n != nil {
		next := n.next.Take()
		l.free(n)
		n = next
	}

	l.cache.cleared()
	l.cache.structureChanged()
}

// Clone returns a new list with the same options, allocator and values.
//
// The clone derives its own caches; it never inherits the tail of l.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{
		sync:  l.sync,
		cache: newCache[T](l.cache.mode()),
		alloc: l.alloc,
	}

	c.Extend(l.All())

	return c
}

// Slice copies the values into a new slice in list order.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}

// String formats the list like a slice: [a b c].
func (l *List[T]) String() string {
	var b strings.Builder

	b.WriteByte('[')

	sep := ""
	for v := range l.All() {
		b.WriteString(sep)
		fmt.Fprint(&b, v)

		sep = " "
	}

	b.WriteByte(']')

	return b.String()
}

// allocate takes a node from the allocator and stores v in it.
func (l *List[T]) allocate(v T) *Node[T] {
	n := l.alloc.Allocate()
	if n == nil {
		invariant("allocator returned nil node")
	}

	if !n.next.IsEmpty(oncecell.Local) {
		invariant("allocator returned node with a successor")
	}

	n.value = v

	return n
}

// free clears n and hands it back to the allocator.
func (l *List[T]) free(n *Node[T]) {
	n.reset()
	l.alloc.Deallocate(n)
}
