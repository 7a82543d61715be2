package oncelist

import (
	"iter"
	"slices"

	"github.com/calvinalkan/oncelist/pkg/oncecell"
)

// slot is the write-once link a node is committed into.
type slot[T any] = oncecell.Cell[Node[T]]

// startSlot returns where an append should start probing: the cached tail's
// successor slot if it is still empty, the head slot otherwise.
func (l *List[T]) startSlot() *slot[T] {
	if t := l.cache.tail(); t != nil && t.next.IsEmpty(l.sync) {
		return &t.next
	}

	return &l.head
}

// insert commits n into the first empty slot at or after s.
//
// Losing a race on one slot moves the probe to the winner's successor slot;
// n is never dropped.
func (l *List[T]) insert(s *slot[T], n *Node[T]) *Node[T] {
	for {
		winner, ok := s.TrySet(l.sync, n)
		if ok {
			l.cache.pushed(n)

			return n
		}

		s = &winner.next
	}
}

// PushBack appends v and returns a pointer to the stored value.
//
// Safe for concurrent use under [oncecell.Shared]. The pointer stays valid
// until the value is removed; with a recycling [Allocator] it must not be
// used afterwards.
func (l *List[T]) PushBack(v T) *T {
	n := l.insert(l.startSlot(), l.allocate(v))

	return &n.value
}

// Push is an alias for [List.PushBack].
func (l *List[T]) Push(v T) *T {
	return l.PushBack(v)
}

// Extend appends every value of seq in order.
//
// The start slot is resolved once; each later value probes from the slot
// after the previous insert. Values pushed concurrently by other goroutines
// may interleave with seq's values, but seq's own order is kept.
//
// seq must not be a live iterator over l itself: it would never end.
func (l *List[T]) Extend(seq iter.Seq[T]) {
	s := l.startSlot()
	for v := range seq {
		n := l.insert(s, l.allocate(v))
		s = &n.next
	}
}

// ExtendSlice appends vs in order. See [List.Extend].
func (l *List[T]) ExtendSlice(vs []T) {
	s := l.startSlot()
	for _, v := range vs {
		n := l.insert(s, l.allocate(v))
		s = &n.next
	}
}

// Collect builds a new list from seq.
//
// Returns [ErrInvalidInput] for invalid opts.
func Collect[T any](seq iter.Seq[T], opts Options) (*List[T], error) {
	l, err := New[T](opts)
	if err != nil {
		return nil, err
	}

	l.build(seq)

	return l, nil
}

// FromSlice builds a new list holding vs.
//
// Returns [ErrInvalidInput] for invalid opts.
func FromSlice[T any](vs []T, opts Options) (*List[T], error) {
	return Collect(slices.Values(vs), opts)
}

// build fills a list nobody else can see yet. Every slot must accept on the
// first try.
func (l *List[T]) build(seq iter.Seq[T]) {
	s := &l.head
	for v := range seq {
		n := l.allocate(v)
		if _, ok := s.TrySet(l.sync, n); !ok {
			invariant("contention while building an unshared list")
		}

		l.cache.pushed(n)
		s = &n.next
	}
}
