package oncelist

import "iter"

// Iter is a live cursor over a list.
//
// An Iter remembers the slot it will read next, not a snapshot. After Next
// reports the end of the list, a later push makes Next return the new value.
// Under [oncecell.Shared] an Iter may run concurrently with appenders.
//
// An Iter must not be used across a call to an exclusive method of its list.
type Iter[T any] struct {
	l    *List[T]
	next *slot[T]
}

// Iter returns a cursor positioned before the first value.
func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{l: l, next: &l.head}
}

// Next returns the next value, or false if the cursor is at the end.
func (it *Iter[T]) Next() (T, bool) {
	n := it.next.Get(it.l.sync)
	if n == nil {
		var zero T

		return zero, false
	}

	it.next = &n.next

	return n.value, true
}

// IterMut is a cursor yielding pointers for in-place mutation.
type IterMut[T any] struct {
	next *slot[T]
}

// IterMut returns a mutable cursor positioned before the first value.
//
// Requires exclusive access for as long as the cursor or any pointer it
// returned is in use.
func (l *List[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{next: &l.head}
}

// Next returns a pointer to the next value, or nil at the end.
func (it *IterMut[T]) Next() *T {
	n := it.next.GetMut()
	if n == nil {
		return nil
	}

	it.next = &n.next

	return &n.value
}

// All returns a live sequence over the values.
//
// Like [Iter], it reads slots as it goes and sees values pushed before it
// reaches the end.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.first(); n != nil; n = l.after(n) {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Enumerate returns the values paired with their zero-based position.
func (l *List[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.first(); n != nil; n = l.after(n) {
			if !yield(i, n.value) {
				return
			}

			i++
		}
	}
}

// Pointers returns a sequence of pointers to the stored values.
//
// Requires exclusive access for the duration of the range loop.
func (l *List[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := l.head.GetMut(); n != nil; n = n.next.GetMut() {
			if !yield(&n.value) {
				return
			}
		}
	}
}

// IntoIter returns a single-use sequence that empties the list and yields
// the values it held. Requires exclusive access from the first range until
// the loop ends.
//
// The chain is taken when the sequence is first ranged, not when IntoIter is
// called: a sequence that is never ranged leaves the list untouched. Nodes are
// released one at a time while ranging, and stopping early releases the rest.
// Ranging the sequence a second time yields nothing.
func (l *List[T]) IntoIter() iter.Seq[T] {
	used := false

	return func(yield func(T) bool) {
		if used {
			return
		}

		used = true

		n := l.head.Take()

		l.cache.cleared()
		l.cache.structureChanged()

		for n != nil {
			next := n.next.Take()
			v := n.value
			l.free(n)
			n = next

			if !yield(v) {
				break
			}
		}

		for n != nil {
			next := n.next.Take()
			l.free(n)
			n = next
		}
	}
}
