package oncelist

import "hash/maphash"

// Equal reports whether a and b hold equal values in the same order.
// Cache modes, sync modes and allocators are not compared.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like [Equal] but compares values with eq.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	ia, ib := a.Iter(), b.Iter()

	for {
		x, okA := ia.Next()
		y, okB := ib.Next()

		if okA != okB {
			return false
		}

		if !okA {
			return true
		}

		if !eq(x, y) {
			return false
		}
	}
}

// Contains reports whether v is in l.
func Contains[T comparable](l *List[T], v T) bool {
	return l.ContainsFunc(func(x T) bool { return x == v })
}

// ContainsFunc reports whether any value satisfies pred.
func (l *List[T]) ContainsFunc(pred func(T) bool) bool {
	for v := range l.All() {
		if pred(v) {
			return true
		}
	}

	return false
}

// WriteHash writes the length of l followed by every value into h, using
// elem to write a single value.
//
// Writing the length first keeps nested lists unambiguous: [[1] [2 3]] and
// [[1 2] [3]] hash differently.
func (l *List[T]) WriteHash(h *maphash.Hash, elem func(*maphash.Hash, T)) {
	vs := l.Slice()

	maphash.WriteComparable(h, len(vs))

	for _, v := range vs {
		elem(h, v)
	}
}

// Hash returns a hash of the values of l under seed. Lists that are [Equal]
// hash equally for the same seed.
func Hash[T comparable](l *List[T], seed maphash.Seed) uint64 {
	var h maphash.Hash

	h.SetSeed(seed)
	l.WriteHash(&h, func(h *maphash.Hash, v T) { maphash.WriteComparable(h, v) })

	return h.Sum64()
}
