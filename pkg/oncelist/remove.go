package oncelist

// Remove takes the first value matching pred out of the list and returns it.
// Returns false if no value matches.
//
// Requires exclusive access. Any cached tail is discarded even when nothing
// matches.
func (l *List[T]) Remove(pred func(T) bool) (T, bool) {
	n := l.detach(func(v *T) bool { return pred(*v) })
	if n == nil {
		var zero T

		return zero, false
	}

	v := n.value
	l.free(n)

	return v, true
}

// PopFront removes and returns the first value. O(1).
//
// Requires exclusive access.
func (l *List[T]) PopFront() (T, bool) {
	return l.Remove(func(T) bool { return true })
}

// RemoveAs removes the first value for which match reports true and returns
// the projection match produced for it.
//
// match sees each value in order until it accepts one. It must not keep the
// pointer it is given: the node behind it is recycled before RemoveAs returns.
//
// Requires exclusive access.
func RemoveAs[T, U any](l *List[T], match func(*T) (U, bool)) (U, bool) {
	var out U

	n := l.detach(func(v *T) bool {
		u, ok := match(v)
		if ok {
			out = u
		}

		return ok
	})
	if n == nil {
		return out, false
	}

	l.free(n)

	return out, true
}

// detach unlinks the first node whose value satisfies match and returns it
// with an empty successor slot. The caller owns the node afterwards.
func (l *List[T]) detach(match func(*T) bool) *Node[T] {
	l.cache.structureChanged()

	s := &l.head
	for n := s.GetMut(); n != nil; n = s.GetMut() {
		if !match(&n.value) {
			s = &n.next

			continue
		}

		if s.Take() != n {
			invariant("slot changed under exclusive access")
		}

		if rest := n.next.Take(); rest != nil {
			if _, ok := s.TrySet(l.sync, rest); !ok {
				invariant("emptied slot rejected the spliced chain")
			}
		}

		l.cache.removed()

		return n
	}

	return nil
}
