// Package model provides a deliberately simple, slice-backed model of
// oncelist's publicly observable behavior.
//
// The model is intentionally easy to audit: it keeps values in a plain slice
// and has no caches, no slots and no allocator. Property tests drive it with
// the same operations as a real list and compare the results.
package model

import (
	"slices"

	"github.com/calvinalkan/oncelist/pkg/oncelist"
)

// List mirrors the observable state of an [oncelist.List].
//
// Options are recorded only so that tests can assert they round-trip; they
// never change the model's behavior.
type List[T comparable] struct {
	Options oncelist.Options
	Values  []T
}

// New validates opts the way [oncelist.New] does and returns an empty model.
func New[T comparable](opts oncelist.Options) (*List[T], error) {
	if !opts.Cache.Valid() || !opts.Sync.Valid() {
		return nil, oncelist.ErrInvalidInput
	}

	return &List[T]{Options: opts}, nil
}

// Clone makes a deep copy so metamorphic tests can fork the exact same state.
// It preserves the nil vs empty slice distinction.
func (m *List[T]) Clone() *List[T] {
	if m == nil {
		return nil
	}

	return &List[T]{Options: m.Options, Values: slices.Clone(m.Values)}
}

// PushBack appends v.
func (m *List[T]) PushBack(v T) {
	m.Values = append(m.Values, v)
}

// Extend appends vs in order.
func (m *List[T]) Extend(vs []T) {
	m.Values = append(m.Values, vs...)
}

// Remove deletes the first value matching pred.
func (m *List[T]) Remove(pred func(T) bool) (T, bool) {
	i := slices.IndexFunc(m.Values, pred)
	if i < 0 {
		var zero T

		return zero, false
	}

	v := m.Values[i]
	m.Values = slices.Delete(m.Values, i, i+1)

	return v, true
}

// PopFront deletes the first value.
func (m *List[T]) PopFront() (T, bool) {
	return m.Remove(func(T) bool { return true })
}

// Clear deletes all values.
func (m *List[T]) Clear() {
	m.Values = nil
}

// Len returns the number of values.
func (m *List[T]) Len() int {
	return len(m.Values)
}

// IsEmpty reports whether no values are held.
func (m *List[T]) IsEmpty() bool {
	return len(m.Values) == 0
}

// Front returns the first value.
func (m *List[T]) Front() (T, bool) {
	if len(m.Values) == 0 {
		var zero T

		return zero, false
	}

	return m.Values[0], true
}

// Back returns the last value.
func (m *List[T]) Back() (T, bool) {
	if len(m.Values) == 0 {
		var zero T

		return zero, false
	}

	return m.Values[len(m.Values)-1], true
}

// Contains reports whether v is held.
func (m *List[T]) Contains(v T) bool {
	return slices.Contains(m.Values, v)
}

// Snapshot returns a copy of the values in order. An empty model yields an
// empty, non-nil slice so it compares equal to [oncelist.List.Slice].
func (m *List[T]) Snapshot() []T {
	return append(make([]T, 0, len(m.Values)), m.Values...)
}
