// Package oncecell provides a write-once pointer cell.
//
// A [Cell] starts empty, is filled at most once through [Cell.TrySet], and can
// be read any number of times afterwards. The only way back to empty is
// [Cell.Take], which requires exclusive access to the cell.
//
// # Modes
//
// Every shared-access operation takes a [Mode]:
//   - [Local]: plain loads and stores. The cell must only be touched by one
//     goroutine at a time (or under external synchronization).
//   - [Shared]: atomic loads and compare-and-swap. Any number of goroutines
//     may call [Cell.Get] and [Cell.TrySet] concurrently.
//
// The mode is a property of the owning data structure, not of the call site:
// mixing modes on one cell is only valid if the caller establishes a
// happens-before edge between them.
package oncecell

import (
	"sync/atomic"
	"unsafe"
)

// Cell holds at most one *T.
//
// The zero value is an empty cell ready to use. A Cell must not be copied
// after first use.
type Cell[T any] struct {
	_ noCopy

	p unsafe.Pointer // *T
}

// Get returns the committed value, or nil if the cell is empty.
//
// Get never blocks and never mutates the cell.
func (c *Cell[T]) Get(m Mode) *T {
	if m == Shared {
		return (*T)(atomic.LoadPointer(&c.p))
	}

	return (*T)(c.p)
}

// GetMut returns the committed value for in-place mutation.
//
// The caller must hold exclusive access to the structure owning the cell.
func (c *Cell[T]) GetMut() *T {
	return (*T)(c.p)
}

// TrySet commits v if the cell is empty.
//
// On success it returns (v, true). If the cell is already full it returns
// the existing value and false; v was not stored and still belongs to the
// caller, who may offer it to another cell. Under [Shared] exactly one of
// any number of racing callers succeeds.
//
// TrySet never retries internally. v must not be nil.
func (c *Cell[T]) TrySet(m Mode, v *T) (*T, bool) {
	if m == Shared {
		if atomic.CompareAndSwapPointer(&c.p, nil, unsafe.Pointer(v)) {
			return v, true
		}

		return (*T)(atomic.LoadPointer(&c.p)), false
	}

	if c.p != nil {
		return (*T)(c.p), false
	}

	c.p = unsafe.Pointer(v)

	return v, true
}

// Take empties the cell and returns what it held (nil if it was empty).
//
// The caller must hold exclusive access to the structure owning the cell.
func (c *Cell[T]) Take() *T {
	v := (*T)(c.p)
	c.p = nil

	return v
}

// IsEmpty reports whether the cell holds no value.
func (c *Cell[T]) IsEmpty(m Mode) bool {
	return c.Get(m) == nil
}

// noCopy triggers go vet's copylocks check for structs embedding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
