package oncelist

import (
	"errors"
	"fmt"
)

// Sentinel errors returned or raised by oncelist.
//
// Callers should use [errors.Is] to check error types.
var (
	// ErrInvalidInput indicates invalid constructor arguments.
	//
	// Common causes: unknown [CacheMode] or [oncecell.Mode], nil [Allocator].
	//
	// This is a programming error.
	ErrInvalidInput = errors.New("oncelist: invalid input")

	// ErrInvariantViolated is the error wrapped by panics raised when the list
	// observes an impossible internal state, such as a slot that was just
	// filled reading back empty, or contention on a list nobody else can see.
	//
	// It is never returned. Seeing it means the list itself is broken.
	ErrInvariantViolated = errors.New("oncelist: invariant violated")
)

// invariant panics with an error wrapping [ErrInvariantViolated].
func invariant(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrInvariantViolated, fmt.Sprintf(format, args...)))
}
