package oncecell

import (
	"errors"
	"fmt"
)

// ErrUnknownMode is returned by [ParseMode] for unrecognized names.
var ErrUnknownMode = errors.New("oncecell: unknown mode")

// Mode selects how a [Cell] synchronizes shared-access operations.
type Mode uint8

const (
	// Local uses plain memory accesses. This is the default and fastest mode,
	// for cells owned by a single goroutine.
	Local Mode = iota

	// Shared uses atomic loads and compare-and-swap so that concurrent
	// Get and TrySet calls are safe.
	Shared
)

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m == Local || m == Shared
}

func (m Mode) String() string {
	switch m {
	case Local:
		return "local"
	case Shared:
		return "shared"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses the names produced by [Mode.String].
func ParseMode(s string) (Mode, error) {
	switch s {
	case "local":
		return Local, nil
	case "shared":
		return Shared, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
