package oncelist

import (
	"fmt"

	"github.com/calvinalkan/oncelist/pkg/oncecell"
)

// CacheMode selects which derived facts a [List] caches.
//
// The mode changes operation complexity only. Every mode observes the same
// sequence of values for the same sequence of operations.
type CacheMode int

const (
	// NoCache caches nothing. PushBack walks from the head; Len counts.
	// This is the default.
	NoCache CacheMode = iota

	// WithLen keeps an exact element count so Len is O(1).
	WithLen

	// WithTail remembers the node that was last appended so PushBack and
	// Extend can start there instead of at the head.
	WithTail

	// WithTailLen combines [WithTail] and [WithLen].
	WithTailLen
)

var cacheModeNames = [...]string{
	NoCache:     "none",
	WithLen:     "len",
	WithTail:    "tail",
	WithTailLen: "tail-len",
}

// String returns the mode name accepted by [ParseCacheMode].
func (c CacheMode) String() string {
	if !c.Valid() {
		return fmt.Sprintf("CacheMode(%d)", int(c))
	}

	return cacheModeNames[c]
}

// Valid reports whether c is one of the declared modes.
func (c CacheMode) Valid() bool {
	return c >= NoCache && c <= WithTailLen
}

// CachesLen reports whether lists in this mode keep a length counter.
func (c CacheMode) CachesLen() bool {
	return c == WithLen || c == WithTailLen
}

// CachesTail reports whether lists in this mode remember their tail.
func (c CacheMode) CachesTail() bool {
	return c == WithTail || c == WithTailLen
}

// ParseCacheMode parses a mode name as returned by [CacheMode.String].
func ParseCacheMode(s string) (CacheMode, error) {
	for i, name := range cacheModeNames {
		if name == s {
			return CacheMode(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown cache mode %q (want none, len, tail or tail-len)", ErrInvalidInput, s)
}

// CacheModes returns every declared mode in declaration order.
func CacheModes() []CacheMode {
	return []CacheMode{NoCache, WithLen, WithTail, WithTailLen}
}

// Options configures a new [List].
//
// The zero value is a single-goroutine list without caches.
type Options struct {
	// Cache selects the cached facts. Defaults to [NoCache].
	Cache CacheMode

	// Sync selects how slots are accessed.
	//
	// [oncecell.Local] lists must be used by one goroutine at a time.
	// [oncecell.Shared] lists accept concurrent PushBack, Extend and reads.
	// Defaults to [oncecell.Local].
	Sync oncecell.Mode
}

func (o Options) validate() error {
	if !o.Cache.Valid() {
		return fmt.Errorf("%w: cache mode %s", ErrInvalidInput, o.Cache)
	}

	if !o.Sync.Valid() {
		return fmt.Errorf("%w: sync mode %s", ErrInvalidInput, o.Sync)
	}

	return nil
}
