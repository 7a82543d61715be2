package oncelist

import "sync/atomic"

// cache is the per-list strategy behind a [CacheMode].
//
// The engine calls the hooks at fixed points:
//   - pushed after a node was committed into a slot
//   - structureChanged before any node is taken out of the chain
//   - removed after a node was spliced out
//   - cleared after the whole chain was torn down
//
// All hooks may run concurrently with pushed under [oncecell.Shared], except
// the ones reached from exclusive methods.
type cache[T any] interface {
	mode() CacheMode

	// length returns the cached count, if this strategy keeps one.
	length() (int, bool)

	// tail returns the last appended node, or nil. The node's next slot is
	// not guaranteed to be empty; callers must check before trusting it.
	tail() *Node[T]

	pushed(n *Node[T])
	removed()
	structureChanged()
	cleared()
}

func newCache[T any](m CacheMode) cache[T] {
	switch m {
	case NoCache:
		return noCache[T]{}
	case WithLen:
		return &lenCache[T]{}
	case WithTail:
		return &tailCache[T]{}
	case WithTailLen:
		return &tailLenCache[T]{}
	}

	invariant("cache mode %s passed validation", m)

	return nil
}

type noCache[T any] struct{}

func (noCache[T]) mode() CacheMode     { return NoCache }
func (noCache[T]) length() (int, bool) { return 0, false }
func (noCache[T]) tail() *Node[T]      { return nil }
func (noCache[T]) pushed(*Node[T])     {}
func (noCache[T]) removed()            {}
func (noCache[T]) structureChanged()   {}
func (noCache[T]) cleared()            {}

type lenCache[T any] struct {
	n atomic.Int64
}

func (*lenCache[T]) mode() CacheMode       { return WithLen }
func (c *lenCache[T]) length() (int, bool) { return int(c.n.Load()), true }
func (*lenCache[T]) tail() *Node[T]        { return nil }
func (c *lenCache[T]) pushed(*Node[T])     { c.n.Add(1) }
func (c *lenCache[T]) removed()            { c.n.Add(-1) }

// The counter is adjusted explicitly by removed, so a splice leaves it valid.
func (*lenCache[T]) structureChanged() {}
func (c *lenCache[T]) cleared()        { c.n.Store(0) }

type tailCache[T any] struct {
	last atomic.Pointer[Node[T]]
}

func (*tailCache[T]) mode() CacheMode     { return WithTail }
func (*tailCache[T]) length() (int, bool) { return 0, false }
func (c *tailCache[T]) tail() *Node[T]    { return c.last.Load() }
func (c *tailCache[T]) pushed(n *Node[T]) { c.last.Store(n) }
func (*tailCache[T]) removed()            {}
func (c *tailCache[T]) structureChanged() { c.last.Store(nil) }
func (c *tailCache[T]) cleared()          { c.last.Store(nil) }

type tailLenCache[T any] struct {
	last atomic.Pointer[Node[T]]
	n    atomic.Int64
}

func (*tailLenCache[T]) mode() CacheMode       { return WithTailLen }
func (c *tailLenCache[T]) length() (int, bool) { return int(c.n.Load()), true }
func (c *tailLenCache[T]) tail() *Node[T]      { return c.last.Load() }

func (c *tailLenCache[T]) pushed(n *Node[T]) {
	c.n.Add(1)
	c.last.Store(n)
}

func (c *tailLenCache[T]) removed()          { c.n.Add(-1) }
func (c *tailLenCache[T]) structureChanged() { c.last.Store(nil) }

func (c *tailLenCache[T]) cleared() {
	c.n.Store(0)
	c.last.Store(nil)
}
