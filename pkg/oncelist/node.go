package oncelist

import "github.com/calvinalkan/oncelist/pkg/oncecell"

// Node is one link of a [List]: a value plus the write-once slot holding the
// rest of the chain.
//
// Nodes are opaque outside this package. They are only exposed so that custom
// [Allocator] implementations can hand them out and take them back.
type Node[T any] struct {
	next  oncecell.Cell[Node[T]]
	value T
}

// reset clears n so it holds neither a value nor a successor.
//
// The successor slot must already have been emptied by the caller: reset
// drops the value only, it never tears down a chain.
func (n *Node[T]) reset() {
	var zero T

	n.value = zero
	if n.next.Take() != nil {
		invariant("reset of node that still owns a successor")
	}
}
