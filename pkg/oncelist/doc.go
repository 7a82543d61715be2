// Package oncelist provides an append-only singly linked list whose appends
// only need shared access.
//
// Every link of the list is a write-once slot ([oncecell.Cell]). Appending a
// value means allocating a node and committing it into the first empty slot
// found by walking forward from the head (or from a cached tail). Because a
// slot can be filled only once, appenders never overwrite each other: the loser
// of a race simply moves one slot forward and tries again.
//
// # Basic Usage
//
//	list, err := oncelist.New[int](oncelist.Options{})
//	if err != nil {
//	    // only ErrInvalidInput for bad options
//	}
//
//	list.PushBack(1)
//	list.ExtendSlice([]int{2, 3})
//
//	for v := range list.All() {
//	    fmt.Println(v)
//	}
//
//	v, ok := list.Remove(func(v int) bool { return v == 2 })
//
// # Cache Modes
//
// [Options.Cache] trades memory for speed without changing behavior:
//   - [NoCache]: PushBack O(n), Len O(n). The default.
//   - [WithLen]: Len O(1).
//   - [WithTail]: PushBack and Extend start at the cached insertion slot,
//     amortized O(1). Back stays O(n).
//   - [WithTailLen]: both.
//
// The tail cache is speculative. It is checked before use and discarded on
// every removal, so it can only ever cost one wasted check.
//
// # Concurrency
//
// [Options.Sync] selects the slot backing:
//   - [oncecell.Local]: the list must be used from one goroutine at a time.
//   - [oncecell.Shared]: PushBack, Extend and all read-only methods are safe
//     for concurrent use. Relative order between concurrent appenders is
//     unspecified; each appender's own values keep their order.
//
// Methods documented as requiring exclusive access (Remove, PopFront, Clear,
// IterMut, Pointers, FrontMut, BackMut, IntoIter) must not overlap any other
// call on the same list, in either mode. The list does not lock; the caller's
// ownership discipline provides the exclusion.
//
// Iterators are live cursors, not snapshots: an [Iter] that reported the end
// of the list will yield values pushed after that point.
package oncelist
