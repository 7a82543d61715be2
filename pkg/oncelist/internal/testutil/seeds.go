package testutil

// Seed bundles a human-readable name with seed bytes.
//
// Curated seed sequences are hand-crafted to exercise specific scenarios that
// random fuzzing might take a long time to discover. Each seed produces a
// deterministic sequence of operations when fed to OpGenerator with
// DefaultOpGenConfig.
type Seed struct {
	Name string
	Data []byte
}

// CuratedSeeds returns all curated seeds with descriptive names.
func CuratedSeeds() []Seed {
	return []Seed{
		{Name: "push_then_query", Data: SeedPushThenQuery()},
		{Name: "splice_first_middle_last", Data: SeedSpliceFirstMiddleLast()},
		{Name: "pop_until_empty", Data: SeedPopUntilEmpty()},
		{Name: "clear_then_reuse", Data: SeedClearThenReuse()},
		{Name: "duplicates_remove_first", Data: SeedDuplicatesRemoveFirst()},
		{Name: "remove_last_then_extend", Data: SeedRemoveLastThenExtend()},
	}
}

func defaultSeedConfig() *OpGenConfig {
	cfg := DefaultOpGenConfig()

	return &cfg
}

// SeedPushThenQuery pushes a few values and queries every observable.
func SeedPushThenQuery() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		Push(1).
		Push(2).
		Push(3).
		Len().
		Front().
		Back().
		Contains(2).
		Contains(9).
		Bytes()
}

// SeedSpliceFirstMiddleLast removes from every position and pushes after
// each splice, so a stale tail would misplace the next value.
func SeedSpliceFirstMiddleLast() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		Extend(1, 2, 3, 4).
		Push(5).
		Remove(1). // first
		Push(6).
		Remove(3). // middle
		Push(7).
		Remove(7). // last
		Push(8).
		Back().
		Len().
		Bytes()
}

// SeedPopUntilEmpty drains the list past empty.
func SeedPopUntilEmpty() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		Extend(4, 5).
		Pop().
		Pop().
		Pop(). // empty
		Front().
		Len().
		Push(6).
		Front().
		Bytes()
}

// SeedClearThenReuse clears a populated list and fills it again.
func SeedClearThenReuse() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		Extend(1, 2, 3).
		Clear().
		Len().
		Back().
		Push(4).
		Extend(5, 6).
		Back().
		Len().
		Bytes()
}

// SeedDuplicatesRemoveFirst removes a repeated value one occurrence at a time.
func SeedDuplicatesRemoveFirst() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		Extend(7, 1, 7, 2).
		Push(7).
		Remove(7).
		Front().
		Remove(7).
		Remove(7).
		Remove(7). // miss
		Contains(7).
		Bytes()
}

// SeedRemoveLastThenExtend removes the tail node and extends immediately.
func SeedRemoveLastThenExtend() []byte {
	return NewSeedBuilder(defaultSeedConfig()).
		Push(1).
		Push(2).
		Remove(2).
		Extend(3, 4).
		Remove(4).
		Extend(5).
		Back().
		Len().
		Bytes()
}
