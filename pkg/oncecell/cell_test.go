package oncecell_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/oncelist/pkg/oncecell"
)

var modes = []oncecell.Mode{oncecell.Local, oncecell.Shared}

func Test_Cell_Get_Returns_Nil_When_Empty(t *testing.T) {
	t.Parallel()

	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			t.Parallel()

			var cell oncecell.Cell[int]

			assert.Nil(t, cell.Get(mode), "fresh cell should be empty")
			assert.True(t, cell.IsEmpty(mode), "fresh cell should report empty")
		})
	}
}

func Test_Cell_TrySet_Commits_Value_When_Empty(t *testing.T) {
	t.Parallel()

	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			t.Parallel()

			var cell oncecell.Cell[int]

			v := 7
			got, ok := cell.TrySet(mode, &v)
			require.True(t, ok, "TrySet on an empty cell must succeed")
			assert.Same(t, &v, got, "TrySet should return the committed pointer")
			assert.Same(t, &v, cell.Get(mode), "Get should observe the committed pointer")
		})
	}
}

func Test_Cell_TrySet_Returns_Existing_And_Keeps_Rejected_When_Full(t *testing.T) {
	t.Parallel()

	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			t.Parallel()

			var cell oncecell.Cell[int]

			first, second := 1, 2
			_, ok := cell.TrySet(mode, &first)
			require.True(t, ok)

			got, ok := cell.TrySet(mode, &second)
			require.False(t, ok, "second TrySet must be rejected")
			assert.Same(t, &first, got, "rejection should report the winning value")
			assert.Equal(t, 2, second, "rejected value must be untouched")
			assert.Same(t, &first, cell.Get(mode), "cell must keep the first value")
		})
	}
}

func Test_Cell_Take_Empties_Cell_When_Full(t *testing.T) {
	t.Parallel()

	var cell oncecell.Cell[string]

	v := "x"
	_, ok := cell.TrySet(oncecell.Local, &v)
	require.True(t, ok)

	assert.Same(t, &v, cell.Take(), "Take should return the committed value")
	assert.Nil(t, cell.Take(), "second Take should find the cell empty")

	w := "y"
	_, ok = cell.TrySet(oncecell.Local, &w)
	assert.True(t, ok, "a taken cell accepts a new value")
}

func Test_Cell_GetMut_Allows_In_Place_Mutation(t *testing.T) {
	t.Parallel()

	var cell oncecell.Cell[int]

	v := 1
	cell.TrySet(oncecell.Local, &v)

	*cell.GetMut() = 5

	assert.Equal(t, 5, *cell.Get(oncecell.Local))
}

func Test_Cell_TrySet_Has_Exactly_One_Winner_When_Goroutines_Race(t *testing.T) {
	t.Parallel()

	const racers = 64

	for round := range 50 {
		var (
			cell  oncecell.Cell[int]
			wg    sync.WaitGroup
			start = make(chan struct{})
			wins  = make([]bool, racers)
			seen  = make([]*int, racers)
		)

		values := make([]int, racers)
		for i := range values {
			values[i] = i
		}

		for i := range racers {
			wg.Add(1)

			go func() {
				defer wg.Done()

				<-start

				seen[i], wins[i] = cell.TrySet(oncecell.Shared, &values[i])
			}()
		}

		close(start)
		wg.Wait()

		winner := cell.Get(oncecell.Shared)
		require.NotNil(t, winner, "round %d: someone must win", round)

		winCount := 0

		for i := range racers {
			if wins[i] {
				winCount++

				assert.Same(t, &values[i], winner, "round %d: winner pointer mismatch", round)
			}

			assert.Same(t, winner, seen[i], "round %d: racer %d must observe the winner", round, i)
			assert.Equal(t, i, values[i], "round %d: losing value %d must be returned intact", round, i)
		}

		assert.Equal(t, 1, winCount, "round %d: exactly one TrySet must win", round)
	}
}

func Test_ParseMode_Roundtrips_String_When_Mode_Is_Known(t *testing.T) {
	t.Parallel()

	for _, mode := range modes {
		parsed, err := oncecell.ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
		assert.True(t, parsed.Valid())
	}

	_, err := oncecell.ParseMode("atomic")
	require.ErrorIs(t, err, oncecell.ErrUnknownMode)
	assert.False(t, oncecell.Mode(9).Valid())
	assert.Equal(t, "Mode(9)", oncecell.Mode(9).String())
}
