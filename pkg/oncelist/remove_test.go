package oncelist_test

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/oncelist/pkg/oncelist"
)

func Test_Remove_Splices_And_Later_Push_Lands_At_End_When_Any_Position(t *testing.T) {
	t.Parallel()

	positions := []struct {
		name   string
		target int
		want   []int
	}{
		{name: "first", target: 1, want: []int{2, 3, 4, 5}},
		{name: "middle", target: 3, want: []int{1, 2, 4, 5}},
		{name: "last", target: 4, want: []int{1, 2, 3, 5}},
	}

	for _, tc := range allOptions() {
		for _, pos := range positions {
			t.Run(tc.name+"/"+pos.name, func(t *testing.T) {
				t.Parallel()

				l := newList(t, tc.opts, 1, 2, 3, 4)

				v, ok := l.Remove(func(v int) bool { return v == pos.target })
				require.True(t, ok)
				assert.Equal(t, pos.target, v)

				l.PushBack(5)

				diff := cmp.Diff(pos.want, l.Slice())
				assert.Empty(t, diff, "push after splice must append at the end")
				assert.Equal(t, 4, l.Len())
			})
		}
	}
}

func Test_Remove_Returns_False_And_Keeps_List_When_No_Match(t *testing.T) {
	t.Parallel()

	for _, tc := range allOptions() {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l := newList(t, tc.opts, 1, 2)

			v, ok := l.Remove(func(v int) bool { return v > 10 })
			assert.False(t, ok)
			assert.Equal(t, 0, v)
			assert.Equal(t, []int{1, 2}, l.Slice())

			l.PushBack(3)
			assert.Equal(t, []int{1, 2, 3}, l.Slice(), "a missed remove must leave appends correct")
		})
	}
}

func Test_PopFront_Returns_Values_In_Order_Until_Empty(t *testing.T) {
	t.Parallel()

	for _, tc := range allOptions() {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l := newList(t, tc.opts, "a", "b", "c")

			var got []string

			for {
				v, ok := l.PopFront()
				if !ok {
					break
				}

				got = append(got, v)
			}

			assert.Equal(t, []string{"a", "b", "c"}, got)
			assert.True(t, l.IsEmpty())
			assert.Equal(t, 0, l.Len())

			l.PushBack("d")
			back, _ := l.Back()
			assert.Equal(t, "d", back)
		})
	}
}

func Test_Remove_Uses_Value_Predicate_On_First_Match_When_Duplicates(t *testing.T) {
	t.Parallel()

	type item struct {
		key string
		seq int
	}

	l := newList(t, oncelist.Options{Cache: oncelist.WithTailLen},
		item{"x", 1}, item{"y", 2}, item{"x", 3})

	v, ok := l.Remove(func(it item) bool { return it.key == "x" })
	require.True(t, ok)
	assert.Equal(t, 1, v.seq, "the first matching value is removed")

	v, ok = l.Remove(func(it item) bool { return it.key == "x" })
	require.True(t, ok)
	assert.Equal(t, 3, v.seq)

	assert.Equal(t, 1, l.Len())
}

func Test_RemoveAs_Returns_Projection_When_Matcher_Accepts(t *testing.T) {
	t.Parallel()

	l := newList(t, oncelist.Options{Cache: oncelist.WithLen}, "1", "x", "22")

	n, ok := oncelist.RemoveAs(l, func(s *string) (int, bool) {
		v, err := strconv.Atoi(*s)

		return v, err == nil && v > 9
	})
	require.True(t, ok)
	assert.Equal(t, 22, n)
	assert.Equal(t, []string{"1", "x"}, l.Slice())

	_, ok = oncelist.RemoveAs(l, func(s *string) (int, bool) { return 0, *s == "zzz" })
	assert.False(t, ok)
	assert.Equal(t, 2, l.Len())
}

func Test_PushBack_Appends_At_End_When_Tail_Removed_Repeatedly(t *testing.T) {
	t.Parallel()

	for _, tc := range allOptions() {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l := newList[int](t, tc.opts)

			var want []int

			for i := range 50 {
				l.PushBack(i)
				want = append(want, i)

				if i%3 == 2 {
					last := want[len(want)-1]
					want = want[:len(want)-1]

					_, ok := l.Remove(func(v int) bool { return v == last })
					require.True(t, ok)
				}
			}

			assert.Empty(t, cmp.Diff(want, l.Slice()))
		})
	}
}
