package oncelist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/oncelist/pkg/oncelist"
	"github.com/calvinalkan/oncelist/pkg/oncelist/internal/testutil"
)

func Test_Iter_Yields_Later_Push_When_Previously_Exhausted(t *testing.T) {
	t.Parallel()

	for _, tc := range allOptions() {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l := newList(t, tc.opts, 1)
			it := l.Iter()

			v, ok := it.Next()
			require.True(t, ok)
			assert.Equal(t, 1, v)

			_, ok = it.Next()
			require.False(t, ok, "cursor should be at the end")

			l.PushBack(2)

			v, ok = it.Next()
			require.True(t, ok, "live cursor must see the new value")
			assert.Equal(t, 2, v)

			_, ok = it.Next()
			assert.False(t, ok)
		})
	}
}

func Test_Iter_Yields_Later_Push_When_Started_On_Empty_List(t *testing.T) {
	t.Parallel()

	l := newList[int](t, oncelist.Options{Cache: oncelist.WithTail})
	it := l.Iter()

	_, ok := it.Next()
	require.False(t, ok)

	l.ExtendSlice([]int{1, 2})

	assert.Equal(t, []int{1, 2}, drain(it))
}

func Test_All_Stops_When_Consumer_Breaks(t *testing.T) {
	t.Parallel()

	l := newList(t, oncelist.Options{}, 1, 2, 3, 4)

	var got []int

	for v := range l.All() {
		got = append(got, v)
		if v == 2 {
			break
		}
	}

	assert.Equal(t, []int{1, 2}, got)
}

func Test_Enumerate_Yields_Positions_In_Order(t *testing.T) {
	t.Parallel()

	l := newList(t, oncelist.Options{}, "a", "b", "c")

	var idx []int

	var vals []string

	for i, v := range l.Enumerate() {
		idx = append(idx, i)
		vals = append(vals, v)
	}

	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"a", "b", "c"}, vals)
}

func Test_IterMut_And_Pointers_Mutate_In_Place(t *testing.T) {
	t.Parallel()

	l := newList(t, oncelist.Options{Cache: oncelist.WithLen}, 1, 2, 3)

	it := l.IterMut()
	for p := it.Next(); p != nil; p = it.Next() {
		*p *= 10
	}

	assert.Equal(t, []int{10, 20, 30}, l.Slice())

	for p := range l.Pointers() {
		*p++
	}

	assert.Equal(t, []int{11, 21, 31}, l.Slice())
	assert.Nil(t, it.Next(), "exhausted mutable cursor stays exhausted without pushes")
}

func Test_IntoIter_Empties_List_And_Frees_Every_Node(t *testing.T) {
	t.Parallel()

	for _, tc := range allOptions() {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			alloc := testutil.NewCountingAllocator[int](oncelist.NewSlabAllocator[int]())

			l, err := oncelist.NewWithAllocator[int](tc.opts, alloc)
			require.NoError(t, err)

			l.ExtendSlice([]int{1, 2, 3, 4, 5})

			seq := l.IntoIter()

			var got []int

			for v := range seq {
				got = append(got, v)
				if v == 3 {
					break
				}
			}

			assert.Equal(t, []int{1, 2, 3}, got)
			assert.True(t, l.IsEmpty(), "ranging empties the list")
			assert.Equal(t, 0, l.Len())
			assert.Equal(t, int64(0), alloc.Live(), "early stop must still free the rest")

			for range seq {
				t.Fatal("second range must yield nothing")
			}

			l.PushBack(9)
			assert.Equal(t, []int{9}, l.Slice(), "list is reusable after IntoIter")
		})
	}
}

func Test_IntoIter_Leaves_List_Intact_When_Sequence_Never_Ranged(t *testing.T) {
	t.Parallel()

	for _, tc := range allOptions() {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			alloc := testutil.NewCountingAllocator[int](oncelist.NewSlabAllocator[int]())

			l, err := oncelist.NewWithAllocator[int](tc.opts, alloc)
			require.NoError(t, err)

			l.ExtendSlice([]int{1, 2, 3})

			_ = l.IntoIter()

			assert.Equal(t, []int{1, 2, 3}, l.Slice())
			assert.Equal(t, 3, l.Len())
			assert.Equal(t, int64(l.Len()), alloc.Live(), "no node may be stranded outside the list")

			l.Clear()
			assert.Equal(t, int64(0), alloc.Live())
		})
	}
}
