package oncelist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/oncelist/pkg/oncecell"
	"github.com/calvinalkan/oncelist/pkg/oncelist"
)

func Test_New_Returns_ErrInvalidInput_When_Options_Invalid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		options oncelist.Options
	}{
		{name: "UnknownCache", options: oncelist.Options{Cache: oncelist.CacheMode(4)}},
		{name: "NegativeCache", options: oncelist.Options{Cache: oncelist.CacheMode(-1)}},
		{name: "UnknownSync", options: oncelist.Options{Sync: oncecell.Mode(2)}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			l, err := oncelist.New[int](testCase.options)
			require.ErrorIs(t, err, oncelist.ErrInvalidInput)
			assert.Nil(t, l)
		})
	}
}

func Test_NewWithAllocator_Returns_ErrInvalidInput_When_Allocator_Nil(t *testing.T) {
	t.Parallel()

	_, err := oncelist.NewWithAllocator[int](oncelist.Options{}, nil)
	require.ErrorIs(t, err, oncelist.ErrInvalidInput)
}

func Test_List_Reports_Construction_Options_When_Created(t *testing.T) {
	t.Parallel()

	for _, tc := range allOptions() {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l := newList[int](t, tc.opts)

			assert.Equal(t, tc.opts.Cache, l.CacheMode())
			assert.Equal(t, tc.opts.Sync, l.Mode())
			assert.Equal(t, tc.opts, l.Options())
			assert.IsType(t, oncelist.HeapAllocator[int]{}, l.Allocator())
		})
	}
}

func Test_ParseCacheMode_Roundtrips_String_When_Mode_Known(t *testing.T) {
	t.Parallel()

	for _, mode := range oncelist.CacheModes() {
		parsed, err := oncelist.ParseCacheMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	_, err := oncelist.ParseCacheMode("tail+len")
	require.ErrorIs(t, err, oncelist.ErrInvalidInput)
	assert.Equal(t, "CacheMode(9)", oncelist.CacheMode(9).String())
}

func Test_CacheMode_Reports_Cached_Facts_When_Queried(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		mode      oncelist.CacheMode
		cachesLen bool
		cachesTl  bool
	}{
		{mode: oncelist.NoCache},
		{mode: oncelist.WithLen, cachesLen: true},
		{mode: oncelist.WithTail, cachesTl: true},
		{mode: oncelist.WithTailLen, cachesLen: true, cachesTl: true},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.cachesLen, testCase.mode.CachesLen(), "%s CachesLen", testCase.mode)
		assert.Equal(t, testCase.cachesTl, testCase.mode.CachesTail(), "%s CachesTail", testCase.mode)
	}
}
