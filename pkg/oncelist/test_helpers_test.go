package oncelist_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/oncelist/pkg/oncecell"
	"github.com/calvinalkan/oncelist/pkg/oncelist"
)

type namedOptions struct {
	name string
	opts oncelist.Options
}

// allOptions returns every cache mode crossed with every sync mode.
func allOptions() []namedOptions {
	var out []namedOptions

	for _, sync := range []oncecell.Mode{oncecell.Local, oncecell.Shared} {
		for _, cache := range oncelist.CacheModes() {
			out = append(out, namedOptions{
				name: fmt.Sprintf("%s/%s", cache, sync),
				opts: oncelist.Options{Cache: cache, Sync: sync},
			})
		}
	}

	return out
}

func newList[T any](t *testing.T, opts oncelist.Options, values ...T) *oncelist.List[T] {
	t.Helper()

	l, err := oncelist.New[T](opts)
	require.NoError(t, err, "New(%+v)", opts)

	l.ExtendSlice(values)

	return l
}

func drain[T any](it *oncelist.Iter[T]) []T {
	out := []T{}

	for {
		v, ok := it.Next()
		if !ok {
			return out
		}

		out = append(out, v)
	}
}
