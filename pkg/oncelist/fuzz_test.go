package oncelist_test

import (
	"testing"

	"github.com/calvinalkan/oncelist/pkg/oncecell"
	"github.com/calvinalkan/oncelist/pkg/oncelist"
	"github.com/calvinalkan/oncelist/pkg/oncelist/internal/testutil"
)

// FuzzBehavior_ModelVsReal decodes operations from the fuzz input and checks
// the real list against the model. The first byte picks the options.
func FuzzBehavior_ModelVsReal(f *testing.F) {
	for i, seed := range testutil.CuratedSeeds() {
		f.Add(append([]byte{byte(i)}, seed.Data...))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) == 0 {
			return
		}

		opts := oncelist.Options{
			Cache: oncelist.CacheMode(data[0] % 4),
			Sync:  oncecell.Mode((data[0] >> 2) % 2),
		}

		cfg := testutil.DefaultOpGenConfig()
		run := testutil.DefaultRunConfig()

		testutil.RunBehavior(t, opts, run, testutil.NewOpGenerator(data[1:], &cfg))
	})
}
