package cli

import (
	"context"
	"fmt"
	"slices"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/oncelist/internal/config"
	"github.com/calvinalkan/oncelist/pkg/oncecell"
	"github.com/calvinalkan/oncelist/pkg/oncelist"
)

// lenCalls is how many Len calls one bench round times.
const lenCalls = 100

// BenchResult holds the timings of one bench round.
type BenchResult struct {
	Cache  oncelist.CacheMode
	Push   time.Duration
	Extend time.Duration
	Len    time.Duration
}

// BenchCmd returns the bench command.
func BenchCmd(cfg *config.Config) *Command {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.IntP("count", "n", cfg.BenchCount, "Values pushed per round")
	fs.Bool("shared", false, "Use a Shared list instead of a Local one")

	return &Command{
		Flags: fs,
		Usage: "bench [flags]",
		Short: "Time PushBack, Extend and Len for every cache mode",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			count, _ := fs.GetInt("count")
			shared, _ := fs.GetBool("shared")

			if count <= 0 {
				return fmt.Errorf("count must be positive, got %d", count)
			}

			sync := oncecell.Local
			if shared {
				sync = oncecell.Shared
			}

			o.Printf("Benchmarking %d values per round (sync=%s)...\n", count, sync)
			o.Printf("%-10s %14s %14s %14s\n", "cache", "push/op", "extend/op", "len/call")

			for _, mode := range oncelist.CacheModes() {
				if ctx.Err() != nil {
					return ctx.Err()
				}

				res, err := RunBench(oncelist.Options{Cache: mode, Sync: sync}, count)
				if err != nil {
					return err
				}

				o.Printf("%-10s %14s %14s %14s\n", res.Cache,
					res.Push/time.Duration(count), res.Extend/time.Duration(count), res.Len/lenCalls)
			}

			return nil
		},
	}
}

// RunBench times one round for opts.
func RunBench(opts oncelist.Options, count int) (BenchResult, error) {
	pushList, err := oncelist.New[int](opts)
	if err != nil {
		return BenchResult{}, err
	}

	start := time.Now()

	for i := range count {
		pushList.PushBack(i)
	}

	push := time.Since(start)

	extendList, err := oncelist.New[int](opts)
	if err != nil {
		return BenchResult{}, err
	}

	values := slices.Collect(pushList.All())

	start = time.Now()

	extendList.ExtendSlice(values)

	extend := time.Since(start)

	start = time.Now()

	for range lenCalls {
		if extendList.Len() != count {
			return BenchResult{}, fmt.Errorf("bench %s: Len reports %d, want %d", opts.Cache, extendList.Len(), count)
		}
	}

	return BenchResult{
		Cache:  opts.Cache,
		Push:   push,
		Extend: extend,
		Len:    time.Since(start),
	}, nil
}
