// Package stress runs concurrent appenders against a shared oncelist and
// verifies that nothing was lost, duplicated or reordered.
package stress

import (
	"context"
	"fmt"
	"time"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/calvinalkan/oncelist/pkg/oncecell"
	"github.com/calvinalkan/oncelist/pkg/oncelist"
)

// Options configures a stress run.
type Options struct {
	Workers   int
	PerWorker int
	Batch     int
	Cache     oncelist.CacheMode

	// Allocator is "heap", "pool" or "slab".
	Allocator string
}

// Result summarizes a verified stress run.
type Result struct {
	Workers      int           `json:"workers"`
	PerWorker    int           `json:"per_worker"`
	Batch        int           `json:"batch"`
	Cache        string        `json:"cache"`
	Allocator    string        `json:"allocator"`
	Total        int           `json:"total"`
	Elapsed      time.Duration `json:"elapsed_ns"`
	OpsPerSec    float64       `json:"ops_per_sec"`
	PeakRSSKiB   int64         `json:"peak_rss_kib"`
	ReaderPasses int           `json:"reader_passes"`
	FinishedAt   time.Time     `json:"finished_at"`
}

// ErrVerify is wrapped by every verification failure.
var ErrVerify = errors.New("stress verification failed")

func newAllocator(name string) (oncelist.Allocator[int], error) {
	switch name {
	case "", "heap":
		return oncelist.HeapAllocator[int]{}, nil
	case "pool":
		return oncelist.NewPoolAllocator[int](), nil
	case "slab":
		return oncelist.NewSlabAllocator[int](), nil
	}

	return nil, errors.Errorf("unknown allocator %q (want heap, pool or slab)", name)
}

// Run appends Workers*PerWorker values from Workers goroutines while one
// reader walks the list, then verifies the result.
//
// Worker w pushes w*PerWorker+i for i in [0, PerWorker), in order, either one
// at a time or in Extend batches of Batch values.
func Run(ctx context.Context, opts Options, log logrus.FieldLogger) (Result, error) {
	if opts.Workers <= 0 || opts.PerWorker <= 0 || opts.Batch <= 0 {
		return Result{}, errors.Errorf("workers, per-worker and batch must be positive: %+v", opts)
	}

	alloc, err := newAllocator(opts.Allocator)
	if err != nil {
		return Result{}, err
	}

	list, err := oncelist.NewWithAllocator(oncelist.Options{Cache: opts.Cache, Sync: oncecell.Shared}, alloc)
	if err != nil {
		return Result{}, errors.WithStack(err)
	}

	total := opts.Workers * opts.PerWorker
	log = log.WithFields(logrus.Fields{
		"workers":   opts.Workers,
		"perWorker": opts.PerWorker,
		"batch":     opts.Batch,
		"cache":     opts.Cache.String(),
	})
	log.Info("stress run started")

	// parallel reports task lifecycles through the zap logger carried by ctx.
	ctx = logger.WithLogger(ctx, logger.New(logger.DefaultConfig))

	start := time.Now()
	passes := 0

	err = parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		for w := range opts.Workers {
			spawn(fmt.Sprintf("appender-%d", w), parallel.Continue, func(ctx context.Context) error {
				return appendValues(ctx, list, w, opts)
			})
		}

		spawn("reader", parallel.Continue, func(ctx context.Context) error {
			for ctx.Err() == nil {
				n := 0
				for range list.All() {
					n++
				}

				passes++

				if n > total {
					return errors.Wrapf(ErrVerify, "reader saw %d values, at most %d were pushed", n, total)
				}

				if n == total {
					return nil
				}
			}

			return errors.WithStack(ctx.Err())
		})

		return nil
	})
	if err != nil {
		return Result{}, errors.Wrap(err, "stress appenders")
	}

	elapsed := time.Since(start)

	err = Verify(list.Slice(), opts.Workers, opts.PerWorker)
	if err != nil {
		return Result{}, err
	}

	if n := list.Len(); n != total {
		return Result{}, errors.Wrapf(ErrVerify, "Len reports %d, want %d", n, total)
	}

	res := Result{
		Workers:      opts.Workers,
		PerWorker:    opts.PerWorker,
		Batch:        opts.Batch,
		Cache:        opts.Cache.String(),
		Allocator:    allocatorName(opts.Allocator),
		Total:        total,
		Elapsed:      elapsed,
		OpsPerSec:    float64(total) / elapsed.Seconds(),
		PeakRSSKiB:   peakRSSKiB(),
		FinishedAt:   time.Now().UTC(),
		ReaderPasses: passes,
	}

	log.WithFields(logrus.Fields{
		"elapsed":   elapsed,
		"opsPerSec": int64(res.OpsPerSec),
		"passes":    passes,
	}).Info("stress run verified")

	return res, nil
}

func appendValues(ctx context.Context, list *oncelist.List[int], w int, opts Options) error {
	base := w * opts.PerWorker

	if opts.Batch == 1 {
		for i := range opts.PerWorker {
			if i%1024 == 0 && ctx.Err() != nil {
				return errors.WithStack(ctx.Err())
			}

			list.PushBack(base + i)
		}

		return nil
	}

	batch := make([]int, 0, opts.Batch)

	for i := 0; i < opts.PerWorker; i += opts.Batch {
		if ctx.Err() != nil {
			return errors.WithStack(ctx.Err())
		}

		batch = batch[:0]
		for j := i; j < i+opts.Batch && j < opts.PerWorker; j++ {
			batch = append(batch, base+j)
		}

		list.ExtendSlice(batch)
	}

	return nil
}

// Verify checks that values holds every w*perWorker+i exactly once and that
// each worker's values appear in increasing order.
func Verify(values []int, workers, perWorker int) error {
	if len(values) != workers*perWorker {
		return errors.Wrapf(ErrVerify, "got %d values, want %d", len(values), workers*perWorker)
	}

	next := make([]int, workers)

	for pos, v := range values {
		w, i := v/perWorker, v%perWorker
		if v < 0 || w >= workers {
			return errors.Wrapf(ErrVerify, "value %d at %d was never pushed", v, pos)
		}

		if i < next[w] {
			return errors.Wrapf(ErrVerify, "value %d at %d is a duplicate or out of order for worker %d", v, pos, w)
		}

		if i > next[w] {
			return errors.Wrapf(ErrVerify, "worker %d value %d missing before %d", w, next[w], v)
		}

		next[w]++
	}

	return nil
}

func allocatorName(name string) string {
	if name == "" {
		return "heap"
	}

	return name
}
