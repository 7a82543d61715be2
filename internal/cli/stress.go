package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/oncelist/internal/config"
	"github.com/calvinalkan/oncelist/internal/stress"
)

// StressCmd returns the stress command.
func StressCmd(cfg *config.Config) *Command {
	fs := flag.NewFlagSet("stress", flag.ContinueOnError)
	fs.Int("workers", cfg.Workers, "Number of concurrent appenders")
	fs.Int("per-worker", cfg.PerWorker, "Values pushed by each appender")
	fs.Int("batch", cfg.Batch, "Extend batch size (1 = PushBack)")
	fs.String("cache", cfg.Cache, "Cache mode: none, len, tail, tail-len")
	fs.String("allocator", "heap", "Node allocator: heap, pool, slab")
	fs.String("report", "", "Write a JSON report to `path`")
	fs.BoolP("quiet", "q", false, "Only log warnings and errors")

	return &Command{
		Flags: fs,
		Usage: "stress [flags]",
		Short: "Run concurrent appenders and verify the list",
		Long: `Start N goroutines that append to one shared list while a reader walks it,
then verify that every value is present exactly once and each appender's
values kept their order.`,
		Examples: []string{
			"stress --workers 16 --per-worker 50000 --cache tail-len",
			"stress --batch 64 --allocator slab --report stress.json",
		},
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			return execStress(ctx, o, fs, *cfg)
		},
	}
}

func execStress(ctx context.Context, o *IO, fs *flag.FlagSet, cfg config.Config) error {
	cfg.Workers, _ = fs.GetInt("workers")
	cfg.PerWorker, _ = fs.GetInt("per-worker")
	cfg.Batch, _ = fs.GetInt("batch")
	cfg.Cache, _ = fs.GetString("cache")

	err := cfg.Resolve()
	if err != nil {
		return err
	}

	allocator, _ := fs.GetString("allocator")
	reportPath, _ := fs.GetString("report")
	quiet, _ := fs.GetBool("quiet")

	log := logrus.New()
	log.SetOutput(o.ErrOut())

	if quiet {
		log.SetLevel(logrus.WarnLevel)
	}

	res, err := stress.Run(ctx, stress.Options{
		Workers:   cfg.Workers,
		PerWorker: cfg.PerWorker,
		Batch:     cfg.Batch,
		Cache:     cfg.CacheMode,
		Allocator: allocator,
	}, log)
	if err != nil {
		return err
	}

	o.Printf("ok: %d values from %d appenders (cache=%s, allocator=%s, batch=%d)\n",
		res.Total, res.Workers, res.Cache, res.Allocator, res.Batch)
	o.Printf("elapsed=%s ops/sec=%.0f reader_passes=%d\n", res.Elapsed, res.OpsPerSec, res.ReaderPasses)

	if res.PeakRSSKiB > 0 {
		o.Printf("peak_rss=%dKiB\n", res.PeakRSSKiB)
	}

	if reportPath != "" {
		err = stress.WriteReport(reportPath, res)
		if err != nil {
			return err
		}

		o.Println("report:", reportPath)
	}

	return nil
}
