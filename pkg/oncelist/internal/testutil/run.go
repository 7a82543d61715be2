package testutil

import (
	"testing"

	"github.com/calvinalkan/oncelist/pkg/oncelist"
)

// RunConfig configures a behavior test run.
type RunConfig struct {
	// MaxOps is the maximum number of operations to execute.
	MaxOps int

	// CompareStateEveryN runs full state comparison every N operations.
	// Set to 0 to disable periodic checks (only check at end).
	CompareStateEveryN int
}

// DefaultRunConfig returns a balanced configuration for behavior tests.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		MaxOps:             200,
		CompareStateEveryN: 5,
	}
}

// RunBehavior executes a deterministic stream of operations against a fresh
// real list and model and fails tb on the first divergence.
func RunBehavior(tb testing.TB, opts oncelist.Options, cfg RunConfig, gen *OpGenerator) {
	tb.Helper()

	if cfg.MaxOps <= 0 {
		tb.Fatalf("RunBehavior requires MaxOps > 0")
	}

	h := NewHarness(tb, opts)
	history := make([]string, 0, cfg.MaxOps)

	for opIndex := 1; opIndex <= cfg.MaxOps && gen.HasMore(); opIndex++ {
		op := gen.NextOp()
		history = append(history, op.String())

		modelRes, realRes := h.Apply(op)

		err := CompareResults(op, modelRes, realRes)
		if err != nil {
			tb.Fatalf("%v\n%s", err, FormatOps(history))
		}

		if cfg.CompareStateEveryN > 0 && opIndex%cfg.CompareStateEveryN == 0 {
			err := CompareState(h, history)
			if err != nil {
				tb.Fatal(err)
			}
		}
	}

	err := CompareState(h, history)
	if err != nil {
		tb.Fatal(err)
	}
}

// RunBehaviorWithSeed runs behavior tests with a specific byte seed and the
// default generator config.
func RunBehaviorWithSeed(tb testing.TB, opts oncelist.Options, seed []byte, cfg RunConfig) {
	tb.Helper()

	genCfg := DefaultOpGenConfig()
	RunBehavior(tb, opts, cfg, NewOpGenerator(seed, &genCfg))
}
