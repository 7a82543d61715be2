package cli_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/oncelist/internal/cli"
)

func newTestCommand(exec func(ctx context.Context, o *cli.IO, args []string) error) *cli.Command {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.Int("count", 3, "How many")

	return &cli.Command{
		Flags:    fs,
		Usage:    "demo [flags]",
		Short:    "Demo command",
		Examples: []string{"demo --count 5"},
		Exec:     exec,
	}
}

func Test_Command_Writes_Help_To_Stderr_When_Flag_Invalid(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	cmd := newTestCommand(func(context.Context, *cli.IO, []string) error { return nil })
	code := cmd.Run(context.Background(), cli.NewIO(nil, &out, &errOut), []string{"--bogus"})

	assert.Equal(t, 1, code)
	assert.Empty(t, out.String(), "help for a flag error belongs on stderr")
	cli.AssertContains(t, errOut.String(), "error: unknown flag: --bogus")
	cli.AssertContains(t, errOut.String(), "Usage: oncelist demo [flags]")
	cli.AssertContains(t, errOut.String(), "--count")
}

func Test_Command_Writes_Examples_When_Help_Requested(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	cmd := newTestCommand(func(context.Context, *cli.IO, []string) error { return nil })
	code := cmd.Run(context.Background(), cli.NewIO(nil, &out, &errOut), []string{"--help"})

	assert.Equal(t, 0, code)
	assert.Empty(t, errOut.String())
	cli.AssertContains(t, out.String(), "Examples:\n  oncelist demo --count 5")
}

func Test_Command_Flushes_Warnings_Before_Error_When_Exec_Fails(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	cmd := newTestCommand(func(_ context.Context, o *cli.IO, _ []string) error {
		o.Warn("history not saved", "check the path")

		return errors.New("boom")
	})
	code := cmd.Run(context.Background(), cli.NewIO(nil, &out, &errOut), nil)

	assert.Equal(t, 1, code)
	assert.Equal(t, "warning: history not saved: check the path\nerror: boom\n", errOut.String())
}

func Test_Command_Exits_One_When_Exec_Only_Warns(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	cmd := newTestCommand(func(_ context.Context, o *cli.IO, _ []string) error {
		o.Println("done")
		o.Warn("slow run", "use fewer workers")

		return nil
	})
	code := cmd.Run(context.Background(), cli.NewIO(nil, &out, &errOut), nil)

	assert.Equal(t, 1, code)
	assert.Equal(t, "done\n", out.String())
	cli.AssertContains(t, errOut.String(), "warning: slow run: use fewer workers")
}
