package cli_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/calvinalkan/oncelist/internal/cli"
)

func Test_Invalid_Global_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, exitCode := c.Run("--invalid-flag", "stress")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stdout, ""; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stderr, "unknown flag")
	cli.AssertContains(t, stderr, "--invalid-flag")

	cli.AssertContains(t, stderr, "Global flags:")
	cli.AssertContains(t, stderr, "--help")
	cli.AssertContains(t, stderr, "--cwd")
	cli.AssertContains(t, stderr, "--config")
}

func Test_Bare_Command_When_Invoked(t *testing.T) {
	t.Parallel()

	// Call Run directly without test helper (which adds --cwd)
	var stdout, stderr bytes.Buffer

	exitCode := cli.Run(nil, &stdout, &stderr, []string{"oncelist", "--cwd", t.TempDir()}, nil, nil)

	if got, want := exitCode, 0; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stderr.String(), ""; got != want {
		t.Errorf("stderr=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stdout.String(), "oncelist - append-only list dev tool")
	cli.AssertContains(t, stdout.String(), "--cwd")
	cli.AssertContains(t, stdout.String(), "stress [flags]")
	cli.AssertContains(t, stdout.String(), "bench [flags]")
	cli.AssertContains(t, stdout.String(), "repl [flags]")
	cli.AssertContains(t, stdout.String(), "print-config")
}

func Test_Unknown_Command_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("frobnicate")

	cli.AssertContains(t, stderr, "unknown command: frobnicate")
	cli.AssertContains(t, stderr, "Commands:")
}

func Test_Command_Help_When_Help_Flag_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("stress", "--help")

	cli.AssertContains(t, stdout, "Usage: oncelist stress [flags]")
	cli.AssertContains(t, stdout, "--workers")
	cli.AssertContains(t, stdout, "--allocator")
}

func Test_Invalid_Command_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	_, stderr, exitCode := c.Run("bench", "--nope")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	cli.AssertContains(t, stderr, "unknown flag: --nope")
	cli.AssertContains(t, c.MustRun("bench", "--help"), "--count")
}

func Test_Missing_Config_File_When_Config_Flag_Given(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("--config", "missing.json", "print-config")

	cli.AssertContains(t, stderr, "missing.json")
}

func Test_Invalid_Config_When_Project_File_Has_Bad_Cache(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteConfig(`{"cache": "sideways"}`)

	stderr := c.MustFail("print-config")

	cli.AssertContains(t, stderr, "sideways")
}

func Test_Signal_Cancels_Command_When_Received(t *testing.T) {
	t.Parallel()

	sigCh := make(chan os.Signal, 1)
	sigCh <- os.Interrupt

	var out, errOut bytes.Buffer

	exitCode := cli.Run(nil, &out, &errOut, []string{
		"oncelist", "--cwd", t.TempDir(),
		"stress", "--workers", "4", "--per-worker", "1000000", "-q",
	}, map[string]string{}, sigCh)

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d (stdout=%q)", got, want, out.String())
	}
}
