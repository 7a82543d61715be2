package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command is one oncelist subcommand.
type Command struct {
	// Flags holds the command's own flags. Global flags are parsed by Run
	// before the command sees its arguments.
	Flags *flag.FlagSet

	// Usage follows "oncelist" in help output; its first word names the
	// command, e.g. "stress [flags]".
	Usage string

	// Short is the one-line summary in the command listing.
	Short string

	// Long replaces Short in "oncelist <cmd> --help" when set.
	Long string

	// Examples are printed verbatim under the flag defaults.
	Examples []string

	// Exec runs the command with the arguments left after flag parsing.
	Exec func(ctx context.Context, o *IO, args []string) error
}

// Name returns the first word of Usage.
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")

	return name
}

// HelpLine returns the command's row in the global usage listing.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-22s %s", c.Usage, c.Short)
}

// WriteHelp writes the full command help to w.
func (c *Command) WriteHelp(w io.Writer) {
	desc := c.Long
	if desc == "" {
		desc = c.Short
	}

	_, _ = fmt.Fprintf(w, "Usage: oncelist %s\n\n%s\n", c.Usage, desc)

	if c.Flags != nil && c.Flags.HasFlags() {
		_, _ = fmt.Fprintf(w, "\nFlags:\n%s", c.Flags.FlagUsages())
	}

	if len(c.Examples) > 0 {
		_, _ = fmt.Fprintln(w, "\nExamples:")

		for _, ex := range c.Examples {
			_, _ = fmt.Fprintln(w, "  oncelist", ex)
		}
	}
}

// Run parses args, executes the command and returns the exit code.
//
// An explicit --help prints to stdout and exits 0. A flag error prints the
// error and the help to stderr. Every other outcome leaves through
// [IO.Fail] or [IO.Finish], so pending warnings are always flushed.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	c.Flags.SetOutput(io.Discard)

	err := c.Flags.Parse(args)

	switch {
	case errors.Is(err, flag.ErrHelp):
		c.WriteHelp(o.Out())

		return 0
	case err != nil:
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		c.WriteHelp(o.ErrOut())

		return 1
	}

	err = c.Exec(ctx, o, c.Flags.Args())
	if err != nil {
		return o.Fail(err)
	}

	return o.Finish()
}
