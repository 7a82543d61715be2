package cli

import (
	"fmt"
	"io"
)

// IO handles command output with end-of-run warning visibility.
type IO struct {
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	warnings []string
	started  bool
}

// NewIO creates a new IO instance.
func NewIO(in io.Reader, out, errOut io.Writer) *IO {
	return &IO{in: in, out: out, errOut: errOut}
}

// In returns the input stream commands read from.
func (o *IO) In() io.Reader { return o.in }

// Out returns the stdout writer.
func (o *IO) Out() io.Writer { return o.out }

// ErrOut returns the stderr writer.
func (o *IO) ErrOut() io.Writer { return o.errOut }

// Warn adds an actionable warning.
//
// Warnings are printed to stderr at both the START and END of output, so
// they stay visible when output is piped through head or tail. Any warning
// makes the command exit with code 1.
func (o *IO) Warn(issue string, action string) {
	o.warnings = append(o.warnings, fmt.Sprintf("%s: %s", issue, action))
}

// Println writes to stdout. On first call, any collected warnings
// are printed to stderr first.
func (o *IO) Println(a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout. On first call, any collected
// warnings are printed to stderr first.
func (o *IO) Printf(format string, a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Fail prints err to stderr after any pending warnings and returns exit
// code 1.
func (o *IO) Fail(err error) int {
	o.Finish()
	_, _ = fmt.Fprintln(o.errOut, "error:", err)

	return 1
}

// Finish prints warnings to stderr and returns exit code.
// Returns 1 if any warnings, 0 otherwise.
func (o *IO) Finish() int {
	hadOutput := o.started
	o.flushWarningsStart()

	// Without earlier output the start flush above was the only print needed.
	if hadOutput {
		for _, w := range o.warnings {
			_, _ = fmt.Fprintln(o.errOut, "warning:", w)
		}
	}

	if len(o.warnings) > 0 {
		return 1
	}

	return 0
}

func (o *IO) flushWarningsStart() {
	if !o.started && len(o.warnings) > 0 {
		for _, w := range o.warnings {
			_, _ = fmt.Fprintln(o.errOut, "warning:", w)
		}
	}

	o.started = true
}
