package cli

import (
	"context"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/oncelist/internal/config"
)

// Run is the main entry point. Returns exit code.
//
// args includes the program name. A value received on sigCh cancels the
// running command's context.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	o := NewIO(in, out, errOut)

	globals := flag.NewFlagSet("oncelist", flag.ContinueOnError)
	globals.SetInterspersed(false)
	globals.SetOutput(&strings.Builder{})

	cwd := globals.StringP("cwd", "C", "", "Run as if started in `dir`")
	configPath := globals.StringP("config", "c", "", "Use specified config `file`")
	help := globals.BoolP("help", "h", false, "Show help")

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	err := globals.Parse(rest)
	if err != nil {
		o.ErrPrintln("error:", err)
		printUsage(errOut, globals, nil)

		return 1
	}

	cfg, err := config.Load(config.LoadInput{
		WorkDirOverride: *cwd,
		ConfigPath:      *configPath,
		Env:             env,
	})
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	commands := []*Command{
		StressCmd(&cfg),
		BenchCmd(&cfg),
		ReplCmd(&cfg),
		PrintConfigCmd(&cfg),
	}

	if *help || globals.NArg() == 0 {
		printUsage(out, globals, commands)

		return 0
	}

	name := globals.Arg(0)

	for _, cmd := range commands {
		if cmd.Name() != name {
			continue
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if sigCh != nil {
			go func() {
				select {
				case <-sigCh:
					cancel()
				case <-ctx.Done():
				}
			}()
		}

		return cmd.Run(ctx, o, globals.Args()[1:])
	}

	o.ErrPrintln("error: unknown command:", name)
	printUsage(errOut, globals, commands)

	return 1
}

func printUsage(w io.Writer, globals *flag.FlagSet, commands []*Command) {
	o := NewIO(nil, w, w)

	o.Println("oncelist - append-only list dev tool")
	o.Println()
	o.Println("Usage: oncelist [global flags] <command> [args]")
	o.Println()
	o.Println("Global flags:")

	var buf strings.Builder

	globals.SetOutput(&buf)
	globals.PrintDefaults()
	globals.SetOutput(&strings.Builder{})
	o.Printf("%s", buf.String())

	if len(commands) == 0 {
		return
	}

	o.Println()
	o.Println("Commands:")

	for _, cmd := range commands {
		o.Println(cmd.HelpLine())
	}
}
