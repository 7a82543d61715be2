package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/oncelist/internal/config"
	"github.com/calvinalkan/oncelist/pkg/oncecell"
	"github.com/calvinalkan/oncelist/pkg/oncelist"
)

const replPrompt = "oncelist> "

var replCommands = []string{
	"push", "extend", "rm", "pop",
	"ls", "len", "front", "back",
	"clear", "info", "help", "exit", "quit",
}

// ReplCmd returns the repl command.
func ReplCmd(cfg *config.Config) *Command {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.String("cache", cfg.Cache, "Cache mode: none, len, tail, tail-len")
	fs.Bool("shared", false, "Use a Shared list instead of a Local one")

	return &Command{
		Flags: fs,
		Usage: "repl [flags]",
		Short: "Edit a list of strings interactively",
		Long: `Start an interactive session over a list of strings.

Reads commands from the terminal with line editing and history. When stdin is
not a terminal, commands are read one per line until EOF.`,
		Examples: []string{
			"repl --cache tail",
			"repl --shared < commands.txt",
		},
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			cacheName, _ := fs.GetString("cache")
			shared, _ := fs.GetBool("shared")

			mode, err := oncelist.ParseCacheMode(cacheName)
			if err != nil {
				return err
			}

			opts := oncelist.Options{Cache: mode, Sync: oncecell.Local}
			if shared {
				opts.Sync = oncecell.Shared
			}

			session, err := NewSession(opts, o.Out())
			if err != nil {
				return err
			}

			if f, ok := o.In().(*os.File); ok && f == os.Stdin {
				return runLiner(ctx, o, session, cfg.History)
			}

			return runLines(ctx, o.In(), session)
		},
	}
}

func runLiner(ctx context.Context, o *IO, session *Session, history string) error {
	state := liner.NewLiner()
	defer state.Close()

	state.SetCtrlCAborts(true)
	state.SetCompleter(completeCommand)

	if history != "" {
		if f, err := os.Open(history); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
	}

	o.Printf("oncelist repl (%s)\n", session.describe())
	o.Println("Type 'help' for available commands.")

	for ctx.Err() == nil {
		line, err := state.Prompt(replPrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		state.AppendHistory(line)

		if session.Exec(line) {
			break
		}
	}

	if history != "" {
		var buf bytes.Buffer

		_, err := state.WriteHistory(&buf)
		if err == nil {
			err = atomic.WriteFile(history, &buf)
		}

		if err != nil {
			o.Warn("history not saved: "+err.Error(), "check the history path in your config")
		}
	}

	return nil
}

func runLines(ctx context.Context, in io.Reader, session *Session) error {
	if in == nil {
		return nil
	}

	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if session.Exec(line) {
			return nil
		}
	}

	err := scanner.Err()
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	return nil
}

func completeCommand(line string) []string {
	var completions []string

	lower := strings.ToLower(line)
	for _, cmd := range replCommands {
		if strings.HasPrefix(cmd, lower) {
			completions = append(completions, cmd)
		}
	}

	return completions
}

// Session executes repl commands against one list.
type Session struct {
	list *oncelist.List[string]
	out  io.Writer
}

// NewSession creates a session over an empty list built with opts.
func NewSession(opts oncelist.Options, out io.Writer) (*Session, error) {
	list, err := oncelist.New[string](opts)
	if err != nil {
		return nil, err
	}

	return &Session{list: list, out: out}, nil
}

// List returns the session's list.
func (s *Session) List() *oncelist.List[string] {
	return s.list
}

// Exec runs one command line. Returns true when the session should end.
func (s *Session) Exec(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "exit", "quit", "q":
		return true

	case "help", "?":
		s.printHelp()

	case "push":
		if len(args) == 0 {
			s.println("usage: push <value>...")

			return false
		}

		for _, v := range args {
			s.list.PushBack(v)
		}

		s.printf("len=%d\n", s.list.Len())

	case "extend":
		s.list.ExtendSlice(args)
		s.printf("len=%d\n", s.list.Len())

	case "rm", "remove":
		if len(args) != 1 {
			s.println("usage: rm <value>")

			return false
		}

		want := args[0]

		_, ok := s.list.Remove(func(v string) bool { return v == want })
		if !ok {
			s.printf("not found: %s\n", want)

			return false
		}

		s.printf("removed: %s\n", want)

	case "pop":
		v, ok := s.list.PopFront()
		if !ok {
			s.println("(empty)")

			return false
		}

		s.printf("popped: %s\n", v)

	case "ls", "list":
		s.println(s.list.String())

	case "len", "count":
		s.printf("len=%d\n", s.list.Len())

	case "front":
		s.printEnd(s.list.Front())

	case "back":
		s.printEnd(s.list.Back())

	case "clear":
		s.list.Clear()
		s.println("cleared")

	case "info":
		s.println(s.describe())

	default:
		s.printf("unknown command: %s (type 'help' for commands)\n", cmd)
	}

	return false
}

func (s *Session) describe() string {
	return fmt.Sprintf("cache=%s sync=%s len=%d", s.list.CacheMode(), s.list.Mode(), s.list.Len())
}

func (s *Session) printEnd(v string, ok bool) {
	if !ok {
		s.println("(empty)")

		return
	}

	s.println(v)
}

func (s *Session) printHelp() {
	s.println("Commands:")
	s.println("  push <value>...   Append values one at a time")
	s.println("  extend <value>... Append values as one batch")
	s.println("  rm <value>        Remove the first matching value")
	s.println("  pop               Remove the first value")
	s.println("  ls                Print the list")
	s.println("  len               Print the length")
	s.println("  front, back       Print the first or last value")
	s.println("  clear             Remove every value")
	s.println("  info              Print cache mode, sync mode and length")
	s.println("  exit              Leave the repl")
}

func (s *Session) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}
