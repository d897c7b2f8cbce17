package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

// Options controls the prompt, history, and IO streams of the loop.
type Options struct {
	Prompt      string
	HistoryFile string
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	// Eval handles one non-empty line. Its error is reported and the loop
	// continues.
	Eval func(line string) error
}

// Run reads lines until exit, quit, Ctrl+D, or Ctrl+C on an empty line.
// Ctrl+C on a non-empty line discards it.
func Run(opts Options) error {
	if opts.Eval == nil {
		return errors.New("repl: no line handler")
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cfg := &readline.Config{
		Prompt:            opts.Prompt,
		HistoryFile:       opts.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		Stdout:            opts.Stdout,
		Stderr:            opts.Stderr,
	}
	if in, ok := opts.Stdin.(io.ReadCloser); ok {
		cfg.Stdin = in
	} else if opts.Stdin != nil {
		cfg.Stdin = io.NopCloser(opts.Stdin)
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return fmt.Errorf("init prompt: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isExit(line) {
			return nil
		}
		if err := opts.Eval(line); err != nil {
			fmt.Fprintln(opts.Stderr, "error:", err)
		}
	}
}

func isExit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit", ":q":
		return true
	}
	return false
}
