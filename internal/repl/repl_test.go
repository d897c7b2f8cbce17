package repl

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
)

// lockedBuffer guards writes that come from readline's own goroutines.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestIsExit(t *testing.T) {
	for _, line := range []string{"exit", "quit", " QUIT ", ":q"} {
		if !isExit(line) {
			t.Fatalf("isExit(%q) = false, want true", line)
		}
	}
	for _, line := range []string{"", "exit now", "prog --exit"} {
		if isExit(line) {
			t.Fatalf("isExit(%q) = true, want false", line)
		}
	}
}

func TestRunRequiresHandler(t *testing.T) {
	if err := Run(Options{}); err == nil {
		t.Fatal("expected error without a line handler")
	}
}

func TestRun_Loop(t *testing.T) {
	var stdout, stderr lockedBuffer
	var seen []string

	err := Run(Options{
		Prompt:      "> ",
		HistoryFile: filepath.Join(t.TempDir(), "history"),
		Stdin:       strings.NewReader("a --b\n\nbad\nquit\nnever\n"),
		Stdout:      &stdout,
		Stderr:      &stderr,
		Eval: func(line string) error {
			seen = append(seen, line)
			if line == "bad" {
				return errors.New("boom")
			}
			return nil
		},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := []string{"a --b", "bad"}; !reflect.DeepEqual(seen, want) {
		t.Fatalf("evaluated = %q, want %q", seen, want)
	}
	if !strings.Contains(stderr.String(), "error: boom") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestRun_EndOfInputStops(t *testing.T) {
	var stdout, stderr lockedBuffer
	var seen []string

	err := Run(Options{
		HistoryFile: filepath.Join(t.TempDir(), "history"),
		Stdin:       strings.NewReader("  prog --x 1  \n"),
		Stdout:      &stdout,
		Stderr:      &stderr,
		Eval: func(line string) error {
			seen = append(seen, line)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := []string{"prog --x 1"}; !reflect.DeepEqual(seen, want) {
		t.Fatalf("evaluated = %q, want %q", seen, want)
	}
	if stderr.String() != "" {
		t.Fatalf("stderr = %q", stderr.String())
	}
}
