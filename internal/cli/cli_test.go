package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sasanktumpati/argv/arguments"
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

type runResult struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, cfgPath string, stdin string, args ...string) runResult {
	t.Helper()
	var stdout, stderr lockedBuffer
	argv := append([]string{"argv", "--config", cfgPath}, args...)
	err := Run(argv, strings.NewReader(stdin), &stdout, &stderr)
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func tempConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.json")
}

func TestRun_MissingProgram(t *testing.T) {
	err := Run(nil, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	if !errors.Is(err, arguments.ErrMissingProgram) {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestRun_NoCommandPrintsHelp(t *testing.T) {
	res := run(t, tempConfig(t), "")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "argv v"+version) {
		t.Fatalf("stdout = %q", res.stdout)
	}
}

func TestRun_Version(t *testing.T) {
	res := run(t, tempConfig(t), "", "--version")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}
	if res.stdout != version+"\n" {
		t.Fatalf("stdout = %q", res.stdout)
	}
}

func TestRun_HelpTopicFromFlag(t *testing.T) {
	res := run(t, tempConfig(t), "", "get", "--help")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "argv get \"<command line>\" <name>") {
		t.Fatalf("stdout = %q", res.stdout)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	res := run(t, tempConfig(t), "", "frobnicate")
	if res.err == nil || !strings.Contains(res.err.Error(), `unknown command "frobnicate"`) {
		t.Fatalf("Run() error = %v", res.err)
	}
}

func TestRun_UnknownOption(t *testing.T) {
	res := run(t, tempConfig(t), "", "explain", "a", "--bogus")
	if res.err == nil || !strings.Contains(res.err.Error(), "unknown option --bogus") {
		t.Fatalf("Run() error = %v", res.err)
	}
}

func TestRun_ExplainText(t *testing.T) {
	res := run(t, tempConfig(t), "", "explain", "a b --c d e --f")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}
	for _, want := range []string{`program  "a"`, `--c      "d"`, `--f      "true"`, `orphans  "b" "e"`} {
		if !strings.Contains(res.stdout, want) {
			t.Fatalf("stdout missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestRun_ExplainJSONWithQuoting(t *testing.T) {
	res := run(t, tempConfig(t), "", "explain", `foo --qux "Hello, world!"`, "--format", "json")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}
	if !strings.Contains(res.stdout, `"program": "foo"`) || !strings.Contains(res.stdout, `"Hello, world!"`) {
		t.Fatalf("stdout = %s", res.stdout)
	}
}

func TestRun_ExplainMarkdownUnstyled(t *testing.T) {
	res := run(t, tempConfig(t), "", "explain", "foo --no-bar", "--format", "markdown")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "| `bar` | `false` |") {
		t.Fatalf("stdout = %s", res.stdout)
	}
}

func TestRun_ExplainReportsParseFailures(t *testing.T) {
	res := run(t, tempConfig(t), "", "explain", "a --", "b --c")
	if res.err == nil || res.err.Error() != "1 of 2 command lines failed to parse" {
		t.Fatalf("Run() error = %v", res.err)
	}
	if !strings.Contains(res.stdout, `expected a name right after "--"`) {
		t.Fatalf("stdout = %s", res.stdout)
	}
	if !strings.Contains(res.stdout, `program  "b"`) {
		t.Fatalf("stdout = %s", res.stdout)
	}
}

func TestRun_ExplainSplitError(t *testing.T) {
	res := run(t, tempConfig(t), "", "explain", `a "unterminated`)
	if res.err == nil || !strings.Contains(res.err.Error(), "split") {
		t.Fatalf("Run() error = %v", res.err)
	}
}

func TestRun_ExplainReadsStdin(t *testing.T) {
	res := run(t, tempConfig(t), "# a comment\n\nprog --x 1\n", "explain")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}
	if !strings.Contains(res.stdout, `--x      "1"`) {
		t.Fatalf("stdout = %s", res.stdout)
	}
}

func TestRun_Get(t *testing.T) {
	cfg := tempConfig(t)
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"get", "a --b 1 --b 2", "b", "--type", "int"}, want: "b (int): 2\n"},
		{args: []string{"get", "a --b 1 --b 2", "b", "--type", "int", "--all"}, want: "b (int): [1 2]\n"},
		{args: []string{"get", "a --b 1 --b x", "b", "--type", "int", "--all"}, want: "b (int): <absent>\n"},
		{args: []string{"get", "a --no-c", "c", "--type", "bool"}, want: "c (bool): false\n"},
		{args: []string{"get", "a --t 1m30s", "t", "--type", "duration"}, want: "t (duration): 1m30s\n"},
		{args: []string{"get", "a --ip ::1", "ip", "--type", "ip"}, want: "ip (ip): ::1\n"},
		{args: []string{"get", "a", "missing"}, want: "missing (string): <absent>\n"},
	}
	for _, tt := range tests {
		res := run(t, cfg, "", tt.args...)
		if res.err != nil {
			t.Fatalf("Run(%q) error = %v", tt.args, res.err)
		}
		if res.stdout != tt.want {
			t.Fatalf("Run(%q) stdout = %q, want %q", tt.args, res.stdout, tt.want)
		}
	}
}

func TestRun_GetErrors(t *testing.T) {
	cfg := tempConfig(t)
	if res := run(t, cfg, "", "get", "a --b 1"); res.err == nil || !strings.Contains(res.err.Error(), "usage:") {
		t.Fatalf("Run() error = %v", res.err)
	}
	if res := run(t, cfg, "", "get", "a --b 1", "b", "--type", "complex"); res.err == nil || !strings.Contains(res.err.Error(), `unknown type "complex"`) {
		t.Fatalf("Run() error = %v", res.err)
	}
	res := run(t, cfg, "", "get", "", "b")
	if !errors.Is(res.err, arguments.ErrMissingProgram) {
		t.Fatalf("Run() error = %v", res.err)
	}
}

func TestRun_MarkdownToggleIsSaved(t *testing.T) {
	cfg := tempConfig(t)
	if res := run(t, cfg, "", "markdown", "off"); res.err != nil || res.stdout != "markdown styling disabled\n" {
		t.Fatalf("markdown off = %q, %v", res.stdout, res.err)
	}
	if res := run(t, cfg, "", "markdown", "status"); res.err != nil || res.stdout != "markdown=off\n" {
		t.Fatalf("markdown status = %q, %v", res.stdout, res.err)
	}
}

func TestRun_ConfigFormatChangesDefault(t *testing.T) {
	cfg := tempConfig(t)
	if res := run(t, cfg, "", "config", "format", "json"); res.err != nil {
		t.Fatalf("config format error = %v", res.err)
	}
	res := run(t, cfg, "", "explain", "a --b")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}
	if !strings.Contains(res.stdout, `"program": "a"`) {
		t.Fatalf("stdout = %s", res.stdout)
	}
	if res := run(t, cfg, "", "config", "path"); res.stdout != cfg+"\n" {
		t.Fatalf("config path = %q", res.stdout)
	}
	if res := run(t, cfg, "", "config", "format", "yaml"); res.err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRun_REPL(t *testing.T) {
	cfg := tempConfig(t)
	res := run(t, cfg, "prog --b 1 rest\na --\nexit\nnever --x\n", "repl")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}
	for _, want := range []string{"Type a command line", `"prog"`, `"1"`, `"rest"`, `expected a name right after "--"`} {
		if !strings.Contains(res.stdout, want) {
			t.Fatalf("stdout missing %q:\n%s", want, res.stdout)
		}
	}
	if strings.Contains(res.stdout, `program  "never"`) {
		t.Fatalf("line after exit was evaluated:\n%s", res.stdout)
	}
}

func TestRun_REPLRejectsArguments(t *testing.T) {
	res := run(t, tempConfig(t), "", "repl", "extra")
	if res.err == nil || res.err.Error() != "usage: argv repl (see argv help repl)" {
		t.Fatalf("Run() error = %v", res.err)
	}
}

func TestRun_SubcommandHelpWords(t *testing.T) {
	cfg := tempConfig(t)
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"markdown", "on", "help"}, want: "argv markdown status"},
		{args: []string{"markdown", "?"}, want: "argv markdown status"},
		{args: []string{"config", "show", "help"}, want: "argv config format"},
		{args: []string{"get", "help"}, want: "--all"},
		{args: []string{"help", "grammar"}, want: "reject true and false"},
	}
	for _, tt := range tests {
		res := run(t, cfg, "", tt.args...)
		if res.err != nil {
			t.Fatalf("Run(%q) error = %v", tt.args, res.err)
		}
		if !strings.Contains(res.stdout, tt.want) {
			t.Fatalf("Run(%q) stdout missing %q:\n%s", tt.args, tt.want, res.stdout)
		}
	}
	if res := run(t, cfg, "", "markdown", "status"); res.stdout != "markdown=on\n" {
		t.Fatalf("markdown help changed the setting: %q", res.stdout)
	}
}

func TestRun_UnknownSubcommandPointsAtHelp(t *testing.T) {
	res := run(t, tempConfig(t), "", "markdown", "sideways")
	if res.err == nil || res.err.Error() != `unknown markdown subcommand "sideways" (see argv help markdown)` {
		t.Fatalf("Run() error = %v", res.err)
	}
}

func TestRun_ValueOptionRejectsBooleanLiteral(t *testing.T) {
	res := run(t, tempConfig(t), "", "get", "a --b 1", "b", "--type", "true")
	if res.err == nil || !strings.Contains(res.err.Error(), "--type requires a value (true and false read as a bare flag)") {
		t.Fatalf("Run() error = %v", res.err)
	}
}
