package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sasanktumpati/argv/internal/config"
)

const version = "0.1.0"

// A "--help" token never reaches a command: the parser turns it into the help
// option. Inside a command only the bare words below ask for help.
func isHelpToken(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "help", "?":
		return true
	}
	return false
}

// showTopicHelpIfRequested prints help for topic when args[idx] asks for it.
func (a *App) showTopicHelpIfRequested(topic string, args []string, idx int) bool {
	if idx < 0 || idx >= len(args) || !isHelpToken(args[idx]) {
		return false
	}
	printHelp(a.stdout, topic, a.cfgPath)
	return true
}

func usageError(topic, usage string) error {
	return fmt.Errorf("usage: %s (see argv help %s)", usage, topic)
}

func unknownSubcommand(command string, sub string) error {
	return fmt.Errorf("unknown %s subcommand %q (see argv help %s)", command, sub, command)
}

func printHelp(w io.Writer, topic string, cfgPath string) {
	switch topic {
	case "", "root":
		printRootHelp(w, cfgPath)
	case "explain":
		printExplainHelp(w)
	case "get":
		printGetHelp(w)
	case "repl":
		printREPLHelp(w, cfgPath)
	case "config":
		printConfigHelp(w, cfgPath)
	case "markdown":
		printMarkdownHelp(w)
	case "grammar":
		printGrammarHelp(w)
	default:
		fmt.Fprintf(w, "unknown help topic %q\n\n", topic)
		printRootHelp(w, cfgPath)
	}
}

func printRootHelp(w io.Writer, cfgPath string) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "argv v%s\n", version)
	fmt.Fprintln(tw, "Show how command lines split into a program, named options, and orphans.")
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "USAGE")
	fmt.Fprintln(tw, "  argv <command> [args] [flags]")
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "GLOBAL FLAGS")
	fmt.Fprintln(tw, "  --config <path>\tconfig file path (or ARGV_CONFIG)")
	fmt.Fprintln(tw, "  --format <text|json|markdown>\treport format for this call")
	fmt.Fprintln(tw, "  --no-markdown\tprint markdown reports without terminal styling")
	fmt.Fprintln(tw, "  --help [topic]\tshow help")
	fmt.Fprintln(tw, "  --version\tshow version")
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "COMMANDS")
	fmt.Fprintln(tw, "  explain <line>...\tparse command lines and report the result")
	fmt.Fprintln(tw, "  get <line> <name>\tlook up one option as a typed value")
	fmt.Fprintln(tw, "  repl\tparse command lines interactively")
	fmt.Fprintln(tw, "  config\tshow config and paths, set defaults")
	fmt.Fprintln(tw, "  markdown\ttoggle markdown styling")
	fmt.Fprintln(tw, "  help [topic]\tshow topic help")
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "EXAMPLES")
	fmt.Fprintln(tw, "  argv explain \"foo --no-bar --baz 42 --baz 69 extra\"")
	fmt.Fprintln(tw, "  argv get \"foo --baz 42 --baz 69\" baz --type int --all")
	fmt.Fprintln(tw, "  argv explain \"foo --qux 'Hello, world!'\" --format json")
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "TOPICS")
	fmt.Fprintln(tw, "  argv help explain|get|repl|config|markdown|grammar")
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "CONFIG")
	fmt.Fprintf(tw, "  File:\t%s\n", cfgPath)
	fmt.Fprintf(tw, "  History:\t%s\n", config.HistoryPathForConfig(cfgPath))
	fmt.Fprintln(tw, "  ARGV_CONFIG_DIR:\tdefault config directory override")

	_ = tw.Flush()
}

func printExplainHelp(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "USAGE")
	fmt.Fprintln(tw, "  argv explain \"<command line>\"... [--format <text|json|markdown>]")
	fmt.Fprintln(tw, "  some-command-generator | argv explain")
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "NOTES")
	fmt.Fprintln(tw, "  Each line is split with shell quoting rules, then parsed")
	fmt.Fprintln(tw, "  With no lines, non-empty stdin lines are read (# starts a comment)")
	fmt.Fprintln(tw, "  Exits non-zero when any line fails to parse")
	_ = tw.Flush()
}

func printGetHelp(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "USAGE")
	fmt.Fprintln(tw, "  argv get \"<command line>\" <name> [--type <type>] [--all]")
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "OPTIONS")
	fmt.Fprintln(tw, "  --type <type>\tstring, bool, int, uint, float, duration or ip (default: string)")
	fmt.Fprintln(tw, "  --all\tconvert every value; absent if any one fails")
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "NOTES")
	fmt.Fprintln(tw, "  Without --all the last value wins")
	fmt.Fprintln(tw, "  A value that does not convert is reported as <absent>")
	fmt.Fprintln(tw, "  --all takes the next token as its value, so put it last")
	_ = tw.Flush()
}

func printREPLHelp(w io.Writer, cfgPath string) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "USAGE")
	fmt.Fprintln(tw, "  argv repl")
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "KEYS")
	fmt.Fprintln(tw, "  Enter\tparse the line")
	fmt.Fprintln(tw, "  Ctrl+C\tdiscard the line; on an empty line, leave")
	fmt.Fprintln(tw, "  Ctrl+D, exit, quit\tleave")
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "  History:\t%s\n", config.HistoryPathForConfig(cfgPath))
	_ = tw.Flush()
}

func printConfigHelp(w io.Writer, cfgPath string) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "USAGE")
	fmt.Fprintln(tw, "  argv config show")
	fmt.Fprintln(tw, "  argv config path")
	fmt.Fprintln(tw, "  argv config history")
	fmt.Fprintln(tw, "  argv config format [text|json|markdown]")
	fmt.Fprintln(tw, "  argv config prompt [text]")
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "PATHS")
	fmt.Fprintf(tw, "  Config:\t%s\n", cfgPath)
	_ = tw.Flush()
}

func printMarkdownHelp(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "USAGE")
	fmt.Fprintln(tw, "  argv markdown on")
	fmt.Fprintln(tw, "  argv markdown off")
	fmt.Fprintln(tw, "  argv markdown status")
	_ = tw.Flush()
}

func printGrammarHelp(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "GRAMMAR")
	fmt.Fprintln(tw, "  program\tfirst token; must not start with --")
	fmt.Fprintln(tw, "  --name value\tappends value to name")
	fmt.Fprintln(tw, "  --name\tappends true when followed by a flag or the end")
	fmt.Fprintln(tw, "  --no-name\tappends false to name when followed by a flag or the end")
	fmt.Fprintln(tw, "  anything else\tan orphan")
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "NOTES")
	fmt.Fprintln(tw, "  --name true and a bare --name store the same value")
	fmt.Fprintln(tw, "  so argv's own --config, --format and --type reject true and false")
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "ERRORS")
	fmt.Fprintln(tw, "  no tokens, or a flag as the program")
	fmt.Fprintln(tw, "  a bare --")
	fmt.Fprintln(tw, "  a bare --no- with no value")
	_ = tw.Flush()
}
