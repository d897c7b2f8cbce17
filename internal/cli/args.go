package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sasanktumpati/argv/arguments"
	"github.com/sasanktumpati/argv/internal/config"
)

type globalOptions struct {
	ConfigPath  string
	Format      string
	Markdown    *bool
	ShowHelp    bool
	HelpTopic   string
	ShowVersion bool
}

type getOptions struct {
	Type string
	All  bool
}

var globalOptionNames = []string{"config", "format", "markdown", "help", "version"}

var commandOptionNames = map[string][]string{
	"get": {"type", "all"},
}

func parseGlobalArgs(args *arguments.Arguments) (globalOptions, error) {
	opts := globalOptions{}

	path, err := valueOption(args, "config")
	if err != nil {
		return opts, err
	}
	opts.ConfigPath = path

	format, err := valueOption(args, "format")
	if err != nil {
		return opts, err
	}
	format = strings.ToLower(format)
	if format != "" && !config.ValidFormat(format) {
		return opts, fmt.Errorf("unknown format %q (want %s, %s or %s)", format, config.FormatText, config.FormatJSON, config.FormatMarkdown)
	}
	opts.Format = format

	markdown, ok, err := boolOption(args, "markdown")
	if err != nil {
		return opts, err
	}
	if ok {
		opts.Markdown = &markdown
	}

	// --help takes an optional topic: "argv --help get".
	if raw, ok := args.Lookup("help"); ok {
		switch raw {
		case "true":
			opts.ShowHelp = true
		case "false":
		default:
			opts.ShowHelp = true
			opts.HelpTopic = strings.ToLower(strings.TrimSpace(raw))
		}
	}

	version, _, err := boolOption(args, "version")
	if err != nil {
		return opts, err
	}
	opts.ShowVersion = version
	return opts, nil
}

func parseGetArgs(args *arguments.Arguments) (getOptions, error) {
	opts := getOptions{Type: "string"}

	typ, err := valueOption(args, "type")
	if err != nil {
		return opts, err
	}
	if typ != "" {
		opts.Type = strings.ToLower(typ)
	}

	all, _, err := boolOption(args, "all")
	if err != nil {
		return opts, err
	}
	opts.All = all
	return opts, nil
}

// valueOption returns the last value of an option that needs one. A bare flag
// is stored as "true", so the literal values true and false read as missing.
func valueOption(args *arguments.Arguments, name string) (string, error) {
	if !args.Options().Has(name) {
		return "", nil
	}
	if _, isBool := arguments.Get[bool](args, name); isBool {
		return "", fmt.Errorf("%s requires a value (true and false read as a bare flag)", formatFlagName(name))
	}
	value, _ := arguments.Get[string](args, name)
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s requires a non-empty value", formatFlagName(name))
	}
	return value, nil
}

func boolOption(args *arguments.Arguments, name string) (value bool, present bool, err error) {
	if !args.Options().Has(name) {
		return false, false, nil
	}
	value, ok := arguments.Get[bool](args, name)
	if !ok {
		raw, _ := args.Lookup(name)
		return false, true, fmt.Errorf("%s does not accept a value (got %q; put it last or before another flag)", formatFlagName(name), raw)
	}
	return value, true, nil
}

// checkOptions rejects options that command does not understand. Help accepts
// every known option so "argv get ... --help" works.
func checkOptions(args *arguments.Arguments, command string) error {
	for _, name := range args.Options().Names() {
		if slices.Contains(globalOptionNames, name) || slices.Contains(commandOptionNames[command], name) {
			continue
		}
		if command == "help" && isKnownOption(name) {
			continue
		}
		return fmt.Errorf("unknown option %s (use --help)", formatFlagName(name))
	}
	return nil
}

func isKnownOption(name string) bool {
	for _, names := range commandOptionNames {
		if slices.Contains(names, name) {
			return true
		}
	}
	return false
}

func formatFlagName(name string) string {
	return "--" + name
}
