package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sasanktumpati/argv/arguments"
	"github.com/sasanktumpati/argv/internal/config"
	"github.com/sasanktumpati/argv/internal/render"
)

// App encapsulates CLI runtime dependencies and loaded configuration.
type App struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	cfgPath string
	cfg     *config.Config
	args    *arguments.Arguments
	opts    globalOptions
}

// Run executes argv with the full process argument list, program name
// included, and the provided streams.
func Run(argv []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	parsed, err := arguments.Parse(argv)
	if err != nil {
		return err
	}
	global, err := parseGlobalArgs(parsed)
	if err != nil {
		return err
	}

	cfgPath, err := config.ResolvePath(global.ConfigPath)
	if err != nil {
		return err
	}
	cfg, loadErr := config.Load(cfgPath)
	if loadErr != nil && !errors.Is(loadErr, config.ErrConfigNotFound) {
		return loadErr
	}
	if errors.Is(loadErr, config.ErrConfigNotFound) {
		if err := config.Save(cfgPath, cfg); err != nil {
			return err
		}
	}

	app := &App{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		cfgPath: cfgPath,
		cfg:     cfg,
		args:    parsed,
		opts:    global,
	}
	rest := parsed.Orphans()
	if global.ShowVersion {
		fmt.Fprintln(app.stdout, version)
		return nil
	}
	if global.ShowHelp {
		helpArgs := append([]string{"help"}, global.HelpTopic)
		if global.HelpTopic == "" {
			helpArgs = append([]string{"help"}, rest...)
		}
		return app.dispatch(helpArgs)
	}
	return app.dispatch(rest)
}

func (a *App) dispatch(args []string) error {
	if len(args) == 0 {
		printHelp(a.stdout, "", a.cfgPath)
		return nil
	}

	sub := strings.ToLower(strings.TrimSpace(args[0]))
	if err := checkOptions(a.args, sub); err != nil {
		return err
	}
	switch sub {
	case "help":
		topic := ""
		if len(args) > 1 {
			topic = strings.ToLower(strings.TrimSpace(args[1]))
		}
		printHelp(a.stdout, topic, a.cfgPath)
		return nil
	case "version":
		fmt.Fprintln(a.stdout, version)
		return nil
	case "explain":
		return a.runExplain(args[1:])
	case "get":
		return a.runGet(args[1:])
	case "repl":
		return a.runREPL(args[1:])
	case "config":
		return a.runConfig(args[1:])
	case "markdown":
		return a.runMarkdown(args[1:])
	default:
		return fmt.Errorf("unknown command %q (use --help)", args[0])
	}
}

func (a *App) saveConfig() error {
	return config.Save(a.cfgPath, a.cfg)
}

// reportOptions resolves the output format and markdown rendering for this run.
func (a *App) reportOptions() render.Options {
	format := a.cfg.Format
	if a.opts.Format != "" {
		format = a.opts.Format
	}
	renderMarkdown := a.cfg.RenderMarkdown && isTerminalWriter(a.stdout)
	if a.opts.Markdown != nil {
		renderMarkdown = *a.opts.Markdown && isTerminalWriter(a.stdout)
	}
	return render.Options{
		Format:         format,
		Width:          terminalWidth(a.stdout),
		RenderMarkdown: renderMarkdown,
	}
}
