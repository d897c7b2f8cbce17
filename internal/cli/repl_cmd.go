package cli

import (
	"fmt"

	"github.com/sasanktumpati/argv/internal/render"
	"github.com/sasanktumpati/argv/internal/repl"
)

func (a *App) runREPL(args []string) error {
	if a.showTopicHelpIfRequested("repl", args, 0) {
		return nil
	}
	if len(args) > 0 {
		return usageError("repl", "argv repl")
	}

	opts := a.reportOptions()
	fmt.Fprintln(a.stdout, "Type a command line to see how it parses. exit, quit or Ctrl+D to leave.")
	return repl.Run(repl.Options{
		Prompt:      a.cfg.Prompt,
		HistoryFile: a.cfg.ResolveHistoryPath(a.cfgPath),
		Stdin:       a.stdin,
		Stdout:      a.stdout,
		Stderr:      a.stderr,
		Eval: func(line string) error {
			report, err := explainLine(line)
			if err != nil {
				return err
			}
			return render.Write(a.stdout, report, opts)
		},
	})
}
