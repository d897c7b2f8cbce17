package cli

import (
	"fmt"
	"os"
	"strings"
)

func (a *App) runConfig(args []string) error {
	if len(args) == 0 {
		return a.configShow()
	}
	if a.showTopicHelpIfRequested("config", args, 0) {
		return nil
	}

	sub := strings.ToLower(strings.TrimSpace(args[0]))
	switch sub {
	case "show":
		if a.showTopicHelpIfRequested("config", args, 1) {
			return nil
		}
		return a.configShow()
	case "path":
		if a.showTopicHelpIfRequested("config", args, 1) {
			return nil
		}
		fmt.Fprintln(a.stdout, a.cfgPath)
		return nil
	case "history":
		fmt.Fprintln(a.stdout, a.cfg.ResolveHistoryPath(a.cfgPath))
		return nil
	case "format":
		if len(args) < 2 {
			fmt.Fprintf(a.stdout, "format=%s\n", a.cfg.Format)
			return nil
		}
		if a.showTopicHelpIfRequested("config", args, 1) {
			return nil
		}
		if err := a.cfg.SetFormat(args[1]); err != nil {
			return err
		}
		if err := a.saveConfig(); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "default format set to %s\n", a.cfg.Format)
		return nil
	case "prompt":
		if len(args) < 2 {
			fmt.Fprintf(a.stdout, "prompt=%q\n", a.cfg.Prompt)
			return nil
		}
		a.cfg.Prompt = args[1]
		if err := a.saveConfig(); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "prompt set to %q\n", a.cfg.Prompt)
		return nil
	default:
		return unknownSubcommand("config", sub)
	}
}

func (a *App) configShow() error {
	buf, err := os.ReadFile(a.cfgPath)
	if err != nil {
		return err
	}
	if _, err := a.stdout.Write(buf); err != nil {
		return err
	}
	if len(buf) == 0 || buf[len(buf)-1] != '\n' {
		fmt.Fprintln(a.stdout)
	}
	return nil
}
