package cli

import (
	"fmt"
	"strings"
)

func (a *App) runMarkdown(args []string) error {
	if len(args) == 0 {
		return a.markdownStatus()
	}
	if a.showTopicHelpIfRequested("markdown", args, 0) {
		return nil
	}

	if a.showTopicHelpIfRequested("markdown", args, 1) {
		return nil
	}

	sub := strings.ToLower(strings.TrimSpace(args[0]))
	switch sub {
	case "on", "enable":
		return a.setMarkdown(true)
	case "off", "disable":
		return a.setMarkdown(false)
	case "status":
		return a.markdownStatus()
	default:
		return unknownSubcommand("markdown", sub)
	}
}

func (a *App) setMarkdown(enabled bool) error {
	a.cfg.RenderMarkdown = enabled
	if err := a.saveConfig(); err != nil {
		return err
	}
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Fprintf(a.stdout, "markdown styling %s\n", state)
	return nil
}

func (a *App) markdownStatus() error {
	status := "off"
	if a.cfg.RenderMarkdown {
		status = "on"
	}
	fmt.Fprintf(a.stdout, "markdown=%s\n", status)
	return nil
}
