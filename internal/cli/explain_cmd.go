package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sasanktumpati/argv/internal/config"
	"github.com/sasanktumpati/argv/internal/render"
)

func (a *App) runExplain(lines []string) error {
	if a.showTopicHelpIfRequested("explain", lines, 0) {
		return nil
	}
	if len(lines) == 0 {
		if isTerminalReader(a.stdin) {
			return usageError("explain", `argv explain "<command line>"...`)
		}
		read, err := readLines(a.stdin)
		if err != nil {
			return err
		}
		lines = read
	}
	if len(lines) == 0 {
		return usageError("explain", `argv explain "<command line>"...`)
	}

	opts := a.reportOptions()
	failed := 0
	for i, line := range lines {
		report, err := explainLine(line)
		if err != nil {
			return err
		}
		if report.Err != nil {
			failed++
		}
		if i > 0 && opts.Format != config.FormatJSON {
			fmt.Fprintln(a.stdout)
		}
		if err := render.Write(a.stdout, report, opts); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d command lines failed to parse", failed, len(lines))
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read command lines: %w", err)
	}
	return lines, nil
}
