package cli

import (
	"fmt"

	"github.com/google/shlex"

	"github.com/sasanktumpati/argv/arguments"
	"github.com/sasanktumpati/argv/internal/render"
)

// splitLine splits a command line into tokens using shell quoting rules.
func splitLine(line string) ([]string, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("split %q: %w", line, err)
	}
	return tokens, nil
}

// explainLine splits and parses line. Parse failures are carried in the
// report; only a split failure is returned as an error.
func explainLine(line string) (render.Report, error) {
	tokens, err := splitLine(line)
	if err != nil {
		return render.Report{}, err
	}
	args, err := arguments.Parse(tokens)
	return render.Report{Line: line, Tokens: tokens, Args: args, Err: err}, nil
}
