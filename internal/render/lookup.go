package render

import (
	"fmt"
	"io"

	"github.com/sasanktumpati/argv/internal/config"
)

// Lookup is the outcome of a typed option lookup.
type Lookup struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	All   bool   `json:"all"`
	Found bool   `json:"found"`
	Value any    `json:"value,omitempty"`
}

// WriteLookup writes l to w. Markdown is written as text.
func WriteLookup(w io.Writer, l Lookup, opts Options) error {
	if opts.Format == config.FormatJSON {
		return writeJSON(w, l)
	}
	if !l.Found {
		_, err := fmt.Fprintf(w, "%s (%s): <absent>\n", l.Name, l.Type)
		return err
	}
	_, err := fmt.Fprintf(w, "%s (%s): %v\n", l.Name, l.Type, l.Value)
	return err
}
