package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sasanktumpati/argv/arguments"
	"github.com/sasanktumpati/argv/internal/config"
)

// Report describes one parsed command line. Exactly one of Args and Err is set.
type Report struct {
	Line   string
	Tokens []string
	Args   *arguments.Arguments
	Err    error
}

// Options controls how reports are written.
type Options struct {
	Format         string
	Width          int
	RenderMarkdown bool
}

type jsonOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type jsonReport struct {
	Line    string       `json:"line,omitempty"`
	Tokens  []string     `json:"tokens"`
	Program *string      `json:"program,omitempty"`
	Options []jsonOption `json:"options,omitempty"`
	Orphans []string     `json:"orphans,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// Write writes r to w in the requested format.
func Write(w io.Writer, r Report, opts Options) error {
	switch opts.Format {
	case config.FormatJSON:
		return writeJSON(w, toJSON(r))
	case config.FormatMarkdown:
		_, err := fmt.Fprintln(w, Markdown(MarkdownReport(r), opts.Width, opts.RenderMarkdown))
		return err
	default:
		return writeText(w, r)
	}
}

// MarkdownReport returns the markdown source for r.
func MarkdownReport(r Report) string {
	var b strings.Builder
	if r.Line != "" {
		fmt.Fprintf(&b, "### %s\n\n", codeSpan(r.Line))
	}
	if r.Err != nil {
		fmt.Fprintf(&b, "**Error:** %s\n", r.Err)
		return b.String()
	}

	fmt.Fprintf(&b, "**Program:** %s\n\n", codeSpan(r.Args.Program()))
	opts := r.Args.Options()
	if opts.Len() > 0 {
		b.WriteString("| Option | Values |\n|---|---|\n")
		for _, name := range opts.Names() {
			values, _ := opts.Values(name)
			cells := make([]string, len(values))
			for i, v := range values {
				cells[i] = tableCell(v)
			}
			fmt.Fprintf(&b, "| %s | %s |\n", tableCell(name), strings.Join(cells, ", "))
		}
		b.WriteString("\n")
	}
	if orphans := r.Args.Orphans(); len(orphans) > 0 {
		spans := make([]string, len(orphans))
		for i, o := range orphans {
			spans[i] = codeSpan(o)
		}
		fmt.Fprintf(&b, "**Orphans:** %s\n", strings.Join(spans, ", "))
	}
	return b.String()
}

func toJSON(r Report) jsonReport {
	out := jsonReport{Line: r.Line, Tokens: r.Tokens}
	if out.Tokens == nil {
		out.Tokens = []string{}
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
		return out
	}
	program := r.Args.Program()
	out.Program = &program
	for _, name := range r.Args.Options().Names() {
		values, _ := r.Args.Options().Values(name)
		out.Options = append(out.Options, jsonOption{Name: name, Values: values})
	}
	out.Orphans = r.Args.Orphans()
	return out
}

func writeJSON(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func writeText(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	if r.Line != "" {
		fmt.Fprintf(tw, "line\t%s\n", r.Line)
	}
	if r.Err != nil {
		fmt.Fprintf(tw, "error\t%s\n", r.Err)
		return tw.Flush()
	}
	fmt.Fprintf(tw, "program\t%q\n", r.Args.Program())
	for _, name := range r.Args.Options().Names() {
		values, _ := r.Args.Options().Values(name)
		fmt.Fprintf(tw, "--%s\t%s\n", name, quoteAll(values))
	}
	if orphans := r.Args.Orphans(); len(orphans) > 0 {
		fmt.Fprintf(tw, "orphans\t%s\n", quoteAll(orphans))
	}
	return tw.Flush()
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, " ")
}
