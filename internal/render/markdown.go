package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

const defaultWidth = 100

var rendererCache sync.Map

// Markdown renders text as terminal markdown when enabled.
// It falls back to plain trimmed text if rendering fails.
func Markdown(text string, width int, enabled bool) string {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return ""
	}
	if !enabled {
		return clean
	}
	if width <= 0 {
		width = defaultWidth
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return clean
	}
	out, err := renderer.Render(clean)
	if err != nil {
		return clean
	}
	return out
}

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		if r, ok := cached.(*glamour.TermRenderer); ok {
			return r, nil
		}
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	rendererCache.Store(width, renderer)
	return renderer, nil
}

// codeSpan wraps s in a backtick fence one longer than the longest backtick
// run inside s.
func codeSpan(s string) string {
	if s == "" {
		return "` `"
	}
	longest, run := 0, 0
	for _, r := range s {
		if r != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	if longest == 0 {
		return "`" + s + "`"
	}
	fence := strings.Repeat("`", longest+1)
	return fence + " " + s + " " + fence
}

func tableCell(s string) string {
	return strings.ReplaceAll(codeSpan(s), "|", `\|`)
}
