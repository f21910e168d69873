package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown renders AI output for the result panels. The providers
// are asked for markdown in two of the four use cases; plain text passes
// through glamour unharmed. Falls back to the raw text on render errors.
func renderMarkdown(text string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

// hasContent reports whether user input contains anything but whitespace.
func hasContent(s string) bool {
	return strings.TrimSpace(s) != ""
}
