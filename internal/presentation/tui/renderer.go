package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders step markdown using glamour.
// It auto-detects light/dark backgrounds and wraps to the given width.
func NewRenderer(width int) func(string) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
