package tui

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/blockwalk/blockwalk/pkg/primitives"
)

// variantColors maps semantic variants to the terminal palette.
var variantColors = map[primitives.Variant]string{
	primitives.VariantPrimary: "#818cf8",
	primitives.VariantAccent:  "#c084fc",
	primitives.VariantSuccess: "#34d399",
	primitives.VariantWarning: "#fbbf24",
	primitives.VariantDanger:  "#fb7185",
}

// FrameRenderer renders primitive frames with termenv colors.
type FrameRenderer struct {
	profile termenv.Profile
	width   int
}

// NewFrameRenderer detects the color profile and terminal width.
func NewFrameRenderer() *FrameRenderer {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		width = w
	}
	return &FrameRenderer{profile: termenv.ColorProfile(), width: width}
}

func (r *FrameRenderer) colored(text string, v primitives.Variant) string {
	hex, ok := variantColors[v]
	if !ok {
		return text
	}
	return termenv.String(text).Foreground(r.profile.Color(hex)).String()
}

// Render lays the frame out as indented text: nodes, arrows, boxes, grids,
// notes, in declaration order.
func (r *FrameRenderer) Render(f *primitives.Frame) string {
	if f == nil {
		return ""
	}
	var sb strings.Builder
	title := termenv.String(f.Title).Bold().String()
	fmt.Fprintf(&sb, "\n  %s\n", title)

	for _, n := range f.Nodes {
		box := fmt.Sprintf("[ %s ]", n.Label)
		line := "  " + r.colored(box, n.Variant)
		if n.Detail != "" {
			line += "  " + n.Detail
		}
		if n.Active {
			line += "  " + r.colored("◀", primitives.VariantWarning)
		}
		sb.WriteString(line + "\n")
	}
	for _, a := range f.Arrows {
		label := a.Label
		if label != "" {
			label = " " + label + " "
		}
		fmt.Fprintf(&sb, "    %s ──%s──▶ %s\n", a.From, label, a.To)
	}
	for _, b := range f.Boxes {
		fmt.Fprintf(&sb, "  %-28s %s\n", b.Label+":", r.colored(b.Value, b.Variant))
	}
	for _, g := range f.Grids {
		sb.WriteString(r.renderGrid(g))
	}
	for _, n := range f.Notes {
		fmt.Fprintf(&sb, "  %s %s\n", r.colored("▪", primitives.VariantAccent), n.Text)
	}
	return sb.String()
}

func (r *FrameRenderer) renderGrid(g primitives.Grid) string {
	// Column widths from the widest cell, headers included. Widths count
	// runes, not bytes: grid cells carry multibyte glyphs like "·".
	widths := make([]int, len(g.Headers))
	for i, h := range g.Headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range g.Rows {
		for i, c := range row {
			if n := utf8.RuneCountInString(c.Text); i < len(widths) && n > widths[i] {
				widths[i] = n
			}
		}
	}

	var sb strings.Builder
	if g.Title != "" {
		fmt.Fprintf(&sb, "\n  %s\n", termenv.String(g.Title).Bold().String())
	}
	headers := make([]string, len(g.Headers))
	for i, h := range g.Headers {
		headers[i] = pad(h, widths[i])
	}
	fmt.Fprintf(&sb, "  %s\n", strings.Join(headers, "  "))
	for _, row := range g.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			cells[i] = r.colored(pad(c.Text, w), c.Variant)
		}
		fmt.Fprintf(&sb, "  %s\n", strings.Join(cells, "  "))
	}
	return sb.String()
}

func pad(s string, w int) string {
	n := utf8.RuneCountInString(s)
	if n >= w {
		return s
	}
	return s + strings.Repeat(" ", w-n)
}
