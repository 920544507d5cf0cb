// Package graph renders a walkthrough's step sequence as Mermaid flowchart
// syntax, for embedding in curriculum pages and READMEs.
package graph

import (
	"fmt"
	"strings"

	"github.com/blockwalk/blockwalk/pkg/domain"
)

// Overlay contains dynamic state data to visualize on the graph.
type Overlay struct {
	Visited  []int
	Position int
}

// GenerateMermaid produces a Mermaid flowchart from a step table. Shapes
// carry the semantics: the first step is a circle (entry), the last a double
// rectangle (terminal), everything between a rectangle. An optional overlay
// highlights visited steps and the current position.
func GenerateMermaid(steps []domain.Step, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, step := range steps {
		safeID := sanitizeMermaidID(step.ID)
		opener, closer := "[", "]"
		switch i {
		case 0:
			opener, closer = "((", "))"
		case len(steps) - 1:
			opener, closer = "[[", "]]"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, escapeMermaidLabel(step.Title), closer)

		if i < len(steps)-1 {
			fmt.Fprintf(&sb, "    %s --> %s\n", safeID, sanitizeMermaidID(steps[i+1].ID))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for contrast regardless of page theme.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[int]bool)
		for _, idx := range overlay.Visited {
			if idx < 0 || idx >= len(steps) || seen[idx] || idx == overlay.Position {
				continue
			}
			seen[idx] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", sanitizeMermaidID(steps[idx].ID))
		}
		if overlay.Position >= 0 && overlay.Position < len(steps) {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(steps[overlay.Position].ID))
		}
	}

	return sb.String()
}

func escapeMermaidLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
