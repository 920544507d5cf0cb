package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockwalk/blockwalk/pkg/primitives"
)

func TestRenderGrid_MultibyteCellsStayAligned(t *testing.T) {
	r := &FrameRenderer{profile: termenv.Ascii, width: 80}
	g := primitives.Grid{
		Headers: []string{"block", "ecb"},
		Rows: [][]primitives.Cell{
			{{Text: "deadbeef"}, {Text: "·"}},
			{{Text: "c0ffee11"}, {Text: "ab12cd34"}},
		},
	}

	lines := strings.Split(strings.TrimRight(r.renderGrid(g), "\n"), "\n")
	require.Len(t, lines, 3)

	// Every row must span the same number of columns on screen, regardless
	// of how many bytes a cell glyph takes.
	want := utf8.RuneCountInString(lines[0])
	for _, line := range lines[1:] {
		assert.Equal(t, want, utf8.RuneCountInString(line), "line %q", line)
	}
}

func TestPad_CountsRunes(t *testing.T) {
	assert.Equal(t, "·   ", pad("·", 4))
	assert.Equal(t, "abcd", pad("abcd", 4))
	assert.Equal(t, "abcde", pad("abcde", 4))
}
