package raster

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/dom"
)

// Terminal paints root and encodes the result as terminal text, one line per
// row.
func Terminal(root *dom.Element) string {
	return Paint(root).Encode()
}

// Encode renders the canvas with lipgloss. Runs of cells sharing a style are
// rendered together.
func (cv Canvas) Encode() string {
	lines := make([]string, len(cv))
	for y, row := range cv {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && sameStyle(row[x], row[start]) {
				continue
			}
			b.WriteString(cellStyle(row[start]).Render(runesOf(row[start:x])))
			start = x
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func sameStyle(a, b Cell) bool {
	return a.Bg == b.Bg && a.Fg == b.Fg && a.Bold == b.Bold
}

func cellStyle(c Cell) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c.Bg != "" {
		st = st.Background(lipgloss.Color(c.Bg))
	}
	if c.Fg != "" {
		st = st.Foreground(lipgloss.Color(c.Fg))
	}
	if c.Bold {
		st = st.Bold(true)
	}
	return st
}

func runesOf(cells []Cell) string {
	runes := make([]rune, len(cells))
	for i, c := range cells {
		runes[i] = c.Rune
	}
	return string(runes)
}
