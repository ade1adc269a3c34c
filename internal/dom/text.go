package dom

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Align is a horizontal text alignment.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// VAlign is a vertical text alignment.
type VAlign string

const (
	VAlignTop    VAlign = "top"
	VAlignMiddle VAlign = "middle"
	VAlignBottom VAlign = "bottom"
)

// Text is a single styled run of text drawn inside an element.
type Text struct {
	Value string
	Color string
	Bold  bool
	// Size is the font size in percent of the base size; 0 means 100.
	Size          float64
	Align         Align
	VAlign        VAlign
	LetterSpacing int
	// Indent is the left offset in cells for left-aligned text.
	Indent int
}

// Display returns the value with letter spacing applied.
func (t Text) Display() string {
	if t.LetterSpacing <= 0 || t.Value == "" {
		return t.Value
	}
	runes := []rune(t.Value)
	out := make([]rune, 0, len(runes)*(1+t.LetterSpacing))
	for i, r := range runes {
		out = append(out, r)
		if i < len(runes)-1 {
			for j := 0; j < t.LetterSpacing; j++ {
				out = append(out, ' ')
			}
		}
	}
	return string(out)
}

// MeasureText returns the width in cells of s drawn at size percent of the
// base font size.
func MeasureText(s string, size float64) int {
	if size <= 0 {
		size = 100
	}
	return int(math.Ceil(float64(lipgloss.Width(s)) * size / 100))
}
