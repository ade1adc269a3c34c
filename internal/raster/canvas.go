// Package raster paints a dom element tree for presentation: as styled
// terminal text through lipgloss, or as a PNG through gg.
package raster

import (
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/dom"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/layout"
)

// Cell is one painted terminal cell.
type Cell struct {
	Rune rune
	Bg   string
	Fg   string
	Bold bool
}

// Canvas is a painted grid of cells, indexed [row][col].
type Canvas [][]Cell

// Paint paints root and its visible descendants into a canvas the size of
// root. Parents paint before children and siblings in order; anything
// outside root is clipped.
func Paint(root *dom.Element) Canvas {
	size := root.Bounds()
	cv := make(Canvas, size.Height)
	for y := range cv {
		cv[y] = make([]Cell, size.Width)
		for x := range cv[y] {
			cv[y][x].Rune = ' '
		}
	}
	root.Walk(func(el *dom.Element, abs layout.Rect) {
		// The root's own offset is not part of the canvas.
		abs.X -= size.X
		abs.Y -= size.Y
		if fill := el.Fill(); fill != "" {
			cv.fill(abs, fill)
		}
		if t := el.Text(); t.Value != "" {
			cv.text(abs, t)
		}
	})
	return cv
}

// Size returns the canvas width and height.
func (cv Canvas) Size() (width, height int) {
	if len(cv) == 0 {
		return 0, 0
	}
	return len(cv[0]), len(cv)
}

// Row returns the runes of row y.
func (cv Canvas) Row(y int) string {
	runes := make([]rune, len(cv[y]))
	for x, c := range cv[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}

func (cv Canvas) fill(r layout.Rect, color string) {
	cv.each(r, func(c *Cell) {
		c.Bg = color
		c.Rune = ' '
		c.Fg = ""
		c.Bold = false
	})
}

// each calls fn for every cell of r inside the canvas.
func (cv Canvas) each(r layout.Rect, fn func(*Cell)) {
	w, h := cv.Size()
	for y := max(r.Y, 0); y < min(r.Bottom(), h); y++ {
		for x := max(r.X, 0); x < min(r.Right(), w); x++ {
			fn(&cv[y][x])
		}
	}
}

// text draws a single line inside r, truncated to r's width. Each rune
// takes one cell.
func (cv Canvas) text(r layout.Rect, t dom.Text) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	runes := []rune(t.Display())
	if len(runes) > r.Width {
		runes = runes[:r.Width]
	}
	width := len(runes)

	x := r.X
	switch t.Align {
	case dom.AlignCenter:
		x += (r.Width - width) / 2
	case dom.AlignRight:
		x += r.Width - width
	default:
		x += min(t.Indent, r.Width-width)
	}
	y := r.Y
	switch t.VAlign {
	case dom.VAlignMiddle:
		y += (r.Height - 1) / 2
	case dom.VAlignBottom:
		y += r.Height - 1
	}

	w, h := cv.Size()
	if y < 0 || y >= h {
		return
	}
	for i, rn := range runes {
		cx := x + i
		if cx < 0 || cx >= w {
			continue
		}
		c := &cv[y][cx]
		c.Rune = rn
		c.Fg = t.Color
		c.Bold = t.Bold
	}
}
