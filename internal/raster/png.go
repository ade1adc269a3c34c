package raster

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gg"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/dom"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/layout"
)

// WritePNG draws every visible filled element under root as a rectangle,
// one cell scaled to scale×scale pixels, and writes the image as PNG. Text
// is not drawn.
func WritePNG(w io.Writer, root *dom.Element, scale int) error {
	if scale < 1 {
		return fmt.Errorf("raster: scale %d must be at least 1", scale)
	}
	size := root.Bounds()
	if size.Width <= 0 || size.Height <= 0 {
		return fmt.Errorf("raster: nothing to draw in %v", size)
	}

	dc := gg.NewContext(size.Width*scale, size.Height*scale)
	defer dc.Close()

	s := float64(scale)
	var fillErr error
	root.Walk(func(el *dom.Element, abs layout.Rect) {
		if fillErr != nil || el.Fill() == "" {
			return
		}
		dc.SetHexColor(el.Fill())
		dc.DrawRectangle(float64(abs.X-size.X)*s, float64(abs.Y-size.Y)*s, float64(abs.Width)*s, float64(abs.Height)*s)
		fillErr = dc.Fill()
	})
	if fillErr != nil {
		return fmt.Errorf("raster: fill: %w", fillErr)
	}
	return dc.EncodePNG(w)
}

// SavePNG writes the PNG rendering of root to path.
func SavePNG(path string, root *dom.Element, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := WritePNG(f, root, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
