// Package widgets provides leaf renderables for grid cells: buttons,
// captions, text inputs, a modal overlay and a bordered input area.
//
// Widgets draw into dom elements. Each remembers the element it was rendered
// into and reports it through Mounted, so a grid that meets an already
// rendered widget moves the existing element instead of drawing it again.
package widgets

import (
	"errors"
	"fmt"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/dom"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/layout"
)

// ErrNoSurface is returned when a widget is rendered into a container that
// cannot carry text, classes or click handlers.
var ErrNoSurface = errors.New("widgets: container is not a drawing surface")

// ErrMissingColor is returned when a status has no colour configured.
var ErrMissingColor = errors.New("widgets: no colour for status")

// Surface is a container that can show text and react to clicks.
// *dom.Element implements it.
type Surface interface {
	layout.Container
	SetText(t dom.Text)
	SetClass(cls string)
	SetVisible(v bool)
	OnClick(fn func())
}

// TextSetter is a widget whose text can be replaced after rendering.
type TextSetter interface {
	layout.Renderable
	SetText(text string)
}

var _ Surface = (*dom.Element)(nil)

func surface(c layout.Container) (Surface, error) {
	s, ok := c.(Surface)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNoSurface, c)
	}
	return s, nil
}

// fontSize converts a size relative to the base font into a percentage.
// Zero means the base size.
func fontSize(rel float64) float64 {
	if rel <= 0 {
		return 100
	}
	return rel * 100
}
