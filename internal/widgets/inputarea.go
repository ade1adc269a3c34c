package widgets

import (
	"errors"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/layout"
)

// InputAreaOptions configures an InputArea.
type InputAreaOptions struct {
	ID          string
	Border      int
	BorderColor string
	Padding     int
	InsideColor string
	Child       TextSetter
	OnClick     func()
}

// InputArea frames a text widget with a solid border and optional padding.
// It is built from nested single-cell grids: the outer grid's margin is the
// border, an inner grid's margin the padding.
type InputArea struct {
	opts  InputAreaOptions
	outer *layout.Grid
	inner *layout.Grid
}

// NewInputArea returns an input area around opts.Child.
func NewInputArea(opts InputAreaOptions) (*InputArea, error) {
	if opts.Child == nil {
		return nil, errors.New("widgets: input area needs a child")
	}
	if opts.Border < 0 || opts.Padding < 0 {
		return nil, layout.ErrNegativeInset
	}
	a := &InputArea{opts: opts}

	inside := layout.Renderable(opts.Child)
	if opts.Padding > 0 {
		inner, err := layout.NewGrid(layout.GridOptions{
			ID:      opts.ID + "-padded",
			Rows:    1,
			Cols:    1,
			Widths:  []layout.SizeSpec{layout.Fill()},
			Heights: []layout.SizeSpec{layout.Fill()},
			Margins: layout.MarginsAll(opts.Padding),
			Content: []layout.Slot{layout.Leaf(opts.Child)},
		})
		if err != nil {
			return nil, err
		}
		a.inner = inner
		inside = inner
	}

	outer, err := layout.NewGrid(layout.GridOptions{
		ID:          opts.ID,
		Rows:        1,
		Cols:        1,
		Widths:      []layout.SizeSpec{layout.Fill()},
		Heights:     []layout.SizeSpec{layout.Fill()},
		Margins:     layout.MarginsAll(opts.Border),
		Color:       opts.InsideColor,
		MarginColor: opts.BorderColor,
		Content:     []layout.Slot{layout.Leaf(inside)},
	})
	if err != nil {
		return nil, err
	}
	a.outer = outer
	return a, nil
}

// Render lays the border and padding out over c and renders the child.
func (a *InputArea) Render(c layout.Container) error {
	if err := a.outer.Render(c); err != nil {
		return err
	}
	if a.opts.OnClick != nil {
		s, err := surface(c)
		if err != nil {
			return err
		}
		s.OnClick(a.opts.OnClick)
	}
	return nil
}

// Mounted returns the element the area was rendered into, or nil.
func (a *InputArea) Mounted() layout.Container { return a.outer.Mounted() }

// Child returns the framed widget.
func (a *InputArea) Child() TextSetter { return a.opts.Child }

// SetText replaces the child's text.
func (a *InputArea) SetText(text string) { a.opts.Child.SetText(text) }

// SetBgColor changes the colour inside the border, including the padding
// and a text input's own background.
func (a *InputArea) SetBgColor(color string) {
	a.opts.InsideColor = color
	if cell := a.outer.Cell(0); cell != nil {
		cell.SetFill(color)
	}
	if a.inner != nil {
		if cell := a.inner.Cell(0); cell != nil {
			cell.SetFill(color)
		}
	}
	if in, ok := a.opts.Child.(*TextInput); ok {
		in.SetBgColor(color)
	}
}
