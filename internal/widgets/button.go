package widgets

import (
	"fmt"
	"math"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/dom"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/layout"
)

// Status is the selection state of a Button.
type Status string

const (
	StatusDefault  Status = "default"
	StatusSelected Status = "selected"
	StatusDisabled Status = "disabled"
)

// ButtonOptions configures a Button.
type ButtonOptions struct {
	ID        string
	Caption   string
	Color     string
	TextColor string
	// SelectedColor and DisabledColor are required before the button can
	// enter the matching status.
	SelectedColor string
	DisabledColor string
	// Size is the caption size relative to the base font; 0 means 1.
	Size float64
	// LeftAligned puts the caption at the left edge, indented by a quarter
	// of the button height. Captions are centred otherwise.
	LeftAligned bool
	// Class is the base class name. The status adds "selected" or
	// "disabled" to it.
	Class   string
	OnClick func()
}

// Button is a clickable caption with a status-dependent background.
type Button struct {
	opts   ButtonOptions
	status Status
	el     Surface
}

// NewButton returns a button in the default status.
func NewButton(opts ButtonOptions) *Button {
	return &Button{opts: opts, status: StatusDefault}
}

// Render draws the button into c.
func (b *Button) Render(c layout.Container) error {
	s, err := surface(c)
	if err != nil {
		return err
	}
	b.el = s
	if err := b.paint(); err != nil {
		return err
	}
	b.applyClass()
	s.SetText(b.text())
	s.OnClick(b.opts.OnClick)
	return nil
}

// Mounted returns the element the button was rendered into, or nil.
func (b *Button) Mounted() layout.Container {
	if b.el == nil {
		return nil
	}
	return b.el
}

// Caption returns the current caption.
func (b *Button) Caption() string { return b.opts.Caption }

// SetText replaces the caption.
func (b *Button) SetText(text string) {
	b.opts.Caption = text
	if b.el != nil {
		b.el.SetText(b.text())
	}
}

// Status returns the current status.
func (b *Button) Status() Status { return b.status }

// SetStatus changes the status and repaints a rendered button. It fails
// when the status has no colour configured; the status is left unchanged.
func (b *Button) SetStatus(st Status) error {
	if _, err := b.statusColor(st); err != nil {
		return err
	}
	b.status = st
	if b.el != nil {
		if err := b.paint(); err != nil {
			return err
		}
		b.applyClass()
	}
	return nil
}

// ToggleStatus flips between default and selected. Disabled buttons stay
// disabled.
func (b *Button) ToggleStatus() error {
	switch b.status {
	case StatusDisabled:
		return nil
	case StatusSelected:
		return b.SetStatus(StatusDefault)
	default:
		return b.SetStatus(StatusSelected)
	}
}

func (b *Button) statusColor(st Status) (string, error) {
	switch st {
	case StatusDefault:
		return b.opts.Color, nil
	case StatusSelected:
		if b.opts.SelectedColor == "" {
			return "", fmt.Errorf("%w: %s on button %q", ErrMissingColor, st, b.opts.ID)
		}
		return b.opts.SelectedColor, nil
	case StatusDisabled:
		if b.opts.DisabledColor == "" {
			return "", fmt.Errorf("%w: %s on button %q", ErrMissingColor, st, b.opts.ID)
		}
		return b.opts.DisabledColor, nil
	default:
		return "", fmt.Errorf("widgets: unknown button status %q", st)
	}
}

func (b *Button) paint() error {
	color, err := b.statusColor(b.status)
	if err != nil {
		return err
	}
	// The default colour falls back to whatever the cell already has.
	layout.SetFill(b.el, color, b.el.Fill())
	return nil
}

func (b *Button) applyClass() {
	if b.opts.Class == "" {
		return
	}
	switch b.status {
	case StatusSelected:
		b.el.SetClass("selected " + b.opts.Class)
	case StatusDisabled:
		b.el.SetClass(b.opts.Class + " disabled")
	default:
		b.el.SetClass(b.opts.Class)
	}
}

func (b *Button) text() dom.Text {
	t := dom.Text{
		Value:  b.opts.Caption,
		Color:  b.opts.TextColor,
		Bold:   true,
		Size:   fontSize(b.opts.Size),
		Align:  dom.AlignCenter,
		VAlign: dom.VAlignMiddle,
	}
	if b.opts.LeftAligned {
		t.Align = dom.AlignLeft
		t.Indent = int(math.Floor(float64(b.el.Bounds().Height)/4 + 0.5))
	}
	return t
}
