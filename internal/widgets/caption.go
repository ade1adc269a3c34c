package widgets

import (
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/dom"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/layout"
)

// DefaultMinCaptionSize is the smallest size, in percent, a caption shrinks
// to when its text is replaced.
const DefaultMinCaptionSize = 50

// CaptionOptions configures a Caption.
type CaptionOptions struct {
	ID     string
	Text   string
	Color  string
	Size   float64
	Align  dom.Align
	VAlign dom.VAlign
	// MinSize bounds the fitted size, in percent. 0 means
	// DefaultMinCaptionSize.
	MinSize float64
	// Measure sizes text for fitting. nil means dom.MeasureText.
	Measure MeasureFunc
}

// Caption is a bold static label.
type Caption struct {
	opts CaptionOptions
	size float64
	el   Surface
}

// NewCaption returns a caption.
func NewCaption(opts CaptionOptions) *Caption {
	if opts.Align == "" {
		opts.Align = dom.AlignCenter
	}
	if opts.VAlign == "" {
		opts.VAlign = dom.VAlignMiddle
	}
	if opts.MinSize <= 0 {
		opts.MinSize = DefaultMinCaptionSize
	}
	if opts.Measure == nil {
		opts.Measure = dom.MeasureText
	}
	return &Caption{opts: opts, size: fontSize(opts.Size)}
}

// Render draws the caption into c at its configured size.
func (cp *Caption) Render(c layout.Container) error {
	s, err := surface(c)
	if err != nil {
		return err
	}
	cp.el = s
	s.SetText(cp.text())
	return nil
}

// Mounted returns the element the caption was rendered into, or nil.
func (cp *Caption) Mounted() layout.Container {
	if cp.el == nil {
		return nil
	}
	return cp.el
}

// Text returns the caption text.
func (cp *Caption) Text() string { return cp.opts.Text }

// Size returns the current font size in percent.
func (cp *Caption) Size() float64 { return cp.size }

// SetText replaces the text. On a rendered caption the size is fitted to
// the element width, never exceeding the configured size.
func (cp *Caption) SetText(text string) {
	cp.opts.Text = text
	if cp.el == nil {
		return
	}
	cp.size = FitText(text, cp.el.Bounds().Width, cp.opts.MinSize, fontSize(cp.opts.Size), cp.opts.Measure)
	cp.el.SetText(cp.text())
}

func (cp *Caption) text() dom.Text {
	return dom.Text{
		Value:  cp.opts.Text,
		Color:  cp.opts.Color,
		Bold:   true,
		Size:   cp.size,
		Align:  cp.opts.Align,
		VAlign: cp.opts.VAlign,
	}
}
