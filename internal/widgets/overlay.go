package widgets

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/layout"
)

// OverlayOptions configures an Overlay.
type OverlayOptions struct {
	MaskColor   string
	BgColor     string
	TextColor   string
	ChoiceColor string
	Text        string
	// Timeout dismisses the overlay this long after activation. 0 keeps it
	// up until dismissed.
	Timeout time.Duration
}

// Ticket identifies one pending auto-dismissal. The host waits Ticket.After
// and hands the ticket back to Overlay.Expire. Tickets are invalidated by any
// later dismissal, so a stale one is ignored.
type Ticket struct {
	gen   uint64
	After time.Duration
}

// Valid reports whether the ticket needs scheduling.
func (t Ticket) Valid() bool { return t.gen != 0 }

// Overlay is a modal message panel over a translucent mask. It may offer
// choices, each dismissing the overlay and running its own action.
type Overlay struct {
	opts      OverlayOptions
	choices   []string
	actions   []func()
	onDismiss func()
	pending   func()

	active bool
	gen    uint64

	el    Surface
	mask  layout.Container
	panel layout.Container
}

// NewOverlay returns an inactive overlay.
func NewOverlay(opts OverlayOptions) *Overlay {
	return &Overlay{opts: opts}
}

// Render draws the mask and panel into c and leaves the overlay inactive.
func (o *Overlay) Render(c layout.Container) error {
	s, err := surface(c)
	if err != nil {
		return err
	}
	o.el = s
	o.panel = nil

	o.mask = c.NewChild("mask", c.Bounds().Size())
	o.mask.SetFill(o.opts.MaskColor)
	c.Append(o.mask)

	if err := o.renderContent(); err != nil {
		return err
	}
	o.active = false
	o.gen++
	o.el.SetVisible(false)
	return nil
}

// Mounted returns the element the overlay was rendered into, or nil.
func (o *Overlay) Mounted() layout.Container {
	if o.el == nil {
		return nil
	}
	return o.el
}

// Active reports whether the overlay is shown.
func (o *Overlay) Active() bool { return o.active }

// Text returns the message.
func (o *Overlay) Text() string { return o.opts.Text }

// Choices returns the offered choices.
func (o *Overlay) Choices() []string { return o.choices }

// SetText replaces the message and the choices. actions, when given, has one
// entry per choice; a nil action just dismisses.
func (o *Overlay) SetText(text string, choices []string, actions []func()) error {
	if len(actions) > 0 && len(actions) != len(choices) {
		return fmt.Errorf("widgets: %d actions for %d choices", len(actions), len(choices))
	}
	o.opts.Text = text
	o.choices = append([]string(nil), choices...)
	o.actions = append(([]func())(nil), actions...)
	if o.el == nil {
		return nil
	}
	return o.renderContent()
}

// SetBgColor changes the mask colour.
func (o *Overlay) SetBgColor(color string) {
	o.opts.MaskColor = color
	if o.mask != nil {
		o.mask.SetFill(color)
	}
}

// SetTimeout changes the auto-dismiss delay for later activations.
func (o *Overlay) SetTimeout(d time.Duration) { o.opts.Timeout = d }

// OnDismiss sets the handler run whenever the overlay is dismissed.
func (o *Overlay) OnDismiss(fn func()) { o.onDismiss = fn }

// Activate shows the overlay. When a timeout is configured the returned
// ticket is valid and must be scheduled by the host. Activating an active
// overlay does nothing and returns an invalid ticket.
func (o *Overlay) Activate() (Ticket, error) {
	if o.el == nil {
		return Ticket{}, errors.New("widgets: overlay activated before render")
	}
	if o.active {
		return Ticket{}, nil
	}
	o.active = true
	o.gen++
	o.el.SetVisible(true)
	if o.opts.Timeout <= 0 {
		return Ticket{}, nil
	}
	return Ticket{gen: o.gen, After: o.opts.Timeout}, nil
}

// Expire dismisses the overlay if t is still the current ticket and reports
// whether it did.
func (o *Overlay) Expire(t Ticket) bool {
	if !o.active || !t.Valid() || t.gen != o.gen {
		return false
	}
	o.deactivate()
	return true
}

// Dismiss hides an active overlay and cancels its pending ticket.
func (o *Overlay) Dismiss() {
	if o.active {
		o.deactivate()
	}
}

func (o *Overlay) deactivate() {
	o.active = false
	o.gen++
	o.el.SetVisible(false)

	fn := o.onDismiss
	if o.pending != nil {
		fn, o.pending = o.pending, nil
	}
	if fn != nil {
		fn()
	}
}

func (o *Overlay) choose(i int) func() {
	return func() {
		if i < len(o.actions) {
			o.pending = o.actions[i]
		}
		o.Dismiss()
	}
}

// renderContent lays the message and one button per choice out in a panel
// centred horizontally in the upper part of the overlay.
func (o *Overlay) renderContent() error {
	bounds := o.el.Bounds()
	n := len(o.choices)

	w := int(math.Floor(float64(bounds.Width)*0.7 + 0.5))
	h := 2*n + 3
	y := (bounds.Height - h) / 3
	if y < 0 {
		y = 0
	}
	panel := o.el.NewChild("overlay-content", layout.Rect{X: (bounds.Width - w) / 2, Y: y, Width: w, Height: h})
	panel.SetFill(o.opts.BgColor)
	if o.panel != nil {
		if err := o.el.Replace(panel, o.panel); err != nil {
			return err
		}
	} else {
		o.el.Append(panel)
	}
	o.panel = panel

	slots := make([]layout.Slot, 0, n+1)
	slots = append(slots, layout.Leaf(NewCaption(CaptionOptions{Text: o.opts.Text, Color: o.opts.TextColor})))
	for i, choice := range o.choices {
		slots = append(slots, layout.Leaf(NewButton(ButtonOptions{
			ID:        fmt.Sprintf("alert-ch%d", i),
			Caption:   choice,
			Color:     o.opts.ChoiceColor,
			TextColor: o.opts.TextColor,
			Class:     "choice",
			OnClick:   o.choose(i),
		})))
	}
	// Side margins shrink on panels too narrow for them.
	mx := min(2, w/2)
	g, err := layout.NewGrid(layout.GridOptions{
		ID:      "overlay-panel",
		Rows:    n + 1,
		Cols:    1,
		Widths:  []layout.SizeSpec{layout.Fill()},
		Heights: layout.Uniform(layout.Fixed(1), n+1),
		Margins: layout.Margins{Left: mx, Right: mx, Top: 1, Bottom: 1},
		Spacing: layout.Spacing{Vertical: 1},
		Content: slots,
	})
	if err != nil {
		return err
	}
	if err := g.Render(panel); err != nil {
		return fmt.Errorf("overlay panel: %w", err)
	}

	if n > 0 {
		o.el.OnClick(nil)
	} else {
		o.el.OnClick(o.Dismiss)
	}
	return nil
}
