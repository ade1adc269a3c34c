package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/dom"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/layout"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/widgets"
)

// Button click actions.
const (
	ActionToggle  = "toggle"
	ActionOverlay = "overlay"
	ActionNext    = "next"
	ActionPrev    = "prev"
)

// ParseAction splits a button on_click value into its verb and target. An
// empty value is no action.
func ParseAction(s string) (verb, target string, err error) {
	if s == "" {
		return "", "", nil
	}
	verb, target, _ = strings.Cut(s, ":")
	switch verb {
	case ActionToggle, ActionOverlay:
		if target != "" {
			return "", "", fmt.Errorf("on_click %q takes no target", verb)
		}
	case ActionNext, ActionPrev:
		if target == "" {
			return "", "", fmt.Errorf("on_click %q needs an indirect name, e.g. %q", verb, verb+":detail")
		}
	default:
		return "", "", fmt.Errorf("on_click must be toggle, overlay, next:<name> or prev:<name>, got %q", s)
	}
	return verb, target, nil
}

// Ref is a named indirect reference and the contents it cycles through.
type Ref struct {
	Name         string
	Indirect     *layout.Indirect
	Alternatives []layout.Renderable
	Labels       []string
	current      int
}

// Current returns the index of the bound alternative.
func (r *Ref) Current() int { return r.current }

// Label returns the id of the bound alternative.
func (r *Ref) Label() string { return r.Labels[r.current] }

// Select binds alternative i.
func (r *Ref) Select(i int) error {
	if i < 0 || i >= len(r.Alternatives) {
		return fmt.Errorf("config: indirect %q has no alternative %d", r.Name, i)
	}
	r.current = i
	return r.Indirect.Update(r.Alternatives[i])
}

// Next binds the following alternative, wrapping around.
func (r *Ref) Next() error { return r.Select((r.current + 1) % len(r.Alternatives)) }

// Prev binds the preceding alternative, wrapping around.
func (r *Ref) Prev() error {
	return r.Select((r.current + len(r.Alternatives) - 1) % len(r.Alternatives))
}

// Scene is a built scene description. It renders like a layout.Scene and
// keeps handles on the parts a host interacts with.
type Scene struct {
	Name       string
	Root       *layout.Scene
	Background string
	Overlay    *widgets.Overlay
	Refs       []*Ref
	Inputs     []*widgets.TextInput

	nodes   map[string]layout.Renderable
	tickets []widgets.Ticket
	log     *zap.Logger
}

// Render fills c with the scene background and renders the scene into it.
func (s *Scene) Render(c layout.Container) error {
	if s.Background != "" {
		c.SetFill(s.Background)
	}
	return s.Root.Render(c)
}

// Node returns the built grid or widget with the given id, or nil.
func (s *Scene) Node(id string) layout.Renderable { return s.nodes[id] }

// Ref returns the indirect reference with the given name, or nil.
func (s *Scene) Ref(name string) *Ref {
	for _, r := range s.Refs {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// ShowOverlay activates the overlay. A resulting auto-dismiss ticket is
// queued for TakeTickets.
func (s *Scene) ShowOverlay() error {
	if s.Overlay == nil {
		return errors.New("config: scene has no overlay")
	}
	t, err := s.Overlay.Activate()
	if err != nil {
		return err
	}
	if t.Valid() {
		s.tickets = append(s.tickets, t)
	}
	s.log.Debug("overlay shown", zap.Duration("timeout", t.After))
	return nil
}

func (s *Scene) cycle(name string, forward bool) error {
	r := s.Ref(name)
	if r == nil {
		return fmt.Errorf("config: indirect %q is not in the scene", name)
	}
	if forward {
		return r.Next()
	}
	return r.Prev()
}

// TakeTickets returns and clears the queued auto-dismiss tickets.
func (s *Scene) TakeTickets() []widgets.Ticket {
	t := s.tickets
	s.tickets = nil
	return t
}

// Build validates cfg and constructs its scene. Indirect references start
// on their first alternative.
func Build(cfg *Config, log *zap.Logger) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid scene: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	b := &builder{
		cfg:     cfg,
		grids:   make(map[string]GridConfig, len(cfg.Grids)),
		widgets: make(map[string]WidgetConfig, len(cfg.Widgets)),
		refs:    make(map[string]*Ref, len(cfg.Indirects)),
		scene: &Scene{
			Name:       cfg.Scene.Name,
			Background: cfg.Scene.Background,
			nodes:      make(map[string]layout.Renderable),
			log:        log,
		},
		log: log,
	}
	for _, g := range cfg.Grids {
		b.grids[g.ID] = g
	}
	for _, w := range cfg.Widgets {
		b.widgets[w.ID] = w
	}
	for _, ind := range cfg.Indirects {
		b.refs[ind.Name] = &Ref{Name: ind.Name, Indirect: layout.NewIndirect(ind.Name)}
	}

	main, err := b.node(cfg.Scene.Root)
	if err != nil {
		return nil, err
	}
	b.scene.Root = &layout.Scene{Main: main}
	if cfg.Scene.Overlay != "" {
		ov, err := b.node(cfg.Scene.Overlay)
		if err != nil {
			return nil, err
		}
		b.scene.Root.Overlay = ov
	}
	if err := b.bindRefs(); err != nil {
		return nil, err
	}

	log.Debug("built scene",
		zap.String("scene", cfg.Scene.Name),
		zap.Int("nodes", len(b.scene.nodes)),
		zap.Int("indirects", len(b.scene.Refs)))
	return b.scene, nil
}

type builder struct {
	cfg     *Config
	grids   map[string]GridConfig
	widgets map[string]WidgetConfig
	refs    map[string]*Ref
	scene   *Scene
	log     *zap.Logger
}

// bindRefs builds the alternatives of every indirect that ended up in the
// tree. Alternatives may hold further indirects, so it repeats until no new
// reference is bound. Indirects never placed in the tree are dropped.
func (b *builder) bindRefs() error {
	done := make(map[string]bool)
	for progress := true; progress; {
		progress = false
		for _, ind := range b.cfg.Indirects {
			ref := b.refs[ind.Name]
			if done[ind.Name] || ref.Indirect.Owner() == nil {
				continue
			}
			for _, alt := range ind.Alternatives {
				var content layout.Renderable
				label := "(empty)"
				if alt != "" {
					n, err := b.node(alt)
					if err != nil {
						return err
					}
					content, label = n, alt
				}
				ref.Alternatives = append(ref.Alternatives, content)
				ref.Labels = append(ref.Labels, label)
			}
			if err := ref.Select(0); err != nil {
				return fmt.Errorf("config: indirect %q: %w", ind.Name, err)
			}
			b.scene.Refs = append(b.scene.Refs, ref)
			done[ind.Name] = true
			progress = true
		}
	}
	for _, ind := range b.cfg.Indirects {
		if !done[ind.Name] {
			b.log.Warn("indirect is not reachable from the scene root", zap.String("indirect", ind.Name))
		}
	}
	return nil
}

func (b *builder) node(id string) (layout.Renderable, error) {
	if n, ok := b.scene.nodes[id]; ok {
		return n, nil
	}
	var (
		n   layout.Renderable
		err error
	)
	if g, ok := b.grids[id]; ok {
		n, err = b.grid(g)
	} else if w, ok := b.widgets[id]; ok {
		n, err = b.widget(w)
	} else {
		err = fmt.Errorf("config: unknown node %q", id)
	}
	if err != nil {
		return nil, err
	}
	b.scene.nodes[id] = n
	return n, nil
}

func (b *builder) grid(g GridConfig) (*layout.Grid, error) {
	slots := make([]layout.Slot, len(g.Cells))
	for i, cell := range g.Cells {
		switch name, isRef := strings.CutPrefix(cell, "@"); {
		case cell == "":
			slots[i] = layout.Empty()
		case isRef:
			slots[i] = layout.Ref(b.refs[name].Indirect)
		default:
			n, err := b.node(cell)
			if err != nil {
				return nil, err
			}
			slots[i] = layout.Leaf(n)
		}
	}
	grid, err := layout.NewGrid(layout.GridOptions{
		ID:           g.ID,
		Rows:         g.Rows,
		Cols:         g.Cols,
		Widths:       g.Widths.Expand(g.Cols),
		Heights:      g.Heights.Expand(g.Rows),
		Margins:      g.Margins.Margins(),
		Spacing:      g.Spacing.Spacing(),
		Color:        g.Color,
		MarginColor:  g.MarginColor,
		SpacingColor: g.SpacingColor,
		Content:      slots,
		Logger:       b.log,
	})
	if err != nil {
		return nil, fmt.Errorf("config: grid %q: %w", g.ID, err)
	}
	return grid, nil
}

func (b *builder) widget(w WidgetConfig) (layout.Renderable, error) {
	switch w.Kind {
	case KindButton:
		return b.button(w)
	case KindCaption:
		return widgets.NewCaption(widgets.CaptionOptions{
			ID:     w.ID,
			Text:   w.Text,
			Color:  w.TextColor,
			Size:   w.Size,
			Align:  dom.Align(w.Align),
			VAlign: dom.VAlign(w.VAlign),
		}), nil
	case KindInput:
		in := widgets.NewTextInput(widgets.InputOptions{
			ID:            w.ID,
			Value:         w.Text,
			Color:         w.TextColor,
			BgColor:       w.Color,
			Size:          w.Size,
			Align:         dom.Align(w.Align),
			LetterSpacing: w.LetterSpacing,
			Password:      w.Password,
			MaxLen:        w.MaxLen,
		})
		b.scene.Inputs = append(b.scene.Inputs, in)
		return in, nil
	case KindArea:
		child, err := b.node(w.Child)
		if err != nil {
			return nil, err
		}
		setter, ok := child.(widgets.TextSetter)
		if !ok {
			return nil, fmt.Errorf("config: area %q: child %q cannot hold text", w.ID, w.Child)
		}
		area, err := widgets.NewInputArea(widgets.InputAreaOptions{
			ID:          w.ID,
			Border:      w.Border,
			BorderColor: w.BorderColor,
			Padding:     w.Padding,
			InsideColor: w.Color,
			Child:       setter,
		})
		if err != nil {
			return nil, fmt.Errorf("config: area %q: %w", w.ID, err)
		}
		return area, nil
	case KindOverlay:
		ov := widgets.NewOverlay(widgets.OverlayOptions{
			MaskColor:   w.MaskColor,
			BgColor:     w.Color,
			TextColor:   w.TextColor,
			ChoiceColor: w.ChoiceColor,
			Text:        w.Text,
			Timeout:     time.Duration(w.Timeout * float64(time.Second)),
		})
		if err := ov.SetText(w.Text, w.Choices, nil); err != nil {
			return nil, err
		}
		ov.OnDismiss(func() { b.log.Debug("overlay dismissed", zap.String("overlay", w.ID)) })
		if w.ID == b.cfg.Scene.Overlay {
			b.scene.Overlay = ov
		}
		return ov, nil
	default:
		return nil, fmt.Errorf("config: widget %q: unknown kind %q", w.ID, w.Kind)
	}
}

func (b *builder) button(w WidgetConfig) (*widgets.Button, error) {
	verb, target, err := ParseAction(w.OnClick)
	if err != nil {
		return nil, fmt.Errorf("config: button %q: %w", w.ID, err)
	}

	var btn *widgets.Button
	scene, log := b.scene, b.log.With(zap.String("button", w.ID))
	report := func(err error) {
		if err != nil {
			log.Warn("click action failed", zap.String("action", w.OnClick), zap.Error(err))
		}
	}
	var onClick func()
	switch verb {
	case ActionToggle:
		onClick = func() { report(btn.ToggleStatus()) }
	case ActionOverlay:
		onClick = func() { report(scene.ShowOverlay()) }
	case ActionNext:
		onClick = func() { report(scene.cycle(target, true)) }
	case ActionPrev:
		onClick = func() { report(scene.cycle(target, false)) }
	}

	btn = widgets.NewButton(widgets.ButtonOptions{
		ID:            w.ID,
		Caption:       w.Text,
		Color:         w.Color,
		TextColor:     w.TextColor,
		SelectedColor: w.SelectedColor,
		DisabledColor: w.DisabledColor,
		Size:          w.Size,
		LeftAligned:   w.Align == "left",
		Class:         w.Class,
		OnClick:       onClick,
	})
	if w.Status != "" {
		if err := btn.SetStatus(widgets.Status(w.Status)); err != nil {
			return nil, fmt.Errorf("config: button %q: %w", w.ID, err)
		}
	}
	return btn, nil
}
