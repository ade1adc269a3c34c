// Package config parses gridwork.toml scene descriptions.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/layout"
)

// FileName is the scene file looked up by Load.
const FileName = "gridwork.toml"

// DefaultAccentColor is the default viewer accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Widget kinds.
const (
	KindButton  = "button"
	KindCaption = "caption"
	KindInput   = "input"
	KindArea    = "area"
	KindOverlay = "overlay"
)

// Config is the top-level gridwork.toml configuration.
type Config struct {
	Scene     SceneConfig      `toml:"scene"`
	Log       LogConfig        `toml:"log"`
	TUI       TUIConfig        `toml:"tui"`
	Grids     []GridConfig     `toml:"grids"`
	Widgets   []WidgetConfig   `toml:"widgets"`
	Indirects []IndirectConfig `toml:"indirects"`
}

// SceneConfig names the root nodes and the default render size.
type SceneConfig struct {
	Name string `toml:"name"`
	// Root is the id of the grid or widget drawn as the main tree.
	Root string `toml:"root"`
	// Overlay is the id of an overlay widget drawn above the main tree.
	Overlay    string `toml:"overlay"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // console or json
	// File additionally writes JSON logs to a rotated file.
	File       string `toml:"file"`
	MaxSize    int    `toml:"max_size"` // megabytes
	MaxBackups int    `toml:"max_backups"`
	MaxAge     int    `toml:"max_age"` // days
	Compress   bool   `toml:"compress"`
}

// TUIConfig controls the viewer appearance.
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
}

// GridConfig describes one grid node.
type GridConfig struct {
	ID   string `toml:"id"`
	Rows int    `toml:"rows"`
	Cols int    `toml:"cols"`
	// Widths and Heights take one spec per column or row, or a single spec
	// for all of them.
	Widths       layout.SizeSpecs `toml:"widths"`
	Heights      layout.SizeSpecs `toml:"heights"`
	Margins      Insets           `toml:"margins"`
	Spacing      Gutter           `toml:"spacing"`
	Color        string           `toml:"color"`
	MarginColor  string           `toml:"margin_color"`
	SpacingColor string           `toml:"spacing_color"`
	// Cells lists rows*cols entries in row-major order: a node id, "" for an
	// empty cell or "@name" for an indirect reference.
	Cells []string `toml:"cells"`
}

// WidgetConfig describes one leaf widget. Which fields apply depends on
// Kind.
type WidgetConfig struct {
	ID   string `toml:"id"`
	Kind string `toml:"kind"`
	Text string `toml:"text"`

	// Color is the background of buttons and inputs, the inside of areas
	// and the panel of overlays.
	Color         string  `toml:"color"`
	TextColor     string  `toml:"text_color"`
	SelectedColor string  `toml:"selected_color"`
	DisabledColor string  `toml:"disabled_color"`
	Size          float64 `toml:"size"`
	Align         string  `toml:"align"`
	VAlign        string  `toml:"valign"`

	// Button.
	Class   string `toml:"class"`
	Status  string `toml:"status"`
	OnClick string `toml:"on_click"` // toggle, overlay, next:<name>, prev:<name>

	// Input.
	LetterSpacing int  `toml:"letter_spacing"`
	Password      bool `toml:"password"`
	MaxLen        int  `toml:"max_len"`

	// Area.
	Border      int    `toml:"border"`
	BorderColor string `toml:"border_color"`
	Padding     int    `toml:"padding"`
	Child       string `toml:"child"`

	// Overlay.
	MaskColor   string   `toml:"mask_color"`
	ChoiceColor string   `toml:"choice_color"`
	Choices     []string `toml:"choices"`
	Timeout     float64  `toml:"timeout"` // seconds; 0 = until dismissed
}

// IndirectConfig describes a rebindable cell and the contents it cycles
// through. The first alternative is shown initially; "" is an empty cell.
type IndirectConfig struct {
	Name         string   `toml:"name"`
	Alternatives []string `toml:"alternatives"`
}

// Insets is a margin given as one number for all sides or as
// [left, right, top, bottom].
type Insets [4]int

// UnmarshalTOML implements toml.Unmarshaler.
func (in *Insets) UnmarshalTOML(v any) error {
	vals, err := intList(v, 1, 4)
	if err != nil {
		return fmt.Errorf("margins: %w", err)
	}
	if len(vals) == 1 {
		*in = Insets{vals[0], vals[0], vals[0], vals[0]}
		return nil
	}
	*in = Insets(vals)
	return nil
}

// Margins converts to layout margins.
func (in Insets) Margins() layout.Margins {
	return layout.Margins{Left: in[0], Right: in[1], Top: in[2], Bottom: in[3]}
}

// Gutter is a spacing given as one number for both axes or as
// [horizontal, vertical].
type Gutter [2]int

// UnmarshalTOML implements toml.Unmarshaler.
func (g *Gutter) UnmarshalTOML(v any) error {
	vals, err := intList(v, 1, 2)
	if err != nil {
		return fmt.Errorf("spacing: %w", err)
	}
	if len(vals) == 1 {
		*g = Gutter{vals[0], vals[0]}
		return nil
	}
	*g = Gutter(vals)
	return nil
}

// Spacing converts to layout spacing.
func (g Gutter) Spacing() layout.Spacing {
	return layout.Spacing{Horizontal: g[0], Vertical: g[1]}
}

// intList accepts a scalar integer or an array of exactly long integers.
func intList(v any, short, long int) ([]int, error) {
	switch t := v.(type) {
	case int64:
		return []int{int(t)}, nil
	case []any:
		if len(t) != short && len(t) != long {
			return nil, fmt.Errorf("want %d or %d values, got %d", short, long, len(t))
		}
		out := make([]int, len(t))
		for i, item := range t {
			n, ok := item.(int64)
			if !ok {
				return nil, fmt.Errorf("value %v is not an integer", item)
			}
			out[i] = int(n)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}

// Validate checks the configuration for issues that would cause confusing
// failures when the scene is built. It returns all found issues joined
// together.
func (c *Config) Validate() error {
	var errs []error

	if c.Scene.Width <= 0 || c.Scene.Height <= 0 {
		errs = append(errs, fmt.Errorf("scene.width and scene.height must be > 0"))
	}
	if c.Scene.Root == "" {
		errs = append(errs, fmt.Errorf("scene.root must not be empty"))
	}
	errs = appendColor(errs, "scene.background", c.Scene.Background)

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error"))
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format must be \"console\" or \"json\""))
	}
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		errs = append(errs, fmt.Errorf("log.max_size, log.max_backups and log.max_age must be >= 0"))
	}

	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}

	kinds := make(map[string]string)
	for _, g := range c.Grids {
		errs = appendDuplicate(errs, kinds, g.ID, "grid")
	}
	for _, w := range c.Widgets {
		errs = appendDuplicate(errs, kinds, w.ID, w.Kind)
	}
	refs := make(map[string]int)
	for _, ind := range c.Indirects {
		if ind.Name == "" {
			errs = append(errs, fmt.Errorf("indirects: name must not be empty"))
			continue
		}
		if _, dup := refs[ind.Name]; dup {
			errs = append(errs, fmt.Errorf("indirects: duplicate name %q", ind.Name))
		}
		refs[ind.Name] = 0
		if len(ind.Alternatives) == 0 {
			errs = append(errs, fmt.Errorf("indirect %q: needs at least one alternative", ind.Name))
		}
	}

	uses := make(map[string]int)
	use := func(where, id string) {
		if id == "" {
			return
		}
		if _, ok := kinds[id]; !ok {
			errs = append(errs, fmt.Errorf("%s: unknown node %q", where, id))
			return
		}
		uses[id]++
	}

	use("scene.root", c.Scene.Root)
	if c.Scene.Overlay != "" {
		if kinds[c.Scene.Overlay] != KindOverlay {
			errs = append(errs, fmt.Errorf("scene.overlay: %q is not an overlay widget", c.Scene.Overlay))
		}
		use("scene.overlay", c.Scene.Overlay)
	}
	if kinds[c.Scene.Root] == KindOverlay {
		errs = append(errs, fmt.Errorf("scene.root: an overlay cannot be the main tree"))
	}

	for _, g := range c.Grids {
		errs = append(errs, g.validate()...)
		for _, cell := range g.Cells {
			if name, ok := strings.CutPrefix(cell, "@"); ok {
				if _, known := refs[name]; !known {
					errs = append(errs, fmt.Errorf("grid %q: unknown indirect %q", g.ID, name))
					continue
				}
				refs[name]++
				continue
			}
			use(fmt.Sprintf("grid %q", g.ID), cell)
		}
	}
	for _, ind := range c.Indirects {
		for _, alt := range ind.Alternatives {
			use(fmt.Sprintf("indirect %q", ind.Name), alt)
		}
		if refs[ind.Name] != 1 {
			errs = append(errs, fmt.Errorf("indirect %q: must be placed in exactly one cell, found %d", ind.Name, refs[ind.Name]))
		}
	}

	for _, w := range c.Widgets {
		errs = append(errs, w.validate(kinds)...)
		if w.Kind == KindButton {
			verb, target, err := ParseAction(w.OnClick)
			switch {
			case err != nil:
			case verb == ActionNext || verb == ActionPrev:
				if _, ok := refs[target]; !ok {
					errs = append(errs, fmt.Errorf("button %q: on_click names unknown indirect %q", w.ID, target))
				}
			case verb == ActionOverlay && c.Scene.Overlay == "":
				errs = append(errs, fmt.Errorf("button %q: on_click overlay needs scene.overlay", w.ID))
			}
		}
		if w.Kind == KindArea {
			use(fmt.Sprintf("area %q", w.ID), w.Child)
		}
	}

	for id, n := range uses {
		if n > 1 {
			errs = append(errs, fmt.Errorf("node %q is placed %d times; each node may appear once", id, n))
		}
	}
	if err := c.checkCycles(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (g GridConfig) validate() []error {
	var errs []error
	where := fmt.Sprintf("grid %q", g.ID)
	if g.Rows < 1 || g.Cols < 1 {
		return append(errs, fmt.Errorf("%s: rows and cols must be >= 1", where))
	}
	if n := len(g.Widths); n != 1 && n != g.Cols {
		errs = append(errs, fmt.Errorf("%s: widths has %d entries for %d columns", where, n, g.Cols))
	}
	if n := len(g.Heights); n != 1 && n != g.Rows {
		errs = append(errs, fmt.Errorf("%s: heights has %d entries for %d rows", where, n, g.Rows))
	}
	if len(g.Cells) != g.Rows*g.Cols {
		errs = append(errs, fmt.Errorf("%s: cells has %d entries for %dx%d", where, len(g.Cells), g.Rows, g.Cols))
	}
	for _, n := range g.Margins {
		if n < 0 {
			errs = append(errs, fmt.Errorf("%s: margins must be >= 0", where))
			break
		}
	}
	if g.Spacing[0] < 0 || g.Spacing[1] < 0 {
		errs = append(errs, fmt.Errorf("%s: spacing must be >= 0", where))
	}
	errs = appendColor(errs, where+" color", g.Color)
	errs = appendColor(errs, where+" margin_color", g.MarginColor)
	errs = appendColor(errs, where+" spacing_color", g.SpacingColor)
	return errs
}

func (w WidgetConfig) validate(kinds map[string]string) []error {
	var errs []error
	where := fmt.Sprintf("%s %q", w.Kind, w.ID)

	switch w.Kind {
	case KindButton, KindCaption, KindInput, KindArea, KindOverlay:
	default:
		return append(errs, fmt.Errorf("widget %q: unknown kind %q", w.ID, w.Kind))
	}

	switch w.Align {
	case "", "left", "center", "right":
	default:
		errs = append(errs, fmt.Errorf("%s: align must be left, center or right", where))
	}
	switch w.VAlign {
	case "", "top", "middle", "bottom":
	default:
		errs = append(errs, fmt.Errorf("%s: valign must be top, middle or bottom", where))
	}
	if w.Size < 0 {
		errs = append(errs, fmt.Errorf("%s: size must be >= 0", where))
	}
	colors := []struct{ field, value string }{
		{"color", w.Color},
		{"text_color", w.TextColor},
		{"selected_color", w.SelectedColor},
		{"disabled_color", w.DisabledColor},
		{"border_color", w.BorderColor},
		{"mask_color", w.MaskColor},
		{"choice_color", w.ChoiceColor},
	}
	for _, c := range colors {
		errs = appendColor(errs, where+" "+c.field, c.value)
	}

	switch w.Kind {
	case KindButton:
		switch w.Status {
		case "", "default":
		case "selected":
			if w.SelectedColor == "" {
				errs = append(errs, fmt.Errorf("%s: status selected needs selected_color", where))
			}
		case "disabled":
			if w.DisabledColor == "" {
				errs = append(errs, fmt.Errorf("%s: status disabled needs disabled_color", where))
			}
		default:
			errs = append(errs, fmt.Errorf("%s: status must be default, selected or disabled", where))
		}
		if _, _, err := ParseAction(w.OnClick); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", where, err))
		}
		if w.OnClick == ActionToggle && w.SelectedColor == "" {
			errs = append(errs, fmt.Errorf("%s: on_click toggle needs selected_color", where))
		}
	case KindInput:
		if w.MaxLen < 0 || w.LetterSpacing < 0 {
			errs = append(errs, fmt.Errorf("%s: max_len and letter_spacing must be >= 0", where))
		}
	case KindArea:
		if w.Border < 0 || w.Padding < 0 {
			errs = append(errs, fmt.Errorf("%s: border and padding must be >= 0", where))
		}
		switch kinds[w.Child] {
		case KindButton, KindCaption, KindInput:
		default:
			errs = append(errs, fmt.Errorf("%s: child must be a button, caption or input", where))
		}
	case KindOverlay:
		if w.Timeout < 0 {
			errs = append(errs, fmt.Errorf("%s: timeout must be >= 0", where))
		}
	}
	return errs
}

// checkCycles reports a grid that contains itself through its cells or
// indirect alternatives.
func (c *Config) checkCycles() error {
	grids := make(map[string]GridConfig, len(c.Grids))
	for _, g := range c.Grids {
		grids[g.ID] = g
	}
	alts := make(map[string][]string, len(c.Indirects))
	for _, ind := range c.Indirects {
		alts[ind.Name] = ind.Alternatives
	}

	const (
		visiting = 1
		done     = 2
	)
	state := make(map[string]int)
	var visit func(id string) error
	visit = func(id string) error {
		g, ok := grids[id]
		if !ok || state[id] == done {
			return nil
		}
		if state[id] == visiting {
			return fmt.Errorf("grid %q contains itself", id)
		}
		state[id] = visiting
		for _, cell := range g.Cells {
			children := []string{cell}
			if name, ok := strings.CutPrefix(cell, "@"); ok {
				children = alts[name]
			}
			for _, child := range children {
				if err := visit(child); err != nil {
					return err
				}
			}
		}
		state[id] = done
		return nil
	}
	for _, g := range c.Grids {
		if err := visit(g.ID); err != nil {
			return err
		}
	}
	return nil
}

func appendDuplicate(errs []error, kinds map[string]string, id, kind string) []error {
	if id == "" {
		return append(errs, fmt.Errorf("%s: id must not be empty", kind))
	}
	if strings.HasPrefix(id, "@") {
		return append(errs, fmt.Errorf("%s %q: ids must not start with @", kind, id))
	}
	if _, dup := kinds[id]; dup {
		return append(errs, fmt.Errorf("duplicate id %q", id))
	}
	kinds[id] = kind
	return errs
}

func appendColor(errs []error, field, color string) []error {
	if color != "" && !hexColorRe.MatchString(color) {
		return append(errs, fmt.Errorf("%s must be a hex color (e.g. \"#7D56F4\")", field))
	}
	return errs
}

// Defaults returns a Config with sensible defaults and no nodes.
func Defaults() Config {
	return Config{
		Scene: SceneConfig{
			Width:  80,
			Height: 24,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
		TUI: TUIConfig{
			AccentColor: DefaultAccentColor,
		},
	}
}

// Load reads gridwork.toml from the given path. If path is empty, it walks
// up from the current working directory looking for gridwork.toml. Returns
// an error if the file contains unknown keys (likely typos).
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, joinKeys(keys))
	}

	if cfg.Scene.Name == "" {
		cfg.Scene.Name = filepath.Base(filepath.Dir(path))
	}

	return &cfg, nil
}

// joinKeys formats a slice of key names for display.
func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}

// findConfig walks up from the current directory looking for gridwork.toml.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config: %s not found (searched up from %s)", FileName, dir)
		}
		dir = parent
	}
}

// InitFile writes an example gridwork.toml to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}
	if err := os.WriteFile(path, []byte(exampleScene), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}

const exampleScene = `# gridwork.toml: scene description
# Sizes: 40 (cells), "30%" (share of the space), "*" or "2*" (weighted
# share of what is left after fixed and percent cells).

[scene]
name = "example"
root = "main"
overlay = "alert"
width = 80
height = 24
background = "#1E1E2E"

[log]
level = "info"
format = "console"
file = ""          # also write JSON logs here, rotated (empty = off)
max_size = 10      # megabytes before rotation
max_backups = 3
max_age = 28       # days

[tui]
accent_color = "#7D56F4"

[[grids]]
id = "main"
rows = 3
cols = 2
widths = ["30%", "*"]
heights = [3, "*", 3]
margins = 1                # or [left, right, top, bottom]
spacing = 1                # or [horizontal, vertical]
color = "#313244"
margin_color = "#11111B"
spacing_color = "#181825"
cells = ["title", "status", "menu", "@detail", "help", "entry"]

[[grids]]
id = "menu"
rows = 3
cols = 1
widths = "*"
heights = "*"
spacing = [0, 1]
cells = ["show-info", "show-form", "alert-button"]

[[widgets]]
id = "title"
kind = "caption"
text = "gridwork"
text_color = "#CDD6F4"
size = 1.5

[[widgets]]
id = "status"
kind = "caption"
text = "ready"
text_color = "#A6E3A1"
align = "right"

[[widgets]]
id = "show-info"
kind = "button"
text = "Info"
color = "#45475A"
text_color = "#CDD6F4"
selected_color = "#7D56F4"
on_click = "prev:detail"

[[widgets]]
id = "show-form"
kind = "button"
text = "Form"
color = "#45475A"
text_color = "#CDD6F4"
selected_color = "#7D56F4"
on_click = "next:detail"

[[widgets]]
id = "alert-button"
kind = "button"
text = "Alert"
color = "#F38BA8"
text_color = "#11111B"
on_click = "overlay"

[[widgets]]
id = "info"
kind = "caption"
text = "Select a panel on the left"
text_color = "#CDD6F4"

[[widgets]]
id = "form-field"
kind = "input"
text = "hello"
color = "#CDD6F4"
text_color = "#11111B"
max_len = 32

[[widgets]]
id = "form"
kind = "area"
border = 1
border_color = "#7D56F4"
padding = 1
color = "#CDD6F4"
child = "form-field"

[[widgets]]
id = "help"
kind = "caption"
text = "tab: slot  enter: next  o: alert  q: quit"
text_color = "#6C7086"
align = "left"

[[widgets]]
id = "entry"
kind = "input"
text = ""
color = "#45475A"
text_color = "#CDD6F4"
password = true

[[widgets]]
id = "alert"
kind = "overlay"
text = "Saved."
mask_color = "#11111B"
color = "#F5E0DC"
text_color = "#11111B"
timeout = 3.0

[[indirects]]
name = "detail"
alternatives = ["info", "form", ""]
`
