package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/dom"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/layout"
)

// InputOptions configures a TextInput.
type InputOptions struct {
	ID            string
	Value         string
	Color         string
	BgColor       string
	Size          float64
	Align         dom.Align
	LetterSpacing int
	Password      bool
	// MaxLen limits the value length in runes; 0 means unlimited.
	MaxLen int
}

// TextInput is a single-line editable field. Editing is delegated to a
// bubbles textinput model; the element shows its value.
type TextInput struct {
	opts  InputOptions
	model textinput.Model
	el    Surface
}

// NewTextInput returns a text input holding opts.Value.
func NewTextInput(opts InputOptions) *TextInput {
	if opts.Align == "" {
		opts.Align = dom.AlignLeft
	}
	m := textinput.New()
	m.Prompt = ""
	if opts.Password {
		m.EchoMode = textinput.EchoPassword
		m.EchoCharacter = '*'
	}
	in := &TextInput{opts: opts, model: m}
	in.SetMaxLen(opts.MaxLen)
	in.setValue(opts.Value)
	return in
}

// Render draws the input into c.
func (in *TextInput) Render(c layout.Container) error {
	s, err := surface(c)
	if err != nil {
		return err
	}
	in.el = s
	layout.SetFill(s, in.opts.BgColor, s.Fill())
	in.redraw()
	return nil
}

// Mounted returns the element the input was rendered into, or nil.
func (in *TextInput) Mounted() layout.Container {
	if in.el == nil {
		return nil
	}
	return in.el
}

// Value returns the current value.
func (in *TextInput) Value() string { return in.model.Value() }

// SetText replaces the value.
func (in *TextInput) SetText(text string) {
	in.setValue(text)
	in.redraw()
}

// MaxLen returns the rune limit, 0 when unlimited.
func (in *TextInput) MaxLen() int { return in.model.CharLimit }

// SetMaxLen limits the value to n runes. n <= 0 removes the limit. The
// current value is not truncated.
func (in *TextInput) SetMaxLen(n int) {
	if n < 0 {
		n = 0
	}
	in.model.CharLimit = n
}

// Password reports whether the value is masked.
func (in *TextInput) Password() bool { return in.model.EchoMode == textinput.EchoPassword }

// SetBgColor changes the background of a rendered input.
func (in *TextInput) SetBgColor(color string) {
	in.opts.BgColor = color
	if in.el != nil {
		in.el.SetFill(color)
	}
}

// Focus routes subsequent key messages to the input.
func (in *TextInput) Focus() tea.Cmd { return in.model.Focus() }

// Blur stops routing key messages to the input.
func (in *TextInput) Blur() { in.model.Blur() }

// Focused reports whether the input takes key messages.
func (in *TextInput) Focused() bool { return in.model.Focused() }

// Update applies a bubbletea message to the value and redraws it.
func (in *TextInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	in.model, cmd = in.model.Update(msg)
	in.redraw()
	return cmd
}

// Display returns the value as drawn, masked for passwords.
func (in *TextInput) Display() string {
	v := in.model.Value()
	if in.Password() {
		return strings.Repeat(string(in.model.EchoCharacter), len([]rune(v)))
	}
	return v
}

func (in *TextInput) setValue(v string) {
	if limit := in.model.CharLimit; limit > 0 {
		if r := []rune(v); len(r) > limit {
			v = string(r[:limit])
		}
	}
	in.model.SetValue(v)
}

func (in *TextInput) redraw() {
	if in.el == nil {
		return
	}
	in.el.SetText(dom.Text{
		Value:         in.Display(),
		Color:         in.opts.Color,
		Bold:          true,
		Size:          fontSize(in.opts.Size),
		Align:         in.opts.Align,
		VAlign:        dom.VAlignMiddle,
		LetterSpacing: in.opts.LetterSpacing,
	})
}
