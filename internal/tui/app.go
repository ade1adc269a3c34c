package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/config"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/dom"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/raster"
	"github.com/LISSConsulting/LISSTech.Gridwork/internal/tui/components"
)

// chromeRows is the header plus the footer line.
const chromeRows = 2

// Model is the root bubbletea model of the scene viewer. The scene fills the
// terminal between a header and a footer holding one tab per indirect
// reference.
type Model struct {
	cfg *config.Config
	log *zap.Logger

	scene *config.Scene
	doc   *dom.Document

	tabs  components.TabBar
	focus FocusTarget
	input int // index into scene.Inputs while focus is FocusInput
	theme Theme

	width  int
	height int
	err    error
}

// New builds the scene described by cfg and renders it at the configured
// size until the terminal reports its own.
func New(cfg *config.Config, log *zap.Logger) (Model, error) {
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		cfg:    cfg,
		log:    log.Named("tui"),
		theme:  NewTheme(cfg.TUI.AccentColor),
		width:  cfg.Scene.Width,
		height: cfg.Scene.Height + chromeRows,
	}
	if err := m.rebuild(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Err returns the last error raised by a scene action.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case expireMsg:
		if msg.overlay.Expire(msg.ticket) {
			m.log.Debug("overlay expired")
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.err = m.rebuild()
	return m, nil
}

// rebuild constructs a fresh scene at the current body size. Indirect
// selections and input values carry over; focus returns to the scene.
func (m *Model) rebuild() error {
	selected := make(map[string]int)
	var values []string
	if m.scene != nil {
		for _, r := range m.scene.Refs {
			selected[r.Name] = r.Current()
		}
		for _, in := range m.scene.Inputs {
			values = append(values, in.Value())
		}
	}

	scene, err := config.Build(m.cfg, m.log)
	if err != nil {
		return err
	}
	for _, r := range scene.Refs {
		if i, ok := selected[r.Name]; ok {
			if err := r.Select(i); err != nil {
				return err
			}
		}
	}
	for i, in := range scene.Inputs {
		if i < len(values) {
			in.SetText(values[i])
		}
	}

	doc := dom.NewDocument(m.width, m.bodyHeight())
	if err := doc.Render(scene); err != nil {
		return fmt.Errorf("tui: render scene: %w", err)
	}
	m.scene, m.doc = scene, doc
	m.focus = FocusScene
	m.refreshTabs()
	m.log.Debug("scene rendered", zap.Int("width", m.width), zap.Int("height", m.bodyHeight()))
	return nil
}

func (m Model) bodyHeight() int {
	if h := m.height - chromeRows; h > 0 {
		return h
	}
	return 1
}

// refreshTabs relabels the tab bar after a reference changed, keeping the
// active tab.
func (m *Model) refreshTabs() {
	labels := make([]string, len(m.scene.Refs))
	for i, r := range m.scene.Refs {
		labels[i] = r.Name + ": " + r.Label()
	}
	m.tabs = components.NewTabBar(labels).WithAccent(m.theme.Accent()).Select(m.tabs.Active())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if !Intercepts(m.focus, key) {
		if m.focus == FocusInput {
			return m, m.scene.Inputs[m.input].Update(msg)
		}
		return m, nil
	}

	if m.focus == FocusInput {
		switch key {
		case "esc":
			m.scene.Inputs[m.input].Blur()
			m.focus = FocusScene
			return m, nil
		case "tab":
			return m.focusInput((m.input + 1) % len(m.scene.Inputs))
		}
		return m, nil
	}

	if ov := m.scene.Overlay; ov != nil && ov.Active() {
		switch key {
		case "esc", "enter", "o":
			ov.Dismiss()
			return m, nil
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "tab":
		m.tabs = m.tabs.Next()
	case "shift+tab":
		m.tabs = m.tabs.Prev()
	case "enter", "right":
		m.cycle(true)
	case "left":
		m.cycle(false)
	case "o":
		m.report(m.scene.ShowOverlay())
	case "i":
		if len(m.scene.Inputs) > 0 {
			return m.focusInput(0)
		}
	}
	return m, m.schedule()
}

func (m *Model) cycle(forward bool) {
	if m.tabs.Len() == 0 {
		return
	}
	r := m.scene.Refs[m.tabs.Active()]
	if forward {
		m.report(r.Next())
	} else {
		m.report(r.Prev())
	}
	m.refreshTabs()
}

func (m Model) focusInput(i int) (tea.Model, tea.Cmd) {
	if m.focus == FocusInput {
		m.scene.Inputs[m.input].Blur()
	}
	m.focus = FocusInput
	m.input = i
	return m, m.scene.Inputs[i].Focus()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	x, y := msg.X, msg.Y-1
	if y < 0 || y >= m.bodyHeight() {
		return m, nil
	}

	overlayUp := m.scene.Overlay != nil && m.scene.Overlay.Active()
	if !overlayUp {
		for i, in := range m.scene.Inputs {
			if el, ok := in.Mounted().(*dom.Element); ok && el.Absolute().Contains(x, y) {
				return m.focusInput(i)
			}
		}
	}
	if m.focus == FocusInput {
		m.scene.Inputs[m.input].Blur()
		m.focus = FocusScene
	}
	if m.doc.Click(x, y) {
		m.log.Debug("click", zap.Int("x", x), zap.Int("y", y))
		m.refreshTabs()
	}
	return m, m.schedule()
}

// report records err from a scene action and logs it.
func (m *Model) report(err error) {
	if err != nil {
		m.log.Warn("scene action failed", zap.Error(err))
	}
	m.err = err
}

// schedule turns queued overlay tickets into timer commands.
func (m Model) schedule() tea.Cmd {
	tickets := m.scene.TakeTickets()
	if len(tickets) == 0 {
		return nil
	}
	ov := m.scene.Overlay
	cmds := make([]tea.Cmd, len(tickets))
	for i, t := range tickets {
		ticket := t
		cmds[i] = tea.Tick(ticket.After, func(_ time.Time) tea.Msg {
			return expireMsg{overlay: ov, ticket: ticket}
		})
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// View renders the header, the painted scene and the footer.
func (m Model) View() string {
	status := fmt.Sprintf(" %s  │  %dx%d  │  focus: %s", m.scene.Name, m.width, m.bodyHeight(), m.focus)
	if m.focus == FocusInput {
		status += fmt.Sprintf(" (%d/%d)", m.input+1, len(m.scene.Inputs))
	}
	header := m.theme.AccentHeaderStyle().Width(m.width).MaxWidth(m.width).Render(status)
	if m.err != nil {
		header = errorStyle.Width(m.width).MaxWidth(m.width).Render(" error: " + m.err.Error())
	}

	footer := footerStyle.Render(" tab: slot  enter/←/→: cycle  o: overlay  i: input  q: quit")
	if m.tabs.Len() > 0 {
		footer = " " + m.tabs.SetWidth(m.width-1).View()
	}
	footer = lipgloss.NewStyle().MaxWidth(m.width).Render(footer)

	return strings.Join([]string{header, raster.Terminal(m.doc.Root()), footer}, "\n")
}

// Scene returns the scene currently on screen.
func (m Model) Scene() *config.Scene { return m.scene }

