// Package components provides reusable pieces of the scene viewer.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tabInactiveStyle renders inactive tabs in a dimmed style.
var tabInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

// TabBar is a stateless row of labelled tabs, one per indirect reference in
// the viewed scene. The active tab is bold in the accent colour.
type TabBar struct {
	tabs   []string
	active int
	width  int
	accent lipgloss.Style
}

// NewTabBar creates a TabBar with the given labels. The first tab is active.
func NewTabBar(tabs []string) TabBar {
	return TabBar{
		tabs:   tabs,
		accent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
	}
}

// WithAccent returns a TabBar whose active tab uses color.
func (t TabBar) WithAccent(color string) TabBar {
	t.accent = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	return t
}

// Active returns the index of the active tab.
func (t TabBar) Active() int {
	return t.active
}

// Len returns the number of tabs.
func (t TabBar) Len() int {
	return len(t.tabs)
}

// Select returns a TabBar with tab i active. Out-of-range indexes are
// clamped.
func (t TabBar) Select(i int) TabBar {
	switch {
	case len(t.tabs) == 0 || i < 0:
		i = 0
	case i >= len(t.tabs):
		i = len(t.tabs) - 1
	}
	t.active = i
	return t
}

// Next returns a TabBar with the next tab active (wraps around).
func (t TabBar) Next() TabBar {
	if len(t.tabs) == 0 {
		return t
	}
	t.active = (t.active + 1) % len(t.tabs)
	return t
}

// Prev returns a TabBar with the previous tab active (wraps around).
func (t TabBar) Prev() TabBar {
	if len(t.tabs) == 0 {
		return t
	}
	t.active = (t.active + len(t.tabs) - 1) % len(t.tabs)
	return t
}

// SetWidth returns a TabBar truncated to w columns when rendered. Zero means
// unlimited.
func (t TabBar) SetWidth(w int) TabBar {
	t.width = w
	return t
}

// View renders the tab bar as a single line.
func (t TabBar) View() string {
	if len(t.tabs) == 0 {
		return ""
	}

	parts := make([]string, len(t.tabs))
	for i, label := range t.tabs {
		if i == t.active {
			parts[i] = t.accent.Render(label)
		} else {
			parts[i] = tabInactiveStyle.Render(label)
		}
	}

	line := strings.Join(parts, "  │  ")
	if t.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(t.width).Render(line)
	}
	return line
}
