package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Gridwork/internal/config"
)

// Theme holds accent-color-derived styles.
type Theme struct {
	accent      string
	accentStyle lipgloss.Style // header background
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#7D56F4").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	color := config.DefaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	return Theme{
		accent: color,
		accentStyle: lipgloss.NewStyle().
			Background(lipgloss.Color(color)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
	}
}

// Accent returns the accent color.
func (t Theme) Accent() string {
	return t.accent
}

// AccentHeaderStyle returns the style for the header bar.
func (t Theme) AccentHeaderStyle() lipgloss.Style {
	return t.accentStyle
}
