// Package tui provides the bubbletea + lipgloss viewer for gridwork scenes.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorGray = lipgloss.Color("#888888")
	colorRed  = lipgloss.Color("#FF6B6B")
)

var (
	footerStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)
)
