// Package ui holds the terminal presentation layer: color theme,
// headless-mode detection, progress reporting and markdown rendering.
// Every component degrades to plain text when stdout is not a TTY.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Colors is the theme palette. Values are hex color strings.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string
	Muted     string
}

// Theme bundles the palette with the derived lipgloss styles.
type Theme struct {
	Colors  Colors
	NoColor bool

	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Key     lipgloss.Style
}

// DefaultTheme builds the standard theme. Setting the NO_COLOR
// environment variable disables all styling.
func DefaultTheme() *Theme {
	t := &Theme{
		Colors: Colors{
			Primary:   "#7C3AED",
			Secondary: "#06B6D4",
			Success:   "#22C55E",
			Error:     "#EF4444",
			Warning:   "#F59E0B",
			Muted:     "#6B7280",
		},
		NoColor: os.Getenv("NO_COLOR") != "",
	}
	if t.NoColor {
		plain := lipgloss.NewStyle()
		t.Title, t.Success, t.Error, t.Warning, t.Muted, t.Key =
			plain, plain, plain, plain, plain, plain
		return t
	}
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Colors.Primary))
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Success))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Error))
	t.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Warning))
	t.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Muted))
	t.Key = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Colors.Secondary))
	return t
}
