// Package ui provides the interactive terminal menu for eternal-green.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color scheme used throughout the application.
type Colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Special   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

var defaultColors = Colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#43BF6D"},
	Special:   lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style is the collection of lipgloss styles used by the views.
type Style struct {
	Title      lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Value      lipgloss.Style
	Active     lipgloss.Style
	InputBox   lipgloss.Style
	Help       lipgloss.Style
	Error      lipgloss.Style
	Status     lipgloss.Style
}

// DefaultStyle returns the default style configuration.
func DefaultStyle() Style {
	base := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	return Style{
		Title: base.Bold(true).
			Foreground(defaultColors.Highlight),

		Selected: base.Bold(true).
			Foreground(defaultColors.Highlight),

		Unselected: base.
			Foreground(defaultColors.Subtle),

		Value: base.
			Foreground(defaultColors.Special),

		Active: base.
			Foreground(defaultColors.Special),

		InputBox: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(defaultColors.Highlight).
			Padding(0, 1),

		Help: base.
			Foreground(defaultColors.Subtle),

		Error: base.
			Foreground(defaultColors.Error),

		Status: base.
			Foreground(defaultColors.Special),
	}
}

// Current holds the active style configuration.
var Current = DefaultStyle()
