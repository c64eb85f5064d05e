package render

import "github.com/charmbracelet/lipgloss"

// Color palette, kept to ANSI base colors so it degrades well.
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "4", Dark: "12"} // Blue
	colorOk     = lipgloss.AdaptiveColor{Light: "2", Dark: "10"} // Green
	colorWarn   = lipgloss.AdaptiveColor{Light: "3", Dark: "11"} // Yellow
	colorDim    = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}  // Gray
)

// Styles for terminal route output
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	stepNumStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorOk)

	categoryStyle = lipgloss.NewStyle().
			Foreground(colorWarn)

	conditionStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorWarn)
)
