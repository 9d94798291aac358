package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#42A5F5")).
			MarginBottom(1)

	// Header styling for scaffolding steps
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#42A5F5")).
			Padding(0, 1)

	// Installed feature marker
	InstalledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	// Available (not installed) feature marker
	AvailableStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	// Error styling
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	// Success styling
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	// Subtle text styling
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)
