package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// NewHuhTheme returns the blue huh theme used by all interactive forms
func NewHuhTheme() *huh.Theme {
	theme := huh.ThemeCharm()

	blue := lipgloss.Color("#42A5F5")
	theme.Focused.Title = theme.Focused.Title.Foreground(blue).Bold(true)
	theme.Focused.SelectedOption = theme.Focused.SelectedOption.Foreground(blue)
	theme.Focused.SelectSelector = theme.Focused.SelectSelector.Foreground(blue)
	theme.Focused.MultiSelectSelector = theme.Focused.MultiSelectSelector.Foreground(blue)

	return theme
}
