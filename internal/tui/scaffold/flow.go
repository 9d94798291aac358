package scaffold

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"

	"github.com/jakoblorz/flutterforge/internal/features"
	"github.com/jakoblorz/flutterforge/internal/tui"
)

// Flow hosts the interactive prompts of the create and add commands.
type Flow struct {
	theme *huh.Theme
}

// NewFlow constructs a Flow with the shared huh theme
func NewFlow() *Flow {
	return &Flow{theme: tui.NewHuhTheme()}
}

// ErrAborted is returned when the user cancels a form
var ErrAborted = errors.New("aborted")

// AppName prompts for a valid app name
func (f *Flow) AppName() (string, error) {
	name := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Value(&name).
				Placeholder("my_app").
				Validate(func(v string) error {
					return features.ValidateAppName(strings.TrimSpace(v))
				}),
		).
			Title("App Name").
			Description("Lowercase letters, numbers and underscores. Must start with a letter."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrAborted
		}
		return "", err
	}

	return strings.TrimSpace(name), nil
}

// SelectFeatures prompts for a subset of the given feature names
func (f *Flow) SelectFeatures(available []string, preselected []string) ([]string, error) {
	selected := append([]string(nil), preselected...)

	opts := make([]huh.Option[string], 0, len(available))
	for _, name := range available {
		opts = append(opts, huh.NewOption(name, name))
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.MultiSelect.Filter.SetEnabled(false)
	keyMap.MultiSelect.Toggle.SetKeys(" ")
	keyMap.MultiSelect.Toggle.SetHelp("space", "toggle selection")
	keyMap.MultiSelect.Submit.SetKeys("enter")
	keyMap.MultiSelect.Submit.SetHelp("enter", "continue")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Options(opts...).
				Value(&selected),
		).
			Title("Feature Selection").
			Description("Select the features to install. Prerequisites are added automatically."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrAborted
		}
		return nil, err
	}

	return selected, nil
}
