package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/flutterforge/internal/filesystem"
	"github.com/jakoblorz/flutterforge/internal/flutter"
	"github.com/jakoblorz/flutterforge/internal/tui"
	"github.com/jakoblorz/flutterforge/internal/tui/scaffold"
)

// AddCommand handles the add command
type AddCommand struct {
	fs        filesystem.FileSystem
	toolchain flutter.Toolchain
}

// NewAddCommand creates a new add command
func NewAddCommand(fs filesystem.FileSystem, toolchain flutter.Toolchain) *cobra.Command {
	cmd := &AddCommand{fs: fs, toolchain: toolchain}

	cobraCmd := &cobra.Command{
		Use:   "add [feature...]",
		Short: "Install features into the current project",
		Long: `Install one or more features into the Flutter project containing the
current directory. Without arguments an interactive selection of the
not-yet-installed features is shown.`,
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the add command
func (c *AddCommand) Run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	root, err := findProjectRoot(c.fs)
	if err != nil {
		return err
	}

	manager, err := openManager(c.fs, root)
	if err != nil {
		return err
	}

	selected := args
	if len(selected) == 0 {
		var remaining []string
		for _, name := range manager.Available() {
			if !manager.IsInstalled(name) {
				remaining = append(remaining, name)
			}
		}
		if len(remaining) == 0 {
			fmt.Fprintln(out, tui.SubtleStyle.Render("All features are already installed."))
			return nil
		}

		selected, err = scaffold.NewFlow().SelectFeatures(remaining, nil)
		if err != nil {
			if errors.Is(err, scaffold.ErrAborted) {
				return nil
			}
			return err
		}
		if len(selected) == 0 {
			return nil
		}
	}

	for _, name := range selected {
		installed, err := installWithPrerequisites(manager, name)
		if err != nil {
			return err
		}
		for _, n := range installed {
			fmt.Fprintln(out, tui.InstalledStyle.Render("+"), n)
		}
	}

	if err := manager.SyncPubspec(); err != nil {
		return err
	}
	if err := c.toolchain.WithContext(cmd.Context()).PubGet(root); err != nil {
		return err
	}

	printWarnings(out, manager)
	fmt.Fprintln(out, tui.SuccessStyle.Render("✓"), "Features installed")
	return nil
}
