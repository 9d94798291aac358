package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/flutterforge/internal/filesystem"
	"github.com/jakoblorz/flutterforge/internal/tui"
)

// RemoveCommand handles the remove command
type RemoveCommand struct {
	fs filesystem.FileSystem
}

// NewRemoveCommand creates a new remove command
func NewRemoveCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &RemoveCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "remove <feature>...",
		Short: "Uninstall features from the current project",
		Long: `Remove one or more installed features. The install record is always
removed; generated file cleanup is best-effort and feature-defined.
Dependency declarations already merged into pubspec.yaml are left in
place.`,
		Args: cobra.MinimumNArgs(1),
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the remove command
func (c *RemoveCommand) Run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	root, err := findProjectRoot(c.fs)
	if err != nil {
		return err
	}

	manager, err := openManager(c.fs, root)
	if err != nil {
		return err
	}

	for _, name := range args {
		if err := manager.Uninstall(name); err != nil {
			return err
		}
		fmt.Fprintln(out, tui.InstalledStyle.Render("-"), name)
	}

	printWarnings(out, manager)
	fmt.Fprintln(out, tui.SuccessStyle.Render("✓"), "Features removed")
	return nil
}
