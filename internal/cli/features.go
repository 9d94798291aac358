package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/flutterforge/internal/filesystem"
	"github.com/jakoblorz/flutterforge/internal/tui"
)

// FeaturesCommand handles the features command
type FeaturesCommand struct {
	fs filesystem.FileSystem
}

// NewFeaturesCommand creates a new features command
func NewFeaturesCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &FeaturesCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "features",
		Short: "List available and installed features",
		RunE:  cmd.Run,
	}

	return cobraCmd
}

// Run executes the features command
func (c *FeaturesCommand) Run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	root, err := findProjectRoot(c.fs)
	if err != nil {
		return err
	}

	manager, err := openManager(c.fs, root)
	if err != nil {
		return err
	}
	printWarnings(out, manager)

	fmt.Fprintln(out, tui.TitleStyle.Render("Features for "+manager.ProjectName()))
	for _, name := range manager.Available() {
		marker := tui.AvailableStyle.Render("[ ]")
		if manager.IsInstalled(name) {
			marker = tui.InstalledStyle.Render("[x]")
		}
		fmt.Fprintf(out, "%s %s\n", marker, name)
	}

	installed := manager.Installed()
	if len(installed) > 0 {
		fmt.Fprintln(out, tui.SubtleStyle.Render("Install order: "+strings.Join(installed, " → ")))
	}

	return nil
}
