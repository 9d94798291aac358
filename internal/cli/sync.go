package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/flutterforge/internal/filesystem"
	"github.com/jakoblorz/flutterforge/internal/tui"
)

// SyncCommand handles the sync command
type SyncCommand struct {
	fs filesystem.FileSystem
}

// NewSyncCommand creates a new sync command
func NewSyncCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &SyncCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "sync",
		Short: "Merge installed features' dependencies into pubspec.yaml",
		Long: `Consolidate the package requirements of every installed feature into
pubspec.yaml in one idempotent pass. Running sync repeatedly never
duplicates a declaration.`,
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the sync command
func (c *SyncCommand) Run(cmd *cobra.Command, args []string) error {
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

	if err := manager.SyncPubspec(); err != nil {
		return err
	}

	fmt.Fprintln(out, tui.SuccessStyle.Render("✓"), "pubspec.yaml is in sync")
	return nil
}
