package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/flutterforge/internal/filesystem"
	"github.com/jakoblorz/flutterforge/internal/flutter"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, toolchain flutter.Toolchain) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flutterforge",
		Short: "Scaffold Flutter projects with composable features",
		Long: `A CLI tool for scaffolding Flutter projects.

flutterforge creates a project with the flutter toolchain and layers
optional features (state management, theming, routing, auth, backend
client) onto the generated source tree.`,
		SilenceUsage: true,
	}

	// Add subcommands
	rootCmd.AddCommand(NewCreateCommand(fs, toolchain))
	rootCmd.AddCommand(NewAddCommand(fs, toolchain))
	rootCmd.AddCommand(NewRemoveCommand(fs))
	rootCmd.AddCommand(NewFeaturesCommand(fs))
	rootCmd.AddCommand(NewSyncCommand(fs))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	toolchain := flutter.NewOSToolchain()

	rootCmd := NewRootCommand(fs, toolchain)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
