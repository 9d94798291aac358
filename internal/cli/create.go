package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/flutterforge/internal/feature"
	"github.com/jakoblorz/flutterforge/internal/features"
	"github.com/jakoblorz/flutterforge/internal/filesystem"
	"github.com/jakoblorz/flutterforge/internal/flutter"
	"github.com/jakoblorz/flutterforge/internal/models"
	"github.com/jakoblorz/flutterforge/internal/pubspec"
	"github.com/jakoblorz/flutterforge/internal/tui"
	"github.com/jakoblorz/flutterforge/internal/tui/scaffold"
)

const (
	initialVersionLine = "version: 1.0.0+1"
	forgedVersionLine  = "version: 0.0.1+1"
)

// CreateCommand handles the create command
type CreateCommand struct {
	fs        filesystem.FileSystem
	toolchain flutter.Toolchain

	org         string
	platforms   string
	featureCSV  string
	skipPrompts bool
	skipChecks  bool
}

// NewCreateCommand creates a new create command
func NewCreateCommand(fs filesystem.FileSystem, toolchain flutter.Toolchain) *cobra.Command {
	cmd := &CreateCommand{fs: fs, toolchain: toolchain}

	cobraCmd := &cobra.Command{
		Use:   "create [app_name]",
		Short: "Scaffold a new Flutter project",
		Long: `Scaffold a new Flutter project with the given app name and layer
the selected features onto it. Without an app name argument an
interactive prompt asks for one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.org, "org", features.DefaultOrg, "Organization identifier for the created project")
	cobraCmd.Flags().StringVar(&cmd.platforms, "platforms", features.DefaultPlatforms, "Comma-separated target platforms")
	cobraCmd.Flags().StringVar(&cmd.featureCSV, "features", "", "Comma-separated feature names to install (default: all)")
	cobraCmd.Flags().BoolVarP(&cmd.skipPrompts, "yes", "y", false, "Skip prompts and use defaults")
	cobraCmd.Flags().BoolVar(&cmd.skipChecks, "skip-checks", false, "Skip flutter doctor and the post-scaffold test run")

	return cobraCmd
}

// Run executes the create command
func (c *CreateCommand) Run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	appName, err := c.resolveAppName(args)
	if err != nil {
		return err
	}
	if appName == "" {
		return nil // user aborted the prompt
	}

	cwd, err := c.fs.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	projectDir := filepath.Join(cwd, appName)
	if c.fs.Exists(projectDir) {
		return fmt.Errorf("directory %s already exists", projectDir)
	}

	toolchain := c.toolchain.WithContext(cmd.Context())
	if !c.skipChecks {
		if err := toolchain.Doctor(); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, tui.HeaderStyle.Render("Creating Flutter project"), appName)
	if err := c.fs.MkdirAll(projectDir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	if err := toolchain.Create(projectDir, c.org, appName, c.platforms); err != nil {
		return err
	}
	if err := c.enablePlatforms(toolchain); err != nil {
		return err
	}
	if err := c.setInitialVersion(projectDir); err != nil {
		return err
	}

	manager := feature.NewManager(c.fs, projectDir)
	if err := features.RegisterBuiltin(manager); err != nil {
		return err
	}

	setupConfig := models.Config{
		features.AppNameKey:   appName,
		features.OrgKey:       c.org,
		features.PlatformsKey: c.platforms,
	}
	if err := manager.Install(features.ProjectSetup{}.Name(), setupConfig); err != nil {
		return err
	}

	selected, err := c.resolveFeatures(manager)
	if err != nil {
		return err
	}
	if selected == nil && !c.skipPrompts && c.featureCSV == "" {
		return nil // user aborted the prompt
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
	if err := toolchain.PubGet(projectDir); err != nil {
		return err
	}
	if !c.skipChecks {
		if err := toolchain.Test(projectDir); err != nil {
			return err
		}
	}

	printWarnings(out, manager)
	fmt.Fprintln(out, tui.SuccessStyle.Render("✓"), "Project created at", projectDir)
	fmt.Fprintln(out, tui.SubtleStyle.Render(fmt.Sprintf("Installed features: %s", strings.Join(manager.Installed(), ", "))))

	return nil
}

func (c *CreateCommand) resolveAppName(args []string) (string, error) {
	if len(args) == 1 {
		if err := features.ValidateAppName(args[0]); err != nil {
			return "", err
		}
		return args[0], nil
	}

	if c.skipPrompts {
		return "", fmt.Errorf("app name argument is required with --yes")
	}

	name, err := scaffold.NewFlow().AppName()
	if err != nil {
		if errors.Is(err, scaffold.ErrAborted) {
			return "", nil
		}
		return "", err
	}
	return name, nil
}

func (c *CreateCommand) enablePlatforms(toolchain flutter.Toolchain) error {
	if strings.Contains(c.platforms, "web") {
		if err := toolchain.EnableConfig("--enable-web"); err != nil {
			return err
		}
	}
	if strings.Contains(c.platforms, "macos") {
		if err := toolchain.EnableConfig("--enable-macos-desktop"); err != nil {
			return err
		}
	}
	return nil
}

// setInitialVersion rewrites the toolchain's 1.0.0+1 default to 0.0.1+1
func (c *CreateCommand) setInitialVersion(projectDir string) error {
	doc, err := pubspec.Load(c.fs, projectDir)
	if err != nil {
		return err
	}
	if !doc.ReplaceLine(initialVersionLine, forgedVersionLine) {
		return nil // already customized, leave it alone
	}
	return doc.Save()
}

// resolveFeatures decides which features to install on top of Project
// Setup: the --features flag wins, then an interactive multiselect,
// then (with --yes) everything.
func (c *CreateCommand) resolveFeatures(manager *feature.Manager) ([]string, error) {
	extras := make([]string, 0)
	for _, name := range manager.Available() {
		if name != (features.ProjectSetup{}).Name() {
			extras = append(extras, name)
		}
	}

	if c.featureCSV != "" {
		var selected []string
		for _, name := range strings.Split(c.featureCSV, ",") {
			selected = append(selected, strings.TrimSpace(name))
		}
		return selected, nil
	}

	if c.skipPrompts {
		return extras, nil
	}

	selected, err := scaffold.NewFlow().SelectFeatures(extras, extras)
	if err != nil {
		if errors.Is(err, scaffold.ErrAborted) {
			return nil, nil
		}
		return nil, err
	}
	return selected, nil
}
