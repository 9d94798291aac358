package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jakoblorz/flutterforge/internal/feature"
	"github.com/jakoblorz/flutterforge/internal/features"
	"github.com/jakoblorz/flutterforge/internal/filesystem"
	"github.com/jakoblorz/flutterforge/internal/pubspec"
	"github.com/jakoblorz/flutterforge/internal/tui"
)

// findProjectRoot walks up the directory tree from the working
// directory looking for a pubspec.yaml.
func findProjectRoot(fs filesystem.FileSystem) (string, error) {
	cwd, err := fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	dir := cwd
	for {
		if fs.Exists(filepath.Join(dir, pubspec.FileName)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found upward of %s (not inside a Flutter project)", pubspec.FileName, cwd)
		}
		dir = parent
	}
}

// openManager builds a Manager for an existing project: built-in
// features registered, installed state restored from records.
func openManager(fs filesystem.FileSystem, projectRoot string) (*feature.Manager, error) {
	manager := feature.NewManager(fs, projectRoot)

	if err := features.RegisterBuiltin(manager); err != nil {
		return nil, err
	}
	if err := manager.Load(); err != nil {
		return nil, err
	}

	return manager, nil
}

// printWarnings drains the manager's accumulated warnings to the
// command output
func printWarnings(out io.Writer, manager *feature.Manager) {
	for _, warning := range manager.Warnings() {
		fmt.Fprintln(out, tui.ErrorStyle.Render("!"), warning)
	}
}

// installWithPrerequisites installs name plus any missing transitive
// prerequisites, in dependency order. Returns the names installed.
func installWithPrerequisites(manager *feature.Manager, name string) ([]string, error) {
	closure, err := manager.PrerequisiteClosure(name)
	if err != nil {
		return nil, err
	}

	for _, n := range closure {
		if err := manager.Install(n, nil); err != nil {
			return nil, err
		}
	}

	return closure, nil
}
