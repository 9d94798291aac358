package feature

import (
	"github.com/jakoblorz/flutterforge/internal/filesystem"
	"github.com/jakoblorz/flutterforge/internal/models"
)

// Feature is a self-contained unit of optional project functionality.
//
// Render must be a pure function of (projectName, config): no hidden
// state, no I/O. That purity is what makes file generation safely
// re-runnable in tests.
type Feature interface {
	// Name is the unique, human-readable key used for lookup
	Name() string

	// Dependencies lists feature names that must be installed first
	Dependencies() []string

	// PackageRequirements lists pub packages this feature needs declared
	PackageRequirements() []models.PackageRequirement

	// Render produces the feature's file set as a mapping from
	// project-root-relative path to file content
	Render(projectName string, config models.Config) (map[string]string, error)
}

// Uninstaller is an optional hook a Feature may implement to clean up
// its generated files on uninstall. File removal is best-effort; the
// engine's only hard guarantee is removal from the installed set.
type Uninstaller interface {
	Uninstall(fs filesystem.FileSystem, projectRoot, projectName string, config models.Config) error
}
