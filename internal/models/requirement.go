package models

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// PackageRequirement is a single pub package declaration a feature wants
// present in pubspec.yaml. The engine only guarantees the declaration
// line exists, not that the constraint is satisfiable.
type PackageRequirement struct {
	// Package is the pub package name (e.g. "flutter_riverpod")
	Package string

	// Constraint is the version constraint (e.g. "^2.4.9")
	Constraint string
}

// NewPackageRequirement creates a PackageRequirement
func NewPackageRequirement(pkg, constraint string) PackageRequirement {
	return PackageRequirement{Package: pkg, Constraint: constraint}
}

// Validate checks that the package name and constraint are well-formed.
// Caret constraints are the only supported form, matching what pub emits.
func (r PackageRequirement) Validate() error {
	if strings.TrimSpace(r.Package) == "" {
		return fmt.Errorf("package name cannot be empty")
	}

	version := strings.TrimPrefix(r.Constraint, "^")
	if version == r.Constraint {
		return fmt.Errorf("unsupported constraint %q for package %s (expected caret constraint)", r.Constraint, r.Package)
	}
	if !semver.IsValid("v" + version) {
		return fmt.Errorf("invalid version %q for package %s", version, r.Package)
	}

	return nil
}

// Declaration returns the pubspec dependency line for this requirement,
// indented for the top-level dependencies block.
func (r PackageRequirement) Declaration() string {
	return fmt.Sprintf("  %s: %s", r.Package, r.Constraint)
}
