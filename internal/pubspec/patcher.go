package pubspec

import (
	"errors"
	"fmt"
	"strings"
)

// DevDependenciesAnchor marks the start of the dev_dependencies section.
// Dependency declarations are inserted immediately before it, which puts
// them at the end of the regular dependencies block.
const DevDependenciesAnchor = "dev_dependencies:"

// MaterialDesignFlag and FlutterSectionHeader are the structural lines
// every scaffolded pubspec must end up with.
const (
	MaterialDesignFlag   = "  uses-material-design: true"
	FlutterSectionHeader = "flutter:"
)

// ErrMissingDevDependencies is returned when a pubspec has no
// dev_dependencies section. flutter create always emits one, so a
// missing anchor means the manifest is not one we scaffolded.
var ErrMissingDevDependencies = errors.New("dev_dependencies section not found")

// InsertDependencies returns a new line sequence with each declaration
// inserted immediately before the dev_dependencies anchor. Declarations
// already present anywhere in lines are skipped, so applying the same
// set twice yields identical output. The input slice is not mutated.
func InsertDependencies(lines []string, declarations []string) ([]string, error) {
	anchor := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == DevDependenciesAnchor {
			anchor = i
			break
		}
	}
	if anchor == -1 {
		return nil, fmt.Errorf("%w in pubspec.yaml", ErrMissingDevDependencies)
	}

	present := make(map[string]bool, len(lines))
	for _, line := range lines {
		present[line] = true
	}

	var missing []string
	for _, decl := range declarations {
		if present[decl] {
			continue
		}
		present[decl] = true
		missing = append(missing, decl)
	}

	result := make([]string, 0, len(lines)+len(missing))
	result = append(result, lines[:anchor]...)
	result = append(result, missing...)
	result = append(result, lines[anchor:]...)

	return result, nil
}

// EnsureFlag returns a new line sequence guaranteed to contain flagText.
// When it is absent, a fresh section block (sectionHeader + flagText) is
// appended at the end of the document. This deliberately does not merge
// into an existing block that differs in formatting; the manifest is
// small and line-oriented, and an append keeps the edit observable.
func EnsureFlag(lines []string, flagText, sectionHeader string) []string {
	for _, line := range lines {
		if strings.Contains(line, strings.TrimSpace(flagText)) {
			return append([]string(nil), lines...)
		}
	}

	result := append([]string(nil), lines...)
	result = append(result,
		"",
		"# The following section is specific to Flutter packages.",
		sectionHeader,
		flagText,
	)
	return result
}
