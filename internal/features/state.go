package features

import (
	"github.com/jakoblorz/flutterforge/internal/models"
)

const appProvidersTemplate = `import 'package:flutter_riverpod/flutter_riverpod.dart';

/// App-wide providers live here. Feature packages contribute their own
/// providers in lib/core/providers; this file is the central place to
/// compose them.
final appInitializedProvider = StateProvider<bool>((ref) {
  return false;
});
`

// StateManagement wires Riverpod into the project and establishes the
// lib/core/providers convention the other features build on.
type StateManagement struct{}

func (StateManagement) Name() string { return "State Management" }

func (StateManagement) Dependencies() []string { return nil }

func (StateManagement) PackageRequirements() []models.PackageRequirement {
	return []models.PackageRequirement{
		models.NewPackageRequirement("flutter_riverpod", "^2.4.9"),
		models.NewPackageRequirement("path_provider", "^2.1.1"),
	}
}

func (StateManagement) Render(projectName string, config models.Config) (map[string]string, error) {
	return renderAll(map[string]string{
		"lib/core/providers/app_providers.dart": appProvidersTemplate,
	}, templateData{Project: projectName, Config: config})
}
