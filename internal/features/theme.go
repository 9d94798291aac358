package features

import (
	"path/filepath"

	"github.com/jakoblorz/flutterforge/internal/filesystem"
	"github.com/jakoblorz/flutterforge/internal/models"
)

const themeProviderTemplate = `import 'package:flutter/material.dart';
import 'package:flutter_riverpod/flutter_riverpod.dart';

class ThemeNotifier extends StateNotifier<ThemeMode> {
  ThemeNotifier() : super(ThemeMode.dark);

  void toggleTheme() {
    state = state == ThemeMode.dark ? ThemeMode.light : ThemeMode.dark;
  }
}

final themeProvider = StateNotifierProvider<ThemeNotifier, ThemeMode>((ref) {
  return ThemeNotifier();
});
`

const appThemeTemplate = `import 'package:flutter/material.dart';

class AppTheme {
  static ThemeData get lightTheme {
    return ThemeData(
      useMaterial3: true,
      colorScheme: ColorScheme.fromSeed(
        seedColor: {{ .Config.seed_color | default "Colors.blue" }},
        brightness: Brightness.light,
      ),
    );
  }

  static ThemeData get darkTheme {
    return ThemeData(
      useMaterial3: true,
      colorScheme: ColorScheme.fromSeed(
        seedColor: {{ .Config.seed_color | default "Colors.blue" }},
        brightness: Brightness.dark,
      ),
      scaffoldBackgroundColor: Colors.grey[900],
      appBarTheme: AppBarTheme(
        backgroundColor: Colors.grey[850],
        foregroundColor: Colors.white,
      ),
    );
  }
}
`

// Theme installs a light/dark theme pair and the Riverpod notifier that
// toggles between them. The seed color is configurable via the
// "seed_color" config key (a Dart Color expression).
type Theme struct{}

func (Theme) Name() string { return "Theme Support" }

func (Theme) Dependencies() []string { return []string{"State Management"} }

func (Theme) PackageRequirements() []models.PackageRequirement { return nil }

func (Theme) Render(projectName string, config models.Config) (map[string]string, error) {
	return renderAll(map[string]string{
		"lib/core/providers/theme_provider.dart": themeProviderTemplate,
		"lib/theme/app_theme.dart":               appThemeTemplate,
	}, templateData{Project: projectName, Config: config})
}

// Uninstall removes the theme files (best-effort)
func (Theme) Uninstall(fs filesystem.FileSystem, projectRoot, projectName string, config models.Config) error {
	if err := fs.RemoveAll(filepath.Join(projectRoot, "lib", "theme")); err != nil {
		return err
	}
	path := filepath.Join(projectRoot, "lib", "core", "providers", "theme_provider.dart")
	if fs.Exists(path) {
		return fs.Remove(path)
	}
	return nil
}
