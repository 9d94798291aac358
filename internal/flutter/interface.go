package flutter

import (
	"context"
)

// Toolchain provides an abstraction over the flutter CLI for
// testability. Every call is an opaque subprocess with fail-fast
// semantics: the first non-zero exit aborts the scaffolding workflow.
//
// The feature engine never touches this interface; only the CLI layer
// invokes the toolchain, and the engine treats its completion (the
// pubspec.yaml existing) as a precondition.
type Toolchain interface {
	// Create runs `flutter create` in dir for the given org, project
	// name and comma-separated platform list
	Create(dir, org, projectName, platforms string) error

	// EnableConfig runs `flutter config <flag>` (e.g. --enable-web)
	EnableConfig(flag string) error

	// PubGet runs `flutter pub get` in dir
	PubGet(dir string) error

	// Doctor runs `flutter doctor`
	Doctor() error

	// Test runs `flutter test` in dir
	Test(dir string) error

	// Context support for long-running invocations
	WithContext(ctx context.Context) Toolchain
}
