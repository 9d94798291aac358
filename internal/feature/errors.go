package feature

import "errors"

// Engine-level precondition failures. All are wrapped with the offending
// feature or dependency name so callers can fix ordering mistakes, and
// remain matchable via errors.Is.
var (
	ErrDuplicateFeature = errors.New("feature already registered")
	ErrUnknownFeature   = errors.New("unknown feature")
	ErrAlreadyInstalled = errors.New("feature already installed")
	ErrNotInstalled     = errors.New("feature not installed")
	ErrUnmetDependency  = errors.New("unmet feature dependency")
)
