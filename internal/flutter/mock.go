package flutter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/flutterforge/internal/filesystem"
)

// mockPubspecTemplate approximates what `flutter create` emits. The
// dev_dependencies anchor and the initial version line matter; the
// rest is scenery.
const mockPubspecTemplate = `name: %s
description: "A new Flutter project."
publish_to: 'none'
version: 1.0.0+1

environment:
  sdk: ^3.2.0

dependencies:
  flutter:
    sdk: flutter
  cupertino_icons: ^1.0.2

dev_dependencies:
  flutter_test:
    sdk: flutter
  flutter_lints: ^2.0.0
`

const mockMainDart = `import 'package:flutter/material.dart';

void main() {
  runApp(const MaterialApp(home: Scaffold()));
}
`

// MockToolchain implements Toolchain without running any subprocess.
// When a mock filesystem is attached, Create seeds a minimal project
// tree the way the real toolchain would.
type MockToolchain struct {
	// Calls records every invocation in order, for assertions
	Calls []string

	// FailOn makes the named call (e.g. "create", "pub get") fail
	FailOn string

	fs *filesystem.MockFileSystem
}

// NewMockToolchain creates a MockToolchain
func NewMockToolchain() *MockToolchain {
	return &MockToolchain{}
}

// WithFileSystem attaches a mock filesystem for Create to seed
func (t *MockToolchain) WithFileSystem(fs *filesystem.MockFileSystem) *MockToolchain {
	t.fs = fs
	return t
}

// WithContext returns the mock unchanged
func (t *MockToolchain) WithContext(ctx context.Context) Toolchain {
	return t
}

func (t *MockToolchain) record(call string) error {
	t.Calls = append(t.Calls, call)
	if t.FailOn != "" && strings.HasPrefix(call, t.FailOn) {
		return fmt.Errorf("flutter %s failed: mock failure", call)
	}
	return nil
}

// Create records the call and, when a filesystem is attached, seeds a
// minimal Flutter project under dir
func (t *MockToolchain) Create(dir, org, projectName, platforms string) error {
	if err := t.record(fmt.Sprintf("create %s %s %s", org, projectName, platforms)); err != nil {
		return err
	}

	if t.fs != nil {
		pubspec := fmt.Sprintf(mockPubspecTemplate, projectName)
		t.fs.AddFile(filepath.Join(dir, "pubspec.yaml"), []byte(pubspec))
		t.fs.AddFile(filepath.Join(dir, "lib", "main.dart"), []byte(mockMainDart))
		t.fs.AddDir(filepath.Join(dir, "test"))
	}

	return nil
}

// EnableConfig records the call
func (t *MockToolchain) EnableConfig(flag string) error {
	return t.record("config " + flag)
}

// PubGet records the call
func (t *MockToolchain) PubGet(dir string) error {
	return t.record("pub get")
}

// Doctor records the call
func (t *MockToolchain) Doctor() error {
	return t.record("doctor")
}

// Test records the call
func (t *MockToolchain) Test(dir string) error {
	return t.record("test")
}
