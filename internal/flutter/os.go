package flutter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// OSToolchain implements Toolchain by running the real flutter binary
type OSToolchain struct {
	ctx context.Context
}

// NewOSToolchain creates a new OSToolchain
func NewOSToolchain() *OSToolchain {
	return &OSToolchain{
		ctx: context.Background(),
	}
}

// WithContext returns a new toolchain with the given context
func (t *OSToolchain) WithContext(ctx context.Context) Toolchain {
	return &OSToolchain{
		ctx: ctx,
	}
}

func (t *OSToolchain) run(dir string, args ...string) error {
	cmd := exec.CommandContext(t.ctx, "flutter", args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("flutter %s failed: %w: %s", args[0], err, stderr.String())
	}

	return nil
}

// Create runs flutter create in dir
func (t *OSToolchain) Create(dir, org, projectName, platforms string) error {
	return t.run(dir,
		"create",
		"--org", org,
		"--project-name", projectName,
		"--platforms", platforms,
		".",
	)
}

// EnableConfig runs flutter config with the given flag
func (t *OSToolchain) EnableConfig(flag string) error {
	return t.run("", "config", flag)
}

// PubGet runs flutter pub get in dir
func (t *OSToolchain) PubGet(dir string) error {
	return t.run(dir, "pub", "get")
}

// Doctor runs flutter doctor
func (t *OSToolchain) Doctor() error {
	return t.run("", "doctor")
}

// Test runs flutter test in dir
func (t *OSToolchain) Test(dir string) error {
	return t.run(dir, "test")
}
