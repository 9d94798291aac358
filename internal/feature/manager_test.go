package feature_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/flutterforge/internal/feature"
	"github.com/jakoblorz/flutterforge/internal/filesystem"
	"github.com/jakoblorz/flutterforge/internal/models"
)

// stubFeature is a minimal Feature for exercising the manager without
// pulling in the built-in feature set.
type stubFeature struct {
	name      string
	deps      []string
	reqs      []models.PackageRequirement
	files     map[string]string
	renderErr error
}

func (f stubFeature) Name() string                                     { return f.name }
func (f stubFeature) Dependencies() []string                           { return f.deps }
func (f stubFeature) PackageRequirements() []models.PackageRequirement { return f.reqs }

func (f stubFeature) Render(string, models.Config) (map[string]string, error) {
	if f.renderErr != nil {
		return nil, f.renderErr
	}
	return f.files, nil
}

// removableFeature additionally cleans up its files on uninstall
type removableFeature struct {
	stubFeature
}

// brokenCleanupFeature has an uninstall hook that always fails
type brokenCleanupFeature struct {
	stubFeature
}

func (f brokenCleanupFeature) Uninstall(filesystem.FileSystem, string, string, models.Config) error {
	return errors.New("cleanup failed")
}

func (f removableFeature) Uninstall(fs filesystem.FileSystem, projectRoot, projectName string, config models.Config) error {
	for rel := range f.files {
		if err := fs.Remove(filepath.Join(projectRoot, rel)); err != nil {
			return err
		}
	}
	return nil
}

func newTestManager(t *testing.T) (*feature.Manager, *filesystem.MockFileSystem) {
	t.Helper()
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/workspace/app/pubspec.yaml", []byte("name: app\ndependencies:\ndev_dependencies:\n  flutter_test:\n"))
	return feature.NewManager(fs, "/workspace/app"), fs
}

func TestManager_RegisterDuplicate(t *testing.T) {
	manager, _ := newTestManager(t)

	require.NoError(t, manager.Register(stubFeature{name: "A"}))

	err := manager.Register(stubFeature{name: "A"})
	require.Error(t, err)
	require.True(t, errors.Is(err, feature.ErrDuplicateFeature))
	require.Contains(t, err.Error(), "A")
}

func TestManager_RegisterInvalidRequirement(t *testing.T) {
	manager, _ := newTestManager(t)

	err := manager.Register(stubFeature{
		name: "A",
		reqs: []models.PackageRequirement{{Package: "foo", Constraint: "not-a-version"}},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "A")
}

func TestManager_AvailableKeepsRegistrationOrder(t *testing.T) {
	manager, _ := newTestManager(t)

	require.NoError(t, manager.Register(stubFeature{name: "C"}))
	require.NoError(t, manager.Register(stubFeature{name: "A"}))
	require.NoError(t, manager.Register(stubFeature{name: "B"}))

	require.NoError(t, manager.Install("C", nil))

	require.Equal(t, []string{"C", "A", "B"}, manager.Available())
}

func TestManager_InstallUnknown(t *testing.T) {
	manager, _ := newTestManager(t)

	err := manager.Install("Nope", nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, feature.ErrUnknownFeature))
	require.Empty(t, manager.Installed())
}

func TestManager_InstallTwice(t *testing.T) {
	manager, _ := newTestManager(t)
	require.NoError(t, manager.Register(stubFeature{name: "A"}))

	require.NoError(t, manager.Install("A", nil))

	err := manager.Install("A", nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, feature.ErrAlreadyInstalled))
	require.Equal(t, []string{"A"}, manager.Installed())
}

func TestManager_InstallUnmetDependency(t *testing.T) {
	manager, fs := newTestManager(t)
	require.NoError(t, manager.Register(stubFeature{name: "A", files: map[string]string{"lib/a.dart": "// a"}}))
	require.NoError(t, manager.Register(stubFeature{name: "B", deps: []string{"A"}, files: map[string]string{"lib/b.dart": "// b"}}))

	err := manager.Install("B", nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, feature.ErrUnmetDependency))
	require.Contains(t, err.Error(), `"A"`)
	require.Empty(t, manager.Installed())
	require.Zero(t, fs.WriteCount)
}

func TestManager_InstallInDependencyOrder(t *testing.T) {
	manager, fs := newTestManager(t)
	require.NoError(t, manager.Register(stubFeature{name: "A", files: map[string]string{"lib/a.dart": "// a"}}))
	require.NoError(t, manager.Register(stubFeature{name: "B", deps: []string{"A"}, files: map[string]string{"lib/b.dart": "// b"}}))

	require.NoError(t, manager.Install("A", nil))
	require.NoError(t, manager.Install("B", nil))

	require.Equal(t, []string{"A", "B"}, manager.Installed())
	require.True(t, manager.IsInstalled("A"))
	require.True(t, manager.IsInstalled("B"))
	require.True(t, fs.Exists("/workspace/app/lib/a.dart"))
	require.True(t, fs.Exists("/workspace/app/lib/b.dart"))
}

func TestManager_InstallRenderFailureRecordsNothing(t *testing.T) {
	manager, _ := newTestManager(t)
	require.NoError(t, manager.Register(stubFeature{name: "A", renderErr: errors.New("bad template")}))

	err := manager.Install("A", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad template")
	require.Empty(t, manager.Installed())
}

func TestManager_LaterInstallOverwritesSharedFile(t *testing.T) {
	manager, fs := newTestManager(t)
	require.NoError(t, manager.Register(stubFeature{name: "A", files: map[string]string{"lib/main.dart": "// from A"}}))
	require.NoError(t, manager.Register(stubFeature{name: "B", files: map[string]string{"lib/main.dart": "// from B"}}))

	require.NoError(t, manager.Install("A", nil))
	require.NoError(t, manager.Install("B", nil))

	data, err := fs.ReadFile("/workspace/app/lib/main.dart")
	require.NoError(t, err)
	require.Equal(t, "// from B", string(data))
}

func TestManager_PrerequisiteClosure(t *testing.T) {
	manager, _ := newTestManager(t)
	require.NoError(t, manager.Register(stubFeature{name: "A"}))
	require.NoError(t, manager.Register(stubFeature{name: "B", deps: []string{"A"}}))
	require.NoError(t, manager.Register(stubFeature{name: "C", deps: []string{"B"}}))

	closure, err := manager.PrerequisiteClosure("C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, closure)

	// already-installed prerequisites drop out of the closure
	require.NoError(t, manager.Install("A", nil))
	closure, err = manager.PrerequisiteClosure("C")
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C"}, closure)

	_, err = manager.PrerequisiteClosure("Nope")
	require.True(t, errors.Is(err, feature.ErrUnknownFeature))
}

func TestManager_UninstallNotInstalled(t *testing.T) {
	manager, _ := newTestManager(t)
	require.NoError(t, manager.Register(stubFeature{name: "A"}))
	require.NoError(t, manager.Register(stubFeature{name: "B"}))
	require.NoError(t, manager.Install("B", nil))

	err := manager.Uninstall("A")
	require.Error(t, err)
	require.True(t, errors.Is(err, feature.ErrNotInstalled))
	require.Equal(t, []string{"B"}, manager.Installed())
}

func TestManager_UninstallRemovesFilesAndRecord(t *testing.T) {
	manager, fs := newTestManager(t)
	require.NoError(t, manager.Register(removableFeature{stubFeature{
		name:  "A",
		files: map[string]string{"lib/a.dart": "// a"},
	}}))

	require.NoError(t, manager.Install("A", nil))
	require.True(t, fs.Exists("/workspace/app/lib/a.dart"))
	require.True(t, fs.Exists("/workspace/app/.flutterforge/a.md"))

	require.NoError(t, manager.Uninstall("A"))
	require.False(t, manager.IsInstalled("A"))
	require.False(t, fs.Exists("/workspace/app/lib/a.dart"))
	require.False(t, fs.Exists("/workspace/app/.flutterforge/a.md"))
}

func TestManager_UninstallHookFailureBecomesWarning(t *testing.T) {
	manager, _ := newTestManager(t)
	require.NoError(t, manager.Register(brokenCleanupFeature{stubFeature{name: "A"}}))

	require.NoError(t, manager.Install("A", nil))
	require.NoError(t, manager.Uninstall("A"))
	require.False(t, manager.IsInstalled("A"))

	warnings := manager.Warnings()
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0], "A")
	require.Contains(t, warnings[0], "cleanup failed")

	// warnings are drained on read
	require.Empty(t, manager.Warnings())
}

func TestManager_LoadReportsSkippedRecords(t *testing.T) {
	manager, fs := newTestManager(t)
	require.NoError(t, manager.Register(stubFeature{name: "A"}))
	require.NoError(t, manager.Install("A", nil))

	fs.AddFile("/workspace/app/.flutterforge/garbage.md", []byte("not a record"))

	reloaded := feature.NewManager(fs, "/workspace/app")
	require.NoError(t, reloaded.Register(stubFeature{name: "A"}))
	require.NoError(t, reloaded.Load())
	require.Equal(t, []string{"A"}, reloaded.Installed())

	warnings := reloaded.Warnings()
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0], "garbage.md")
}

func TestManager_SequenceNotReusedAfterUninstall(t *testing.T) {
	manager, _ := newTestManager(t)
	require.NoError(t, manager.Register(stubFeature{name: "A"}))
	require.NoError(t, manager.Register(stubFeature{name: "B"}))

	require.NoError(t, manager.Install("A", nil))
	require.NoError(t, manager.Install("B", nil))
	require.NoError(t, manager.Uninstall("A"))
	require.NoError(t, manager.Install("A", nil))

	// B was installed before A's reinstall, so B stays first
	require.Equal(t, []string{"B", "A"}, manager.Installed())
}

func TestManager_LoadRestoresInstallOrder(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/workspace/app/pubspec.yaml", []byte("name: app\ndev_dependencies:\n"))

	register := func(m *feature.Manager) {
		require.NoError(t, m.Register(stubFeature{name: "Alpha Feature"}))
		require.NoError(t, m.Register(stubFeature{name: "Beta Feature"}))
	}

	first := feature.NewManager(fs, "/workspace/app")
	register(first)
	require.NoError(t, first.Install("Beta Feature", models.Config{"key": "value"}))
	require.NoError(t, first.Install("Alpha Feature", nil))

	// a fresh manager, as a later process would build it
	second := feature.NewManager(fs, "/workspace/app")
	register(second)
	require.NoError(t, second.Load())

	require.Equal(t, []string{"Beta Feature", "Alpha Feature"}, second.Installed())
}

func TestManager_LoadRejectsUnknownFeature(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/workspace/app/pubspec.yaml", []byte("name: app\ndev_dependencies:\n"))

	first := feature.NewManager(fs, "/workspace/app")
	require.NoError(t, first.Register(stubFeature{name: "Gone Feature"}))
	require.NoError(t, first.Install("Gone Feature", nil))

	second := feature.NewManager(fs, "/workspace/app")
	err := second.Load()
	require.Error(t, err)
	require.True(t, errors.Is(err, feature.ErrUnknownFeature))
}

func TestManager_SyncPubspec(t *testing.T) {
	manager, fs := newTestManager(t)
	require.NoError(t, manager.Register(stubFeature{
		name: "A",
		reqs: []models.PackageRequirement{{Package: "shared", Constraint: "^1.0.0"}},
	}))
	require.NoError(t, manager.Register(stubFeature{
		name: "B",
		reqs: []models.PackageRequirement{
			{Package: "shared", Constraint: "^2.0.0"},
			{Package: "only_b", Constraint: "^3.0.0"},
		},
	}))

	require.NoError(t, manager.Install("A", nil))
	require.NoError(t, manager.Install("B", nil))
	require.NoError(t, manager.SyncPubspec())

	data, err := fs.ReadFile("/workspace/app/pubspec.yaml")
	require.NoError(t, err)
	content := string(data)

	// first installed feature wins the shared package
	require.Contains(t, content, "  shared: ^1.0.0")
	require.NotContains(t, content, "  shared: ^2.0.0")
	require.Contains(t, content, "  only_b: ^3.0.0")
	require.Contains(t, content, "  uses-material-design: true")

	// a second sync changes nothing
	require.NoError(t, manager.SyncPubspec())
	again, err := fs.ReadFile("/workspace/app/pubspec.yaml")
	require.NoError(t, err)
	require.Equal(t, content, string(again))
}

func TestManager_SyncPubspecMissingAnchor(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/workspace/app/pubspec.yaml", []byte("name: app\ndependencies:\n"))

	manager := feature.NewManager(fs, "/workspace/app")
	require.NoError(t, manager.Register(stubFeature{name: "A"}))
	require.NoError(t, manager.Install("A", nil))

	err := manager.SyncPubspec()
	require.Error(t, err)
}
