package feature

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/jakoblorz/flutterforge/internal/filesystem"
	"github.com/jakoblorz/flutterforge/internal/models"
	"github.com/jakoblorz/flutterforge/internal/pubspec"
)

// Manager is the feature registry and install orchestrator for one
// project. It is not safe for concurrent use; every operation runs to
// completion before the next begins, and a single Manager per project
// is assumed.
type Manager struct {
	fs          filesystem.FileSystem
	projectRoot string

	registered map[string]Feature
	regOrder   []string

	installed []*models.InstallRecord
	records   *recordStore

	warnings []string
}

// NewManager creates a Manager bound to a project root. The root is
// expected to already contain a pubspec.yaml and a lib directory; the
// toolchain bootstrap that creates those is a separate collaborator.
func NewManager(fs filesystem.FileSystem, projectRoot string) *Manager {
	return &Manager{
		fs:          fs,
		projectRoot: projectRoot,
		registered:  make(map[string]Feature),
		records:     newRecordStore(fs, projectRoot),
	}
}

// ProjectRoot returns the bound project root
func (m *Manager) ProjectRoot() string {
	return m.projectRoot
}

// ProjectName derives the project name from the bound root, preferring
// the pubspec name key over the directory base name.
func (m *Manager) ProjectName() string {
	return pubspec.ProjectName(m.fs, m.projectRoot)
}

// Register adds a feature definition to the registry. Registration has
// no side effect beyond the registry itself.
func (m *Manager) Register(f Feature) error {
	name := f.Name()
	if _, exists := m.registered[name]; exists {
		return fmt.Errorf("feature %q: %w", name, ErrDuplicateFeature)
	}

	for _, req := range f.PackageRequirements() {
		if err := req.Validate(); err != nil {
			return fmt.Errorf("feature %q declares invalid requirement: %w", name, err)
		}
	}

	m.registered[name] = f
	m.regOrder = append(m.regOrder, name)
	return nil
}

// Load restores the installed set from the records directory. Every
// recorded feature must already be registered, so call Load after
// registering the full feature set.
func (m *Manager) Load() error {
	records, warnings, err := m.records.LoadAll()
	if err != nil {
		return err
	}
	m.warnings = append(m.warnings, warnings...)

	for _, record := range records {
		if _, exists := m.registered[record.Feature]; !exists {
			return fmt.Errorf("install record references feature %q: %w", record.Feature, ErrUnknownFeature)
		}
	}

	m.installed = records
	return nil
}

// Available returns the registered feature names in registration order,
// independent of install state.
func (m *Manager) Available() []string {
	return append([]string(nil), m.regOrder...)
}

// Installed returns the installed feature names in install order
func (m *Manager) Installed() []string {
	names := make([]string, len(m.installed))
	for i, record := range m.installed {
		names[i] = record.Feature
	}
	return names
}

// Warnings returns the non-fatal problems accumulated since the last
// call (skipped record files, failed file cleanup) and clears them. The
// engine never prints; surfacing warnings is the caller's concern.
func (m *Manager) Warnings() []string {
	warnings := m.warnings
	m.warnings = nil
	return warnings
}

// IsInstalled reports whether a feature is currently installed
func (m *Manager) IsInstalled(name string) bool {
	return m.findInstalled(name) != -1
}

func (m *Manager) findInstalled(name string) int {
	for i, record := range m.installed {
		if record.Feature == name {
			return i
		}
	}
	return -1
}

// Install applies a feature to the project: it checks preconditions,
// renders and writes the feature's file set, and records the install.
// Prerequisites are not installed implicitly; callers must install in a
// valid topological order, which keeps ordering explicit and
// observable.
//
// When two features declare the same file path the later install wins;
// generated files are fully overwritten. On a failed write nothing is
// recorded, but files already written by this call are left in place —
// this is a local scaffolding tool, not a transactional system.
func (m *Manager) Install(name string, config models.Config) error {
	f, exists := m.registered[name]
	if !exists {
		return fmt.Errorf("feature %q: %w", name, ErrUnknownFeature)
	}

	if m.findInstalled(name) != -1 {
		return fmt.Errorf("feature %q: %w (uninstall it first)", name, ErrAlreadyInstalled)
	}

	for _, dep := range f.Dependencies() {
		if m.findInstalled(dep) == -1 {
			return fmt.Errorf("feature %q requires %q: %w", name, dep, ErrUnmetDependency)
		}
	}

	files, err := f.Render(m.ProjectName(), config)
	if err != nil {
		return fmt.Errorf("feature %q failed to render files: %w", name, err)
	}

	for _, rel := range sortedPaths(files) {
		path := filepath.Join(m.projectRoot, rel)
		if err := m.fs.WriteFile(path, []byte(files[rel]), 0644); err != nil {
			return fmt.Errorf("feature %q failed to write %s: %w", name, rel, err)
		}
	}

	id, err := newInstallID()
	if err != nil {
		return err
	}

	record := models.NewInstallRecord(id, name, m.nextSequence(), config)
	if err := m.records.Write(record); err != nil {
		return err
	}

	m.installed = append(m.installed, record)
	return nil
}

// PrerequisiteClosure returns the not-yet-installed prerequisites of
// name (transitively), followed by name itself, in a valid install
// order. It performs no installs; callers pass the result to Install
// one entry at a time, keeping the ordering observable.
func (m *Manager) PrerequisiteClosure(name string) ([]string, error) {
	visited := make(map[string]bool)
	var order []string

	var visit func(n string) error
	visit = func(n string) error {
		if visited[n] {
			return nil
		}
		visited[n] = true

		f, exists := m.registered[n]
		if !exists {
			return fmt.Errorf("feature %q: %w", n, ErrUnknownFeature)
		}

		for _, dep := range f.Dependencies() {
			if err := visit(dep); err != nil {
				return err
			}
		}

		if m.findInstalled(n) == -1 {
			order = append(order, n)
		}
		return nil
	}

	if err := visit(name); err != nil {
		return nil, err
	}
	return order, nil
}

// Uninstall removes a feature from the installed set. File removal is
// delegated to the feature's optional Uninstall hook and is
// best-effort; the hard guarantee is removal of the record.
func (m *Manager) Uninstall(name string) error {
	idx := m.findInstalled(name)
	if idx == -1 {
		return fmt.Errorf("feature %q: %w", name, ErrNotInstalled)
	}

	record := m.installed[idx]
	if hook, ok := m.registered[name].(Uninstaller); ok {
		if err := hook.Uninstall(m.fs, m.projectRoot, m.ProjectName(), record.Config); err != nil {
			m.warnings = append(m.warnings, fmt.Sprintf("failed to remove files for %s: %v", name, err))
		}
	}

	if err := m.records.Remove(name); err != nil {
		return err
	}

	m.installed = append(m.installed[:idx], m.installed[idx+1:]...)
	return nil
}

// SyncPubspec consolidates the package requirements of every installed
// feature into pubspec.yaml in one pass. Requirements are deduplicated
// by package name with first-installed-wins precedence, since the
// manifest permits only one declaration per package. The sync also
// ensures the uses-material-design flag block is present.
func (m *Manager) SyncPubspec() error {
	doc, err := pubspec.Load(m.fs, m.projectRoot)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	var declarations []string
	for _, record := range m.installed {
		f := m.registered[record.Feature]
		for _, req := range f.PackageRequirements() {
			if seen[req.Package] {
				continue
			}
			seen[req.Package] = true
			declarations = append(declarations, req.Declaration())
		}
	}

	lines, err := pubspec.InsertDependencies(doc.Lines, declarations)
	if err != nil {
		return err
	}

	doc.Lines = pubspec.EnsureFlag(lines, pubspec.MaterialDesignFlag, pubspec.FlutterSectionHeader)
	return doc.Save()
}

func (m *Manager) nextSequence() int {
	next := 0
	for _, record := range m.installed {
		if record.Sequence >= next {
			next = record.Sequence + 1
		}
	}
	return next
}

func sortedPaths(files map[string]string) []string {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	// Deterministic write order
	sort.Strings(paths)
	return paths
}
