package pubspec

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jakoblorz/flutterforge/internal/filesystem"
)

// FileName is the manifest file name at the project root
const FileName = "pubspec.yaml"

// Document is a pubspec.yaml held as an ordered line sequence. All
// structural edits go through the pure transforms in patcher.go; the
// document only handles I/O.
type Document struct {
	fs    filesystem.FileSystem
	path  string
	Lines []string
}

// Path returns the pubspec path for a project root
func Path(projectRoot string) string {
	return filepath.Join(projectRoot, FileName)
}

// Load reads the pubspec of the given project root
func Load(fs filesystem.FileSystem, projectRoot string) (*Document, error) {
	path := Path(projectRoot)

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content := strings.TrimSuffix(string(data), "\n")
	return &Document{
		fs:    fs,
		path:  path,
		Lines: strings.Split(content, "\n"),
	}, nil
}

// Save writes the document back to disk
func (d *Document) Save() error {
	content := strings.Join(d.Lines, "\n") + "\n"
	if err := d.fs.WriteFile(d.path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.path, err)
	}
	return nil
}

// ReplaceLine swaps the first line exactly equal to old with new.
// Returns false when old is not present.
func (d *Document) ReplaceLine(old, new string) bool {
	for i, line := range d.Lines {
		if line == old {
			d.Lines[i] = new
			return true
		}
	}
	return false
}

// pubspecMeta is the subset of pubspec.yaml we actually parse
type pubspecMeta struct {
	Name string `yaml:"name"`
}

// ProjectName reads the project name from the pubspec of the given
// root. Falls back to the directory base name when the manifest is
// missing or carries no name key.
func ProjectName(fs filesystem.FileSystem, projectRoot string) string {
	data, err := fs.ReadFile(Path(projectRoot))
	if err != nil {
		return filepath.Base(projectRoot)
	}

	var meta pubspecMeta
	if err := yaml.Unmarshal(data, &meta); err != nil || strings.TrimSpace(meta.Name) == "" {
		return filepath.Base(projectRoot)
	}

	return meta.Name
}
