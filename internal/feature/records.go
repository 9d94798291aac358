package feature

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gopkg.in/yaml.v3"

	"github.com/jakoblorz/flutterforge/internal/filesystem"
	"github.com/jakoblorz/flutterforge/internal/models"
)

// RecordsDirName is the directory under the project root where install
// records are persisted, one markdown file per installed feature.
const RecordsDirName = ".flutterforge"

// recordStore persists install records so a later flutterforge
// invocation can restore the installed set in install order.
type recordStore struct {
	fs  filesystem.FileSystem
	dir string
}

func newRecordStore(fs filesystem.FileSystem, projectRoot string) *recordStore {
	return &recordStore{
		fs:  fs,
		dir: filepath.Join(projectRoot, RecordsDirName),
	}
}

// recordMatter is the frontmatter representation of an InstallRecord.
// The timestamp is kept as an RFC3339 string so the round-trip does not
// depend on YAML timestamp resolution.
type recordMatter struct {
	ID          string        `yaml:"id"`
	Feature     string        `yaml:"feature"`
	Sequence    int           `yaml:"sequence"`
	InstalledAt string        `yaml:"installed_at"`
	Config      models.Config `yaml:"config,omitempty"`
}

// newInstallID generates a short unique install identifier
func newInstallID() (string, error) {
	id, err := gonanoid.Generate("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", 8)
	if err != nil {
		return "", fmt.Errorf("failed to generate install ID: %w", err)
	}
	return id, nil
}

// slugify turns a feature name into a record file name
// e.g. "Theme Support" -> "theme-support"
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}

func (s *recordStore) path(featureName string) string {
	return filepath.Join(s.dir, slugify(featureName)+".md")
}

// Write persists a record file for the given install
func (s *recordStore) Write(record *models.InstallRecord) error {
	if !s.fs.Exists(s.dir) {
		if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
			return fmt.Errorf("failed to create records directory: %w", err)
		}
	}

	matter := recordMatter{
		ID:          record.ID,
		Feature:     record.Feature,
		Sequence:    record.Sequence,
		InstalledAt: record.InstalledAt.Format(time.RFC3339),
		Config:      record.Config,
	}

	encoded, err := yaml.Marshal(&matter)
	if err != nil {
		return fmt.Errorf("failed to encode install record: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(encoded)
	buf.WriteString("---\n\n")
	buf.WriteString(fmt.Sprintf("%s was installed by flutterforge. Do not edit.\n", record.Feature))

	if err := s.fs.WriteFile(s.path(record.Feature), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write install record: %w", err)
	}

	return nil
}

// Remove deletes the record file for a feature. A missing file is not
// an error; the in-memory installed set is authoritative.
func (s *recordStore) Remove(featureName string) error {
	path := s.path(featureName)
	if !s.fs.Exists(path) {
		return nil
	}
	if err := s.fs.Remove(path); err != nil {
		return fmt.Errorf("failed to remove install record: %w", err)
	}
	return nil
}

// LoadAll reads every record file, sorted by install sequence.
// Unreadable record files are skipped and reported as warnings so one
// corrupt file does not block the whole project.
func (s *recordStore) LoadAll() ([]*models.InstallRecord, []string, error) {
	if !s.fs.Exists(s.dir) {
		return nil, nil, nil
	}

	entries, err := s.fs.ReadDir(s.dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read records directory: %w", err)
	}

	var records []*models.InstallRecord
	var warnings []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		record, err := s.read(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping install record %s: %v", entry.Name(), err))
			continue
		}

		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Sequence < records[j].Sequence
	})

	return records, warnings, nil
}

func (s *recordStore) read(path string) (*models.InstallRecord, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var matter recordMatter
	if _, err := frontmatter.Parse(bytes.NewReader(data), &matter); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	if strings.TrimSpace(matter.Feature) == "" {
		return nil, fmt.Errorf("record has no feature name")
	}

	installedAt, err := time.Parse(time.RFC3339, matter.InstalledAt)
	if err != nil {
		return nil, fmt.Errorf("invalid installed_at timestamp: %w", err)
	}

	return &models.InstallRecord{
		ID:          matter.ID,
		Feature:     matter.Feature,
		Sequence:    matter.Sequence,
		InstalledAt: installedAt,
		Config:      matter.Config,
	}, nil
}
