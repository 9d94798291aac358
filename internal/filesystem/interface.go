package filesystem

import (
	"io/fs"
)

// FileSystem provides an abstraction over file operations for testability.
//
// WriteFile is guaranteed to create missing parent directories, since
// generated project files routinely land in directories that do not
// exist yet (lib/core/providers, lib/router, ...).
type FileSystem interface {
	// File operations
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error
	Remove(path string) error
	RemoveAll(path string) error

	// Directory operations
	ReadDir(path string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Path operations
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) bool
	Getwd() (string, error)
}
