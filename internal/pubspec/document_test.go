package pubspec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/flutterforge/internal/filesystem"
	"github.com/jakoblorz/flutterforge/internal/pubspec"
)

func TestDocument_LoadSaveRoundtrip(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("project/pubspec.yaml", []byte("name: demo\ndependencies:\ndev_dependencies:\n"))

	doc, err := pubspec.Load(fs, "project")
	require.NoError(t, err)
	require.Equal(t, []string{"name: demo", "dependencies:", "dev_dependencies:"}, doc.Lines)

	require.NoError(t, doc.Save())

	data, err := fs.ReadFile("project/pubspec.yaml")
	require.NoError(t, err)
	require.Equal(t, "name: demo\ndependencies:\ndev_dependencies:\n", string(data))
}

func TestDocument_ReplaceLine(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("project/pubspec.yaml", []byte("name: demo\nversion: 1.0.0+1\n"))

	doc, err := pubspec.Load(fs, "project")
	require.NoError(t, err)

	require.True(t, doc.ReplaceLine("version: 1.0.0+1", "version: 0.0.1+1"))
	require.False(t, doc.ReplaceLine("version: 1.0.0+1", "version: 0.0.1+1"))
	require.Equal(t, "version: 0.0.1+1", doc.Lines[1])
}

func TestDocument_LoadMissing(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	_, err := pubspec.Load(fs, "project")
	require.Error(t, err)
}

func TestProjectName(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		hasFile  bool
		expected string
	}{
		{"from pubspec", "name: my_cool_app\ndescription: x\n", true, "my_cool_app"},
		{"quoted name", "name: \"quoted_app\"\n", true, "quoted_app"},
		{"missing name key", "description: x\n", true, "project"},
		{"unparseable yaml", ": : :\n", true, "project"},
		{"no pubspec", "", false, "project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := filesystem.NewMockFileSystem()
			if tt.hasFile {
				fs.AddFile("some/dir/project/pubspec.yaml", []byte(tt.content))
			}

			require.Equal(t, tt.expected, pubspec.ProjectName(fs, "some/dir/project"))
		})
	}
}
