package pubspec_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakoblorz/flutterforge/internal/pubspec"
)

func TestInsertDependencies_InsertsBeforeAnchor(t *testing.T) {
	lines := []string{
		"dependencies:",
		"  foo: 1.0.0",
		"dev_dependencies:",
	}

	result, err := pubspec.InsertDependencies(lines, []string{"  bar: 2.0.0"})
	require.NoError(t, err)
	require.Equal(t, []string{
		"dependencies:",
		"  foo: 1.0.0",
		"  bar: 2.0.0",
		"dev_dependencies:",
	}, result)
}

func TestInsertDependencies_Idempotent(t *testing.T) {
	lines := []string{
		"dependencies:",
		"  foo: 1.0.0",
		"dev_dependencies:",
	}
	declarations := []string{"  bar: 2.0.0", "  baz: ^3.1.0"}

	once, err := pubspec.InsertDependencies(lines, declarations)
	require.NoError(t, err)

	twice, err := pubspec.InsertDependencies(once, declarations)
	require.NoError(t, err)

	require.Equal(t, once, twice)
}

func TestInsertDependencies_DoesNotMutateInput(t *testing.T) {
	lines := []string{
		"dependencies:",
		"dev_dependencies:",
		"  flutter_test:",
	}
	original := append([]string(nil), lines...)

	_, err := pubspec.InsertDependencies(lines, []string{"  dio: ^5.3.3"})
	require.NoError(t, err)
	require.Equal(t, original, lines)
}

func TestInsertDependencies_PreservesDeclarationOrder(t *testing.T) {
	lines := []string{
		"dependencies:",
		"dev_dependencies:",
	}

	result, err := pubspec.InsertDependencies(lines, []string{
		"  a: ^1.0.0",
		"  b: ^2.0.0",
		"  c: ^3.0.0",
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		"dependencies:",
		"  a: ^1.0.0",
		"  b: ^2.0.0",
		"  c: ^3.0.0",
		"dev_dependencies:",
	}, result)
}

func TestInsertDependencies_SkipsDuplicatesWithinCall(t *testing.T) {
	lines := []string{
		"dependencies:",
		"dev_dependencies:",
	}

	result, err := pubspec.InsertDependencies(lines, []string{
		"  a: ^1.0.0",
		"  a: ^1.0.0",
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		"dependencies:",
		"  a: ^1.0.0",
		"dev_dependencies:",
	}, result)
}

func TestInsertDependencies_MissingAnchor(t *testing.T) {
	lines := []string{
		"name: broken",
		"dependencies:",
	}

	_, err := pubspec.InsertDependencies(lines, []string{"  bar: 2.0.0"})
	require.Error(t, err)
	require.True(t, errors.Is(err, pubspec.ErrMissingDevDependencies))
}

func TestInsertDependencies_AnchorMatchedByTrimmedText(t *testing.T) {
	// flutter create indents nothing, but be tolerant of trailing space
	lines := []string{
		"dependencies:",
		"dev_dependencies: ",
	}

	result, err := pubspec.InsertDependencies(lines, []string{"  bar: 2.0.0"})
	require.NoError(t, err)
	require.Equal(t, "  bar: 2.0.0", result[1])
}

func TestEnsureFlag_AppendsBlockWhenAbsent(t *testing.T) {
	lines := []string{
		"name: demo",
		"dev_dependencies:",
	}

	result := pubspec.EnsureFlag(lines, pubspec.MaterialDesignFlag, pubspec.FlutterSectionHeader)
	require.Equal(t, []string{
		"name: demo",
		"dev_dependencies:",
		"",
		"# The following section is specific to Flutter packages.",
		"flutter:",
		"  uses-material-design: true",
	}, result)
}

func TestEnsureFlag_NoChangeWhenPresent(t *testing.T) {
	lines := []string{
		"name: demo",
		"flutter:",
		"  uses-material-design: true",
	}

	result := pubspec.EnsureFlag(lines, pubspec.MaterialDesignFlag, pubspec.FlutterSectionHeader)
	require.Equal(t, lines, result)
}

func TestEnsureFlag_Idempotent(t *testing.T) {
	lines := []string{"name: demo"}

	once := pubspec.EnsureFlag(lines, pubspec.MaterialDesignFlag, pubspec.FlutterSectionHeader)
	twice := pubspec.EnsureFlag(once, pubspec.MaterialDesignFlag, pubspec.FlutterSectionHeader)

	require.Equal(t, once, twice)
}
