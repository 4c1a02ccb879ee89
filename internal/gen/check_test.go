package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempGeneratedFile(t *testing.T) GeneratedFile {
	t.Helper()

	return GeneratedFile{
		Dir:      t.TempDir(),
		Filename: "hello_fromtuple.go",
		Content:  []byte("package hello\n"),
	}
}

func TestWriteFiles_ThenCheckPasses(t *testing.T) {
	file := tempGeneratedFile(t)

	require.NoError(t, WriteFiles([]GeneratedFile{file}))

	written, err := os.ReadFile(file.Path())
	require.NoError(t, err)
	assert.Equal(t, file.Content, written)

	stale, err := CheckFiles([]GeneratedFile{file})
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestCheckFiles_MissingFile(t *testing.T) {
	file := tempGeneratedFile(t)

	stale, err := CheckFiles([]GeneratedFile{file})
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, file.Path(), stale[0].Path)
}

func TestCheckFiles_ModifiedFile(t *testing.T) {
	file := tempGeneratedFile(t)
	require.NoError(t, WriteFiles([]GeneratedFile{file}))

	// Hand-edit the generated file behind the generator's back.
	edited := []byte("package hello\n\nvar tampered = true\n")
	require.NoError(t, os.WriteFile(file.Path(), edited, filePerm))

	stale, err := CheckFiles([]GeneratedFile{file})
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, file.Path(), stale[0].Path)
	assert.NotEmpty(t, stale[0].Diff)
}

func TestWriteFiles_CreatesDirectory(t *testing.T) {
	file := GeneratedFile{
		Dir:      filepath.Join(t.TempDir(), "nested", "pkg"),
		Filename: "x_fromtuple.go",
		Content:  []byte("package pkg\n"),
	}

	require.NoError(t, WriteFiles([]GeneratedFile{file}))

	_, err := os.Stat(file.Path())
	assert.NoError(t, err)
}
