package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*FileManager, string, string) {
	t.Helper()
	root := t.TempDir()
	inputDir := filepath.Join(root, "input")
	archiveDir := filepath.Join(root, "archive")

	fm := NewFileManager(inputDir, archiveDir)
	require.NoError(t, fm.EnsureDirectories())
	return fm, inputDir, archiveDir
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
}

func TestDiscoverInputFiles_FiltersByExtension(t *testing.T) {
	fm, inputDir, _ := newTestManager(t)

	writeFile(t, filepath.Join(inputDir, "sub1.txt"))
	writeFile(t, filepath.Join(inputDir, "sub2.XML"))
	writeFile(t, filepath.Join(inputDir, "notes.md"))
	require.NoError(t, os.MkdirAll(filepath.Join(inputDir, "nested"), 0o755))
	writeFile(t, filepath.Join(inputDir, "nested", "sub3.txt"))

	files, err := fm.DiscoverInputFiles([]string{"txt", "csv", "xml"})
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Contains(t, files, filepath.Join(inputDir, "sub1.txt"))
	assert.Contains(t, files, filepath.Join(inputDir, "sub2.XML"))
}

func TestArchiveInputFile_MovesFile(t *testing.T) {
	fm, inputDir, archiveDir := newTestManager(t)

	src := filepath.Join(inputDir, "sub.txt")
	writeFile(t, src)

	archived, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(archiveDir, "sub.txt"), archived)
	assert.False(t, FileExists(src))
	assert.True(t, FileExists(archived))
}

func TestArchiveInputFile_SuffixesDuplicates(t *testing.T) {
	fm, inputDir, archiveDir := newTestManager(t)

	writeFile(t, filepath.Join(archiveDir, "sub.txt"))

	src := filepath.Join(inputDir, "sub.txt")
	writeFile(t, src)

	archived, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(archiveDir, "sub_1.txt"), archived)
	assert.True(t, FileExists(filepath.Join(archiveDir, "sub.txt")))
}

func TestFileExists(t *testing.T) {
	_, inputDir, _ := newTestManager(t)

	assert.False(t, FileExists(filepath.Join(inputDir, "missing.txt")))
	writeFile(t, filepath.Join(inputDir, "present.txt"))
	assert.True(t, FileExists(filepath.Join(inputDir, "present.txt")))
}
