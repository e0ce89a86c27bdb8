// =============================================================================
// Bulk Claim Converter - File Manager
// =============================================================================
//
// Filesystem plumbing around the conversion pipeline: discovering input files
// by extension and moving processed inputs into the archive. Archival falls
// back to copy-and-remove so it works across filesystem boundaries.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileManager handles input discovery and archival for one processing run.
type FileManager struct {
	inputDir   string
	archiveDir string
}

// NewFileManager returns a manager over the given directories.
func NewFileManager(inputDir, archiveDir string) *FileManager {
	return &FileManager{inputDir: inputDir, archiveDir: archiveDir}
}

// EnsureDirectories creates the managed directories when absent.
func (fm *FileManager) EnsureDirectories() error {
	for _, dir := range []string{fm.inputDir, fm.archiveDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// DiscoverInputFiles lists files in the input directory whose extension is in
// extensions (compared case-insensitively, without the dot). Subdirectories
// are not descended into.
func (fm *FileManager) DiscoverInputFiles(extensions []string) ([]string, error) {
	entries, err := os.ReadDir(fm.inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", fm.inputDir, err)
	}

	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToUpper(ext)] = struct{}{}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToUpper(strings.TrimPrefix(filepath.Ext(entry.Name()), "."))
		if _, ok := allowed[ext]; ok {
			files = append(files, filepath.Join(fm.inputDir, entry.Name()))
		}
	}
	return files, nil
}

// ArchiveInputFile moves a processed input into the archive directory,
// suffixing the name when a file with the same name was archived before.
func (fm *FileManager) ArchiveInputFile(filePath string) (string, error) {
	target := filepath.Join(fm.archiveDir, filepath.Base(filePath))

	// Keep earlier archives of a re-submitted file.
	for i := 1; FileExists(target); i++ {
		ext := filepath.Ext(filePath)
		base := strings.TrimSuffix(filepath.Base(filePath), ext)
		target = filepath.Join(fm.archiveDir, fmt.Sprintf("%s_%d%s", base, i, ext))
	}

	if err := os.Rename(filePath, target); err == nil {
		return target, nil
	}

	// Rename fails across filesystems; copy and remove instead.
	if err := copyFile(filePath, target); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", filePath, err)
	}
	if err := os.Remove(filePath); err != nil {
		return "", fmt.Errorf("failed to remove archived input %s: %w", filePath, err)
	}
	return target, nil
}

// FileExists reports whether the path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
