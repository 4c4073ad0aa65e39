package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"winnow"
)

// Ensure Writer implements winnow.FileWriter at compile time.
var _ winnow.FileWriter = (*Writer)(nil)

// Writer writes cleaned text files under a base directory, mirroring the
// relative paths of their inputs.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteText writes text to relPath under the base directory, creating parent
// directories as needed. Returns EINVALID if relPath resolves outside the
// base directory.
func (w *Writer) WriteText(ctx context.Context, relPath string, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if relPath == "" {
		return winnow.Errorf(winnow.EINVALID, "relative path required")
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	rel, err := filepath.Rel(w.baseDir, fullPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return winnow.Errorf(winnow.EINVALID, "path %q escapes the output directory", relPath)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(text), 0644)
}
