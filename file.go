package winnow

import (
	"context"
	"path/filepath"
	"strings"
	"time"
)

// FileInfo describes a discovered input file.
type FileInfo struct {
	// Path is the absolute path of the file on disk.
	Path string `json:"path"`

	// RelPath is the path relative to the input root. Output files mirror
	// this path under the output root.
	RelPath string `json:"relPath"`

	Size    int64     `json:"size"`
	ModTime time.Time `json:"modTime"`
}

// IsHTMLPath reports whether the file at path should go through HTML content
// extraction.
func IsHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// FileWalker discovers input files under a root directory.
type FileWalker interface {
	// Walk returns the files under root matching the walker's include and
	// exclude patterns, in lexical order. It returns ENOTFOUND if root
	// does not exist.
	Walk(ctx context.Context, root string) ([]FileInfo, error)
}

// FileReader reads input file contents.
type FileReader interface {
	// ReadText returns the contents of the file at path with invalid
	// UTF-8 sequences removed. Returns EEMPTY for files with no readable
	// text and ETOOLARGE for files over the reader's size limit.
	ReadText(ctx context.Context, path string) (string, error)
}

// FileWriter writes cleaned text into an output tree.
type FileWriter interface {
	// WriteText writes text to relPath under the writer's root, creating
	// parent directories as needed. Returns EINVALID if relPath escapes
	// the root.
	WriteText(ctx context.Context, relPath string, text string) error
}
