// Package fs provides file discovery and storage for corpus trees.
package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"winnow"

	"github.com/bmatcuk/doublestar/v4"
)

// Ensure Walker implements winnow.FileWalker at compile time.
var _ winnow.FileWalker = (*Walker)(nil)

// Walker discovers input files by walking a directory tree. Include and
// exclude patterns use doublestar glob syntax and are matched against
// slash-separated paths relative to the walk root.
type Walker struct {
	includes []string
	excludes []string
}

// NewWalker creates a walker with the given include and exclude patterns.
// With no include patterns every file matches.
func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = []string{"**/*"}
	}
	return &Walker{includes: includes, excludes: excludes}
}

// Walk returns the matching files under root in lexical order.
func (w *Walker) Walk(ctx context.Context, root string) ([]winnow.FileInfo, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, winnow.Errorf(winnow.ENOTFOUND, "input directory %q does not exist", root)
	} else if err != nil {
		return nil, err
	} else if !info.IsDir() {
		return nil, winnow.Errorf(winnow.EINVALID, "input path %q is not a directory", root)
	}

	var files []winnow.FileInfo
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && w.matchesAny(w.excludes, rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if !w.matchesAny(w.includes, rel) || w.matchesAny(w.excludes, rel) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, winnow.FileInfo{
			Path:    path,
			RelPath: filepath.FromSlash(rel),
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (w *Walker) matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
