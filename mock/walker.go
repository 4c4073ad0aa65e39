package mock

import (
	"context"

	"winnow"
)

var _ winnow.FileWalker = (*FileWalker)(nil)

// FileWalker is a mock implementation of winnow.FileWalker.
type FileWalker struct {
	WalkFn func(ctx context.Context, root string) ([]winnow.FileInfo, error)
}

func (w *FileWalker) Walk(ctx context.Context, root string) ([]winnow.FileInfo, error) {
	return w.WalkFn(ctx, root)
}
