package mock

import (
	"context"

	"winnow"
)

var _ winnow.FileReader = (*FileReader)(nil)

// FileReader is a mock implementation of winnow.FileReader.
type FileReader struct {
	ReadTextFn func(ctx context.Context, path string) (string, error)
}

func (r *FileReader) ReadText(ctx context.Context, path string) (string, error) {
	return r.ReadTextFn(ctx, path)
}
