package mock

import (
	"context"

	"winnow"
)

var _ winnow.FileWriter = (*FileWriter)(nil)

// FileWriter is a mock implementation of winnow.FileWriter.
type FileWriter struct {
	WriteTextFn func(ctx context.Context, relPath string, text string) error
}

func (w *FileWriter) WriteText(ctx context.Context, relPath string, text string) error {
	return w.WriteTextFn(ctx, relPath, text)
}
