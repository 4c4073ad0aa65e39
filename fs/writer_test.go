package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"winnow"
	"winnow/fs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteText(t *testing.T) {
	t.Parallel()

	t.Run("writes to mirrored path", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		rel := filepath.Join("sub", "deep", "a.txt")
		require.NoError(t, w.WriteText(context.Background(), rel, "cleaned text"))

		data, err := os.ReadFile(filepath.Join(baseDir, rel))
		require.NoError(t, err)
		assert.Equal(t, "cleaned text", string(data))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		require.NoError(t, w.WriteText(context.Background(), "a.txt", "first"))
		require.NoError(t, w.WriteText(context.Background(), "a.txt", "second"))

		data, err := os.ReadFile(filepath.Join(baseDir, "a.txt"))
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))
	})

	t.Run("writes empty content", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		require.NoError(t, w.WriteText(context.Background(), "empty.txt", ""))

		info, err := os.Stat(filepath.Join(baseDir, "empty.txt"))
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	})
}

func TestWriter_WriteText_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rel  string
	}{
		{name: "empty path", rel: ""},
		{name: "parent escape", rel: filepath.Join("..", "escape.txt")},
		{name: "deep escape", rel: filepath.Join("sub", "..", "..", "escape.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := fs.NewWriter(t.TempDir())

			err := w.WriteText(context.Background(), tt.rel, "x")
			require.Error(t, err)
			assert.Equal(t, winnow.EINVALID, winnow.ErrorCode(err))
		})
	}
}
