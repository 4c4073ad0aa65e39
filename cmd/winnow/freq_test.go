package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "winnow/cmd/winnow"
)

func TestFreqCmd_Run(t *testing.T) {
	t.Parallel()

	// corpus writes the standard two-file corpus used by most subtests:
	// cat appears twice, mat/naps/sat once each, everything else is
	// stop words.
	corpus := func(t *testing.T) string {
		t.Helper()
		input := t.TempDir()
		writeFile(t, filepath.Join(input, "a.txt"), "the cat sat on the mat")
		writeFile(t, filepath.Join(input, "b.txt"), "a cat naps")
		return input
	}

	t.Run("counts tokens most frequent first", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.FreqCmd{Input: corpus(t)}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "cat 2\nmat 1\nnaps 1\nsat 1\n", stdout.String())
	})

	t.Run("limits output with top", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.FreqCmd{Input: corpus(t), Top: 2}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "cat 2\nmat 1\n", stdout.String())
	})

	t.Run("hides rare tokens with min count", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.FreqCmd{Input: corpus(t), MinCount: 2}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "cat 2\n", stdout.String())
	})

	t.Run("writes the list to a file", func(t *testing.T) {
		t.Parallel()

		outPath := filepath.Join(t.TempDir(), "freq.txt")

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.FreqCmd{Input: corpus(t), Output: outPath}

		err := cmd.Run(deps)

		require.NoError(t, err)

		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Equal(t, "cat 2\nmat 1\nnaps 1\nsat 1\n", string(data))
		assert.Contains(t, stdout.String(), "Wrote 4 tokens to "+outPath)
	})

	t.Run("keeps stopwords when asked", func(t *testing.T) {
		t.Parallel()

		input := t.TempDir()
		writeFile(t, filepath.Join(input, "a.txt"), "the the cat")

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.FreqCmd{Input: input, KeepStopwords: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "the 2\ncat 1\n", stdout.String())
	})

	t.Run("counts extracted html content", func(t *testing.T) {
		t.Parallel()

		input := t.TempDir()
		writeFile(t, filepath.Join(input, "page.html"),
			`<html><body><p>tomato tomato seedling</p></body></html>`)

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.FreqCmd{Input: input, HTML: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "tomato 2\nseedling 1\n", stdout.String())
	})

	t.Run("skips unreadable files and keeps counting", func(t *testing.T) {
		t.Parallel()

		input := t.TempDir()
		writeFile(t, filepath.Join(input, "a.txt"), "cat")
		writeFile(t, filepath.Join(input, "empty.txt"), "")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}

		cmd := &main.FreqCmd{Input: input}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "cat 1\n", stdout.String())
		assert.Contains(t, stderr.String(), "skip empty.txt")
	})
}
