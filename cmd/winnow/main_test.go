package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "winnow/cmd/winnow"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

// newTestMain returns a Main whose database lives in a per-test temp dir.
func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")
	return m
}

// writeFile creates path with the given content, making parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

var runIDRe = regexp.MustCompile(`Recorded as run (\S+)`)

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newTestMain(t)

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := m.Run(testContext(), tt.args, stdout, stderr)

			require.NoError(t, err)
			assert.Contains(t, stdout.String(), "Usage: winnow")
			assert.Contains(t, stdout.String(), "Commands:")
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{}, stdout, stderr)

	// No args should show usage and return an error
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, stdout.String(), "Usage: winnow")
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"frobnicate"}, stdout, stderr)

	require.Error(t, err)
}

func TestRun_HelpWithoutCreatingDB(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"--help"}, stdout, stderr)

	require.NoError(t, err)

	// Verify database file was NOT created
	_, statErr := os.Stat(m.DBPath)
	assert.True(t, os.IsNotExist(statErr), "database file should not be created for --help")
}

func TestRun_CheckWithoutDB(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"check", "gardening"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "kept")

	// check never touches the ledger
	_, statErr := os.Stat(m.DBPath)
	assert.True(t, os.IsNotExist(statErr), "database file should not be created for check")
}

func TestRun_CleanAndRunsWorkflow(t *testing.T) {
	t.Parallel()

	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(input, "docs", "a.txt"), "The cat sat on the mat!")
	writeFile(t, filepath.Join(input, "b.txt"), "Hello, World! Qwerty zzzz")

	m := newTestMain(t)

	// Clean the corpus and record the run.
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(testContext(), []string{"clean", input, output, "-q"}, stdout, stderr)
	require.NoError(t, err)

	cleaned, err := os.ReadFile(filepath.Join(output, "docs", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "cat sat mat", string(cleaned))

	cleaned, err = os.ReadFile(filepath.Join(output, "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(cleaned))

	assert.Contains(t, stdout.String(), "Cleaned 2 of 2 files")

	match := runIDRe.FindStringSubmatch(stdout.String())
	require.Len(t, match, 2, "summary should name the recorded run")
	runID := match[1]

	// The run shows up in the listing.
	stdout.Reset()
	stderr.Reset()
	err = m.Run(testContext(), []string{"runs"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), runID)
	assert.Contains(t, stdout.String(), "CLEANED")

	// The run detail shows per-file records.
	stdout.Reset()
	stderr.Reset()
	err = m.Run(testContext(), []string{"runs", runID}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Run "+runID)
	assert.Contains(t, stdout.String(), "docs/a.txt")
	assert.Contains(t, stdout.String(), "cleaned")

	// Nothing failed, so the failed view is empty.
	stdout.Reset()
	stderr.Reset()
	err = m.Run(testContext(), []string{"runs", runID, "--failed"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No matching file records.")

	// Prune removes the run and its records.
	stdout.Reset()
	stderr.Reset()
	err = m.Run(testContext(), []string{"runs", runID, "--prune"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Deleted run "+runID)

	stdout.Reset()
	stderr.Reset()
	err = m.Run(testContext(), []string{"runs"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No runs recorded.")
}

func TestRun_CleanNoLedgerSkipsDatabase(t *testing.T) {
	t.Parallel()

	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(input, "a.txt"), "fresh snow covered the garden")

	m := newTestMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"clean", input, output, "-q", "--no-ledger"}, stdout, stderr)

	require.NoError(t, err)
	assert.NotContains(t, stdout.String(), "Recorded as run")

	_, statErr := os.Stat(m.DBPath)
	assert.True(t, os.IsNotExist(statErr), "database file should not be created with --no-ledger")
}

func TestRun_CleanReportsFailedFiles(t *testing.T) {
	t.Parallel()

	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(input, "big.txt"), "this file is far too large for the configured limit")
	writeFile(t, filepath.Join(input, "ok.txt"), "short enough")

	m := newTestMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{
		"clean", input, output, "-q", "--no-ledger", "--max-file-bytes", "16",
	}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")
	assert.Contains(t, stderr.String(), "skip big.txt")

	_, statErr := os.Stat(filepath.Join(output, "big.txt"))
	assert.True(t, os.IsNotExist(statErr), "oversize file should not be written")

	cleaned, readErr := os.ReadFile(filepath.Join(output, "ok.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, "short enough", string(cleaned))
}

func TestRun_VerboseLogsDiscovery(t *testing.T) {
	t.Parallel()

	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(input, "a.txt"), "quiet afternoon reading")

	m := newTestMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"-v", "clean", input, output, "-q", "--no-ledger"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "file discovery")
}

func TestRun_FreqPrintsCounts(t *testing.T) {
	t.Parallel()

	input := t.TempDir()
	writeFile(t, filepath.Join(input, "a.txt"), "the cat sat on the mat")
	writeFile(t, filepath.Join(input, "b.txt"), "a cat naps")

	m := newTestMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"freq", input}, stdout, stderr)

	require.NoError(t, err)
	assert.Equal(t, "cat 2\nmat 1\nnaps 1\nsat 1\n", stdout.String())

	// freq never touches the ledger
	_, statErr := os.Stat(m.DBPath)
	assert.True(t, os.IsNotExist(statErr), "database file should not be created for freq")
}
