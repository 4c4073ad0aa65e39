package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winnow"
	main "winnow/cmd/winnow"
	"winnow/mock"
)

func TestRunsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists recorded runs", func(t *testing.T) {
		t.Parallel()

		started := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
		finished := started.Add(42 * time.Second)

		var gotFilter winnow.RunFilter
		runs := &mock.RunService{
			FindRunsFn: func(_ context.Context, filter winnow.RunFilter) ([]*winnow.Run, error) {
				gotFilter = filter
				return []*winnow.Run{
					{
						ID:         "run-new",
						InputDir:   "/corpus/books",
						OutputDir:  "/corpus/books-clean",
						StartedAt:  started,
						FinishedAt: &finished,
						Files:      120,
						Cleaned:    117,
						Failed:     3,
						BytesOut:   2048,
					},
					{
						ID:        "run-unfinished",
						InputDir:  "/corpus/web",
						OutputDir: "/corpus/web-clean",
						StartedAt: started.Add(-time.Hour),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Runs:   runs,
		}

		cmd := &main.RunsCmd{Limit: 5}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 5, gotFilter.Limit)

		output := stdout.String()
		assert.Contains(t, output, "ID")
		assert.Contains(t, output, "CLEANED")
		assert.Contains(t, output, "run-new")
		assert.Contains(t, output, "run-unfinished")
		assert.Contains(t, output, "117")
		assert.Contains(t, output, "42s")
	})

	t.Run("prints a friendly message when no runs exist", func(t *testing.T) {
		t.Parallel()

		runs := &mock.RunService{
			FindRunsFn: func(_ context.Context, _ winnow.RunFilter) ([]*winnow.Run, error) {
				return []*winnow.Run{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Runs:   runs,
		}

		cmd := &main.RunsCmd{Limit: 20}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No runs recorded. Use 'winnow clean' to create one.")
	})

	t.Run("shows file records for a run", func(t *testing.T) {
		t.Parallel()

		runs := &mock.RunService{
			FindRunByIDFn: func(_ context.Context, id string) (*winnow.Run, error) {
				return &winnow.Run{
					ID:        id,
					InputDir:  "/corpus/books",
					OutputDir: "/corpus/books-clean",
					StartedAt: time.Now(),
					Files:     2,
					Cleaned:   1,
					Failed:    1,
				}, nil
			},
			FindFileRecordsFn: func(_ context.Context, filter winnow.FileRecordFilter) ([]*winnow.FileRecord, error) {
				require.NotNil(t, filter.RunID)
				assert.Equal(t, "run-1", *filter.RunID)
				return []*winnow.FileRecord{
					{ID: "rec-1", RunID: "run-1", Path: "docs/a.txt", Status: winnow.StatusCleaned, TokensKept: 12, ContentHash: "abcd1234"},
					{ID: "rec-2", RunID: "run-1", Path: "docs/b.txt", Status: winnow.StatusFailed, Error: "read failed"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Runs:   runs,
		}

		cmd := &main.RunsCmd{ID: "run-1"}

		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "Run run-1")
		assert.Contains(t, output, "2 files: 1 cleaned")
		assert.Contains(t, output, "docs/a.txt")
		assert.Contains(t, output, "abcd1234")
		assert.Contains(t, output, "docs/b.txt")
		assert.Contains(t, output, "read failed")
	})

	t.Run("filters failed and skipped records", func(t *testing.T) {
		t.Parallel()

		runs := &mock.RunService{
			FindRunByIDFn: func(_ context.Context, id string) (*winnow.Run, error) {
				return &winnow.Run{ID: id, InputDir: "/in", OutputDir: "/out", StartedAt: time.Now()}, nil
			},
			FindFileRecordsFn: func(_ context.Context, _ winnow.FileRecordFilter) ([]*winnow.FileRecord, error) {
				return []*winnow.FileRecord{
					{ID: "rec-1", RunID: "run-1", Path: "good.txt", Status: winnow.StatusCleaned},
					{ID: "rec-2", RunID: "run-1", Path: "bad.txt", Status: winnow.StatusFailed, Error: "boom"},
					{ID: "rec-3", RunID: "run-1", Path: "huge.txt", Status: winnow.StatusSkipped, Error: "too large"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Runs:   runs,
		}

		cmd := &main.RunsCmd{ID: "run-1", Failed: true}

		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "bad.txt")
		assert.Contains(t, output, "huge.txt")
		assert.NotContains(t, output, "good.txt")
	})

	t.Run("passes the status filter through", func(t *testing.T) {
		t.Parallel()

		var gotFilter winnow.FileRecordFilter
		runs := &mock.RunService{
			FindRunByIDFn: func(_ context.Context, id string) (*winnow.Run, error) {
				return &winnow.Run{ID: id, InputDir: "/in", OutputDir: "/out", StartedAt: time.Now()}, nil
			},
			FindFileRecordsFn: func(_ context.Context, filter winnow.FileRecordFilter) ([]*winnow.FileRecord, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Runs:   runs,
		}

		cmd := &main.RunsCmd{ID: "run-1", Status: "duplicate"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.Status)
		assert.Equal(t, "duplicate", *gotFilter.Status)
		assert.Contains(t, stdout.String(), "No matching file records.")
	})

	t.Run("prunes a run", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		runs := &mock.RunService{
			FindRunByIDFn: func(_ context.Context, id string) (*winnow.Run, error) {
				return &winnow.Run{ID: id, InputDir: "/in", OutputDir: "/out", StartedAt: time.Now()}, nil
			},
			DeleteRunFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Runs:   runs,
		}

		cmd := &main.RunsCmd{ID: "run-1", Prune: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "run-1", deletedID)
		assert.Contains(t, stdout.String(), "Deleted run run-1")
	})

	t.Run("requires an id to prune", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.RunsCmd{Prune: true}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, winnow.EINVALID, winnow.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--prune requires a run ID")
	})

	t.Run("reports unknown run ids", func(t *testing.T) {
		t.Parallel()

		runs := &mock.RunService{
			FindRunByIDFn: func(_ context.Context, _ string) (*winnow.Run, error) {
				return nil, winnow.Errorf(winnow.ENOTFOUND, "run not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Runs:   runs,
		}

		cmd := &main.RunsCmd{ID: "missing"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, winnow.ENOTFOUND, winnow.ErrorCode(err))
		assert.Contains(t, stderr.String(), "Use 'winnow runs' to see recorded runs.")
	})
}
