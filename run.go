package winnow

import (
	"context"
	"time"
)

// Per-file outcome statuses recorded in the ledger.
const (
	// StatusCleaned means the file was cleaned and written.
	StatusCleaned = "cleaned"

	// StatusEmpty means cleaning removed every token; the (empty) output
	// file was still written.
	StatusEmpty = "empty"

	// StatusDuplicate means the cleaned content matched an earlier file and
	// no output was written.
	StatusDuplicate = "duplicate"

	// StatusSkipped means the input was rejected before cleaning (empty
	// file or over the size limit).
	StatusSkipped = "skipped"

	// StatusFailed means reading, extracting, or writing the file failed.
	StatusFailed = "failed"
)

// Run represents one cleaning invocation over an input tree.
type Run struct {
	ID        string `json:"id"`
	InputDir  string `json:"inputDir"`
	OutputDir string `json:"outputDir"`

	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt"`

	Files        int `json:"files"`
	Cleaned      int `json:"cleaned"`
	EmptyOutputs int `json:"emptyOutputs"`
	Duplicates   int `json:"duplicates"`
	Failed       int `json:"failed"`

	BytesIn  int64 `json:"bytesIn"`
	BytesOut int64 `json:"bytesOut"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.InputDir == "" {
		return Errorf(EINVALID, "run input directory required")
	}
	if r.OutputDir == "" {
		return Errorf(EINVALID, "run output directory required")
	}
	return nil
}

// FileRecord represents the outcome for a single file within a run.
type FileRecord struct {
	ID    string `json:"id"`
	RunID string `json:"runId"`

	// Path is relative to the run's input root.
	Path string `json:"path"`

	// Status is one of the Status constants.
	Status string `json:"status"`

	TokensKept int   `json:"tokensKept"`
	BytesIn    int64 `json:"bytesIn"`
	BytesOut   int64 `json:"bytesOut"`

	// ContentHash is the xxhash of the cleaned content, hex-encoded. Empty
	// for files that produced no output.
	ContentHash string `json:"contentHash"`

	// Error holds the failure message for skipped and failed files.
	Error string `json:"error"`

	ProcessedAt time.Time `json:"processedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (f *FileRecord) Validate() error {
	if f.RunID == "" {
		return Errorf(EINVALID, "file record run ID required")
	}
	if f.Path == "" {
		return Errorf(EINVALID, "file record path required")
	}
	if f.Status == "" {
		return Errorf(EINVALID, "file record status required")
	}
	return nil
}

// RunService represents a service for managing runs and their file records.
type RunService interface {
	// CreateRun creates a new run.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// UpdateRun updates an existing run.
	// Returns ENOTFOUND if run does not exist.
	UpdateRun(ctx context.Context, id string, upd RunUpdate) (*Run, error)

	// DeleteRun permanently removes a run and all associated file records.
	// Returns ENOTFOUND if run does not exist.
	DeleteRun(ctx context.Context, id string) error

	// CreateFileRecord creates a new file record.
	CreateFileRecord(ctx context.Context, rec *FileRecord) error

	// FindFileRecords retrieves file records matching the filter, in path
	// order.
	FindFileRecords(ctx context.Context, filter FileRecordFilter) ([]*FileRecord, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID       *string `json:"id"`
	InputDir *string `json:"inputDir"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RunUpdate represents fields that can be updated on a run.
type RunUpdate struct {
	FinishedAt   *time.Time `json:"finishedAt"`
	Files        *int       `json:"files"`
	Cleaned      *int       `json:"cleaned"`
	EmptyOutputs *int       `json:"emptyOutputs"`
	Duplicates   *int       `json:"duplicates"`
	Failed       *int       `json:"failed"`
	BytesIn      *int64     `json:"bytesIn"`
	BytesOut     *int64     `json:"bytesOut"`
}

// FileRecordFilter represents a filter for FindFileRecords.
type FileRecordFilter struct {
	RunID  *string `json:"runId"`
	Status *string `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
