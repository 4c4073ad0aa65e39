package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"winnow"
)

// Ensure service implements interface.
var _ winnow.RunService = (*RunService)(nil)

// RunService represents a service for managing cleaning runs backed by SQLite.
type RunService struct {
	db *DB
}

// NewRunService returns a new instance of RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun creates a new run. Sets the ID and start time on success.
func (s *RunService) CreateRun(ctx context.Context, run *winnow.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.StartedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, input_dir, output_dir, started_at, finished_at, files, cleaned, empty_outputs, duplicates, failed, bytes_in, bytes_out)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.InputDir,
		run.OutputDir,
		run.StartedAt.Format(time.RFC3339),
		formatNullableTime(run.FinishedAt),
		run.Files,
		run.Cleaned,
		run.EmptyOutputs,
		run.Duplicates,
		run.Failed,
		run.BytesIn,
		run.BytesOut,
	)
	if err != nil {
		return winnow.Errorf(winnow.EINTERNAL, "failed to create run: %v", err)
	}

	return nil
}

// FindRunByID retrieves a run by ID.
// Returns ENOTFOUND if run does not exist.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*winnow.Run, error) {
	var run winnow.Run
	var startedAt string
	var finishedAt sql.NullString

	err := s.db.QueryRowContext(ctx, `
		SELECT id, input_dir, output_dir, started_at, finished_at, files, cleaned, empty_outputs, duplicates, failed, bytes_in, bytes_out
		FROM runs
		WHERE id = ?
	`, id).Scan(
		&run.ID,
		&run.InputDir,
		&run.OutputDir,
		&startedAt,
		&finishedAt,
		&run.Files,
		&run.Cleaned,
		&run.EmptyOutputs,
		&run.Duplicates,
		&run.Failed,
		&run.BytesIn,
		&run.BytesOut,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, winnow.Errorf(winnow.ENOTFOUND, "run not found")
		}
		return nil, winnow.Errorf(winnow.EINTERNAL, "failed to find run: %v", err)
	}

	if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, winnow.Errorf(winnow.EINTERNAL, "%v", err)
	}
	if finishedAt.Valid {
		t, err := parseRFC3339(finishedAt.String, "finished_at")
		if err != nil {
			return nil, winnow.Errorf(winnow.EINTERNAL, "%v", err)
		}
		run.FinishedAt = &t
	}

	return &run, nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter winnow.RunFilter) ([]*winnow.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT id, input_dir, output_dir, started_at, finished_at, files, cleaned, empty_outputs, duplicates, failed, bytes_in, bytes_out
		FROM runs
		WHERE 1=1
	`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.InputDir != nil {
		query.WriteString(" AND input_dir = ?")
		args = append(args, *filter.InputDir)
	}

	query.WriteString(" ORDER BY started_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, winnow.Errorf(winnow.EINTERNAL, "failed to find runs: %v", err)
	}
	defer rows.Close()

	var runs []*winnow.Run
	for rows.Next() {
		var run winnow.Run
		var startedAt string
		var finishedAt sql.NullString

		if err := rows.Scan(
			&run.ID,
			&run.InputDir,
			&run.OutputDir,
			&startedAt,
			&finishedAt,
			&run.Files,
			&run.Cleaned,
			&run.EmptyOutputs,
			&run.Duplicates,
			&run.Failed,
			&run.BytesIn,
			&run.BytesOut,
		); err != nil {
			return nil, winnow.Errorf(winnow.EINTERNAL, "failed to scan run: %v", err)
		}

		if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, winnow.Errorf(winnow.EINTERNAL, "%v", err)
		}
		if finishedAt.Valid {
			t, err := parseRFC3339(finishedAt.String, "finished_at")
			if err != nil {
				return nil, winnow.Errorf(winnow.EINTERNAL, "%v", err)
			}
			run.FinishedAt = &t
		}

		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, winnow.Errorf(winnow.EINTERNAL, "failed to iterate runs: %v", err)
	}

	return runs, nil
}

// UpdateRun updates an existing run.
// Returns ENOTFOUND if run does not exist.
func (s *RunService) UpdateRun(ctx context.Context, id string, upd winnow.RunUpdate) (*winnow.Run, error) {
	run, err := s.FindRunByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.FinishedAt != nil {
		t := upd.FinishedAt.UTC()
		run.FinishedAt = &t
	}
	if upd.Files != nil {
		run.Files = *upd.Files
	}
	if upd.Cleaned != nil {
		run.Cleaned = *upd.Cleaned
	}
	if upd.EmptyOutputs != nil {
		run.EmptyOutputs = *upd.EmptyOutputs
	}
	if upd.Duplicates != nil {
		run.Duplicates = *upd.Duplicates
	}
	if upd.Failed != nil {
		run.Failed = *upd.Failed
	}
	if upd.BytesIn != nil {
		run.BytesIn = *upd.BytesIn
	}
	if upd.BytesOut != nil {
		run.BytesOut = *upd.BytesOut
	}

	if err := run.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE runs
		SET finished_at = ?, files = ?, cleaned = ?, empty_outputs = ?, duplicates = ?, failed = ?, bytes_in = ?, bytes_out = ?
		WHERE id = ?
	`,
		formatNullableTime(run.FinishedAt),
		run.Files,
		run.Cleaned,
		run.EmptyOutputs,
		run.Duplicates,
		run.Failed,
		run.BytesIn,
		run.BytesOut,
		run.ID,
	)
	if err != nil {
		return nil, winnow.Errorf(winnow.EINTERNAL, "failed to update run: %v", err)
	}

	return run, nil
}

// DeleteRun permanently removes a run and all associated file records.
// Returns ENOTFOUND if run does not exist.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return winnow.Errorf(winnow.EINTERNAL, "failed to delete run: %v", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return winnow.Errorf(winnow.EINTERNAL, "failed to get rows affected: %v", err)
	}
	if rows == 0 {
		return winnow.Errorf(winnow.ENOTFOUND, "run not found")
	}

	return nil
}

// CreateFileRecord creates a new file record. Sets the ID and processed time
// on success.
func (s *RunService) CreateFileRecord(ctx context.Context, rec *winnow.FileRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.ProcessedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO files (id, run_id, path, status, tokens_kept, bytes_in, bytes_out, content_hash, error, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.RunID,
		rec.Path,
		rec.Status,
		rec.TokensKept,
		rec.BytesIn,
		rec.BytesOut,
		rec.ContentHash,
		rec.Error,
		rec.ProcessedAt.Format(time.RFC3339),
	)
	if err != nil {
		return winnow.Errorf(winnow.EINTERNAL, "failed to create file record: %v", err)
	}

	return nil
}

// FindFileRecords retrieves file records matching the filter, in path order.
func (s *RunService) FindFileRecords(ctx context.Context, filter winnow.FileRecordFilter) ([]*winnow.FileRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT id, run_id, path, status, tokens_kept, bytes_in, bytes_out, content_hash, error, processed_at
		FROM files
		WHERE 1=1
	`)

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, *filter.Status)
	}

	query.WriteString(" ORDER BY path ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, winnow.Errorf(winnow.EINTERNAL, "failed to find file records: %v", err)
	}
	defer rows.Close()

	var recs []*winnow.FileRecord
	for rows.Next() {
		var rec winnow.FileRecord
		var processedAt string

		if err := rows.Scan(
			&rec.ID,
			&rec.RunID,
			&rec.Path,
			&rec.Status,
			&rec.TokensKept,
			&rec.BytesIn,
			&rec.BytesOut,
			&rec.ContentHash,
			&rec.Error,
			&processedAt,
		); err != nil {
			return nil, winnow.Errorf(winnow.EINTERNAL, "failed to scan file record: %v", err)
		}

		if rec.ProcessedAt, err = parseRFC3339(processedAt, "processed_at"); err != nil {
			return nil, winnow.Errorf(winnow.EINTERNAL, "%v", err)
		}

		recs = append(recs, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, winnow.Errorf(winnow.EINTERNAL, "failed to iterate file records: %v", err)
	}

	return recs, nil
}
