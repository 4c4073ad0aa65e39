package slog

import (
	"context"
	"log/slog"
	"time"

	"winnow"
)

// Ensure LoggingRunService implements winnow.RunService.
var _ winnow.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with logging for run lifecycle
// operations. Per-file record writes and lookups delegate silently.
type LoggingRunService struct {
	next   winnow.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next winnow.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

// CreateRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) CreateRun(ctx context.Context, run *winnow.Run) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("run created",
			"id", run.ID,
			"input_dir", run.InputDir,
			"output_dir", run.OutputDir,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRun(ctx, run)
}

// FindRunByID delegates to the wrapped service.
func (s *LoggingRunService) FindRunByID(ctx context.Context, id string) (*winnow.Run, error) {
	return s.next.FindRunByID(ctx, id)
}

// FindRuns delegates to the wrapped service.
func (s *LoggingRunService) FindRuns(ctx context.Context, filter winnow.RunFilter) ([]*winnow.Run, error) {
	return s.next.FindRuns(ctx, filter)
}

// UpdateRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) UpdateRun(ctx context.Context, id string, upd winnow.RunUpdate) (run *winnow.Run, err error) {
	defer func(begin time.Time) {
		s.logger.Info("run updated",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateRun(ctx, id, upd)
}

// DeleteRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) DeleteRun(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("run deleted",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRun(ctx, id)
}

// CreateFileRecord delegates to the wrapped service.
func (s *LoggingRunService) CreateFileRecord(ctx context.Context, rec *winnow.FileRecord) error {
	return s.next.CreateFileRecord(ctx, rec)
}

// FindFileRecords delegates to the wrapped service.
func (s *LoggingRunService) FindFileRecords(ctx context.Context, filter winnow.FileRecordFilter) ([]*winnow.FileRecord, error) {
	return s.next.FindFileRecords(ctx, filter)
}
