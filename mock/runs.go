package mock

import (
	"context"

	"winnow"
)

var _ winnow.RunService = (*RunService)(nil)

// RunService is a mock implementation of winnow.RunService.
type RunService struct {
	CreateRunFn        func(ctx context.Context, run *winnow.Run) error
	FindRunByIDFn      func(ctx context.Context, id string) (*winnow.Run, error)
	FindRunsFn         func(ctx context.Context, filter winnow.RunFilter) ([]*winnow.Run, error)
	UpdateRunFn        func(ctx context.Context, id string, upd winnow.RunUpdate) (*winnow.Run, error)
	DeleteRunFn        func(ctx context.Context, id string) error
	CreateFileRecordFn func(ctx context.Context, rec *winnow.FileRecord) error
	FindFileRecordsFn  func(ctx context.Context, filter winnow.FileRecordFilter) ([]*winnow.FileRecord, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *winnow.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*winnow.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter winnow.RunFilter) ([]*winnow.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) UpdateRun(ctx context.Context, id string, upd winnow.RunUpdate) (*winnow.Run, error) {
	return s.UpdateRunFn(ctx, id, upd)
}

func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}

func (s *RunService) CreateFileRecord(ctx context.Context, rec *winnow.FileRecord) error {
	return s.CreateFileRecordFn(ctx, rec)
}

func (s *RunService) FindFileRecords(ctx context.Context, filter winnow.FileRecordFilter) ([]*winnow.FileRecord, error) {
	return s.FindFileRecordsFn(ctx, filter)
}
