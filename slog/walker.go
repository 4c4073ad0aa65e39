// Package slog provides logging decorators for winnow services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"winnow"
)

// Ensure LoggingWalker implements winnow.FileWalker.
var _ winnow.FileWalker = (*LoggingWalker)(nil)

// LoggingWalker wraps a FileWalker with debug logging.
type LoggingWalker struct {
	next   winnow.FileWalker
	logger *slog.Logger
}

// NewLoggingWalker creates a new LoggingWalker.
func NewLoggingWalker(next winnow.FileWalker, logger *slog.Logger) *LoggingWalker {
	return &LoggingWalker{next: next, logger: logger}
}

// Walk delegates to the wrapped walker and logs the operation.
func (w *LoggingWalker) Walk(ctx context.Context, root string) (files []winnow.FileInfo, err error) {
	defer func(begin time.Time) {
		w.logger.Info("file discovery",
			"root", root,
			"count", len(files),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.Walk(ctx, root)
}
