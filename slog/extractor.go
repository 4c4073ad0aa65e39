package slog

import (
	"log/slog"
	"time"

	"winnow"
)

// Ensure LoggingExtractor implements winnow.Extractor.
var _ winnow.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   winnow.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next winnow.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *winnow.Extraction, err error) {
	defer func(begin time.Time) {
		var chars int
		if result != nil {
			chars = len(result.Text)
		}
		e.logger.Debug("html extraction",
			"html_bytes", len(html),
			"text_chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
