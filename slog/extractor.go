// Package slog provides logging decorators for pipeline services.
package slog

import (
	"log/slog"
	"time"

	"github.com/mwielgus/townpress"
)

// Ensure LoggingExtractor implements townpress.Extractor.
var _ townpress.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   townpress.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next townpress.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *townpress.ExtractResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"input_bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs, "title", result.Title, "output_bytes", len(result.ContentHTML))
		}
		e.logger.Debug("content extraction", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
