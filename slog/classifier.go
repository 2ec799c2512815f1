package slog

import (
	"log/slog"

	"github.com/mwielgus/townpress"
)

// Ensure LoggingClassifier implements townpress.Classifier.
var _ townpress.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with per-decision logging.
type LoggingClassifier struct {
	next   townpress.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next townpress.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the decision.
func (c *LoggingClassifier) Classify(sig townpress.Signals) townpress.PageType {
	pageType := c.next.Classify(sig)
	c.logger.Debug("page classification",
		"filename", sig.Filename,
		"title", sig.Title,
		"page_type", string(pageType),
	)
	return pageType
}
