package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/readmegen"
)

// Ensure the logging sources implement their readmegen interfaces.
var (
	_ readmegen.DocumentSource = (*LoggingDocumentSource)(nil)
	_ readmegen.TemplateSource = (*LoggingTemplateSource)(nil)
)

// LoggingDocumentSource wraps a DocumentSource with logging.
type LoggingDocumentSource struct {
	next   readmegen.DocumentSource
	logger *slog.Logger
}

// NewLoggingDocumentSource creates a new LoggingDocumentSource.
func NewLoggingDocumentSource(next readmegen.DocumentSource, logger *slog.Logger) *LoggingDocumentSource {
	return &LoggingDocumentSource{next: next, logger: logger}
}

// LoadDocuments delegates to the wrapped source and logs each document at
// debug level plus a summary line.
func (s *LoggingDocumentSource) LoadDocuments(ctx context.Context) (docs []*readmegen.Document, err error) {
	defer func(begin time.Time) {
		for _, doc := range docs {
			s.logger.Debug("loaded document",
				"name", doc.Name,
				"lines", len(doc.Lines),
				"sections", len(doc.Sections),
			)
		}
		s.logger.Info("load sources",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadDocuments(ctx)
}

// LoggingTemplateSource wraps a TemplateSource with logging.
type LoggingTemplateSource struct {
	next   readmegen.TemplateSource
	logger *slog.Logger
}

// NewLoggingTemplateSource creates a new LoggingTemplateSource.
func NewLoggingTemplateSource(next readmegen.TemplateSource, logger *slog.Logger) *LoggingTemplateSource {
	return &LoggingTemplateSource{next: next, logger: logger}
}

// LoadTemplate delegates to the wrapped source and logs the operation.
func (s *LoggingTemplateSource) LoadTemplate(ctx context.Context) (template string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("load template",
			"bytes", len(template),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadTemplate(ctx)
}
