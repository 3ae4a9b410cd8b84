package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/readmegen"
	"github.com/fwojciec/readmegen/xxhash"
)

// Ensure LoggingOutputWriter implements readmegen.OutputWriter.
var _ readmegen.OutputWriter = (*LoggingOutputWriter)(nil)

// LoggingOutputWriter wraps an OutputWriter with logging. Content is
// logged by size and xxhash digest, never verbatim.
type LoggingOutputWriter struct {
	next   readmegen.OutputWriter
	path   string
	logger *slog.Logger
}

// NewLoggingOutputWriter creates a new LoggingOutputWriter. The path is
// only used as a log attribute.
func NewLoggingOutputWriter(next readmegen.OutputWriter, path string, logger *slog.Logger) *LoggingOutputWriter {
	return &LoggingOutputWriter{next: next, path: path, logger: logger}
}

// Write delegates to the wrapped writer and logs the operation.
func (w *LoggingOutputWriter) Write(ctx context.Context, content string) (changed bool, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write output",
			"path", w.path,
			"bytes", len(content),
			"hash", xxhash.Sum(content),
			"changed", changed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.Write(ctx, content)
}

// Read delegates to the wrapped writer and logs the operation.
func (w *LoggingOutputWriter) Read(ctx context.Context) (content string, err error) {
	defer func(begin time.Time) {
		attrs := []any{"path", w.path, "duration", time.Since(begin)}
		if err != nil {
			attrs = append(attrs, "err", err)
		} else {
			attrs = append(attrs, "bytes", len(content), "hash", xxhash.Sum(content))
		}
		w.logger.Debug("read output", attrs...)
	}(time.Now())
	return w.next.Read(ctx)
}
