package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/readmegen"
)

// Ensure LoggingAnchorChecker implements readmegen.AnchorChecker.
var _ readmegen.AnchorChecker = (*LoggingAnchorChecker)(nil)

// LoggingAnchorChecker wraps an AnchorChecker and warns about every
// dangling anchor it finds.
type LoggingAnchorChecker struct {
	next   readmegen.AnchorChecker
	logger *slog.Logger
}

// NewLoggingAnchorChecker creates a new LoggingAnchorChecker.
func NewLoggingAnchorChecker(next readmegen.AnchorChecker, logger *slog.Logger) *LoggingAnchorChecker {
	return &LoggingAnchorChecker{next: next, logger: logger}
}

// DanglingAnchors delegates to the wrapped checker and logs the result.
func (c *LoggingAnchorChecker) DanglingAnchors(markdown string) (dangling []string, err error) {
	defer func(begin time.Time) {
		for _, anchor := range dangling {
			c.logger.Warn("dangling anchor", "anchor", "#"+anchor)
		}
		c.logger.Info("anchor check",
			"dangling", len(dangling),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.DanglingAnchors(markdown)
}
