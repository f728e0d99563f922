// Package slog provides logging decorators for pagemeta interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagemeta"
)

// Ensure LoggingTechnique implements pagemeta.Technique.
var _ pagemeta.Technique = (*LoggingTechnique)(nil)

// LoggingTechnique wraps a Technique with logging of timing and yield.
type LoggingTechnique struct {
	next   pagemeta.Technique
	logger *slog.Logger
}

// NewLoggingTechnique creates a new LoggingTechnique.
func NewLoggingTechnique(next pagemeta.Technique, logger *slog.Logger) *LoggingTechnique {
	return &LoggingTechnique{next: next, logger: logger}
}

// Name delegates to the wrapped technique.
func (t *LoggingTechnique) Name() string {
	return t.next.Name()
}

// Extract runs the wrapped technique and logs its outcome.
func (t *LoggingTechnique) Extract(html string) (*pagemeta.Result, error) {
	begin := time.Now()
	result, err := t.next.Extract(html)
	if err != nil {
		t.logger.Info("technique failed",
			"technique", t.next.Name(),
			"duration", time.Since(begin),
			"error", err,
		)
		return result, err
	}
	t.logger.Info("technique run",
		"technique", t.next.Name(),
		"duration", time.Since(begin),
		"empty", result.Empty(),
	)
	return result, nil
}
