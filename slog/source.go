package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mdport"
)

// Ensure LoggingSource implements mdport.Source.
var _ mdport.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with logging.
type LoggingSource struct {
	next   mdport.Source
	name   string
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource. name identifies the source
// in log records.
func NewLoggingSource(next mdport.Source, name string, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, name: name, logger: logger}
}

// Entries delegates to the wrapped source and logs the entry count.
func (s *LoggingSource) Entries(ctx context.Context) (entries []*mdport.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("source entries",
			"source", s.name,
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Entries(ctx)
}
