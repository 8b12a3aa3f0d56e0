// Package slog provides logging decorators for mdport services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mdport"
)

// Ensure LoggingRenderer implements mdport.Renderer.
var _ mdport.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   mdport.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next mdport.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs sizes and duration.
func (r *LoggingRenderer) Render(html string) (doc *mdport.MarkdownDocument, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("render",
			"html_bytes", len(html),
			"markdown_bytes", len(doc.String()),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(html)
}
