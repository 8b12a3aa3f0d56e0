package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mdport"
)

// Ensure LoggingRegistry implements mdport.ProfileRegistry.
var _ mdport.ProfileRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a ProfileRegistry with debug logging for platform detection.
type LoggingRegistry struct {
	next   mdport.ProfileRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next mdport.ProfileRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(platform mdport.Platform) *mdport.Profile {
	return r.next.Get(platform)
}

// ForHTML delegates to the wrapped registry and logs the detected platform.
func (r *LoggingRegistry) ForHTML(html string) (*mdport.Profile, mdport.Platform) {
	begin := time.Now()
	profile, platform := r.next.ForHTML(html)
	platformName := string(platform)
	if platform == mdport.PlatformUnknown {
		platformName = "(unknown)"
	}
	content := ""
	if profile != nil {
		content = profile.Content
	}
	r.logger.Debug("platform detection",
		"platform", platformName,
		"content", content,
		"duration", time.Since(begin),
	)
	return profile, platform
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(platform mdport.Platform, profile *mdport.Profile) {
	r.next.Register(platform, profile)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []mdport.Platform {
	return r.next.List()
}
