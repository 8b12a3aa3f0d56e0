package goquery

import (
	"slices"

	"github.com/fwojciec/mdport"
)

var _ mdport.ProfileRegistry = (*Registry)(nil)

// Registry manages platform-specific conversion profiles and auto-detects
// platforms from HTML content. It uses a PlatformDetector to identify the
// blogging platform and returns the matching profile, falling back to a
// fallback profile when the platform is unknown or has no profile.
//
// Profiles are copied on the way in and out, so callers may validate or
// modify the returned values.
type Registry struct {
	detector mdport.PlatformDetector
	fallback *mdport.Profile
	profiles map[mdport.Platform]*mdport.Profile
}

// NewRegistry creates a new Registry with the given detector and fallback
// profile. fallback may be nil.
func NewRegistry(detector mdport.PlatformDetector, fallback *mdport.Profile) *Registry {
	return &Registry{
		detector: detector,
		fallback: fallback.Clone(),
		profiles: make(map[mdport.Platform]*mdport.Profile),
	}
}

// NewBuiltinRegistry creates a Registry holding mdport.BuiltinProfiles.
func NewBuiltinRegistry(detector mdport.PlatformDetector, fallback *mdport.Profile) *Registry {
	r := NewRegistry(detector, fallback)
	for platform, profile := range mdport.BuiltinProfiles() {
		r.Register(platform, profile)
	}
	return r
}

// Get returns the profile for a specific platform.
// Returns nil if no profile is registered for the platform.
func (r *Registry) Get(platform mdport.Platform) *mdport.Profile {
	return r.profiles[platform].Clone()
}

// ForHTML detects the platform from HTML and returns the appropriate profile.
func (r *Registry) ForHTML(html string) (*mdport.Profile, mdport.Platform) {
	platform := r.detector.Detect(html)
	if profile, ok := r.profiles[platform]; ok {
		return profile.Clone(), platform
	}
	return r.fallback.Clone(), platform
}

// Register adds a profile for a platform.
// If a profile is already registered for the platform, it is replaced.
func (r *Registry) Register(platform mdport.Platform, profile *mdport.Profile) {
	r.profiles[platform] = profile.Clone()
}

// List returns all platforms with registered profiles.
func (r *Registry) List() []mdport.Platform {
	platforms := make([]mdport.Platform, 0, len(r.profiles))
	for p := range r.profiles {
		platforms = append(platforms, p)
	}
	slices.Sort(platforms)
	return platforms
}
