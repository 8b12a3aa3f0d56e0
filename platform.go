package mdport

// Platform identifies the blogging engine that generated a page.
type Platform string

// Supported platforms.
const (
	PlatformUnknown   Platform = ""
	PlatformWordPress Platform = "wordpress"
	PlatformBlogger   Platform = "blogger"
	PlatformGhost     Platform = "ghost"
	PlatformJekyll    Platform = "jekyll"
	PlatformHugo      Platform = "hugo"
	PlatformMedium    Platform = "medium"
)

// PlatformDetector identifies blogging platforms from HTML.
type PlatformDetector interface {
	// Detect analyzes HTML and returns the identified platform.
	// Returns PlatformUnknown if the platform cannot be determined.
	Detect(html string) Platform
}

// ProfileRegistry maps platforms to conversion profiles.
type ProfileRegistry interface {
	// Get returns a copy of the profile registered for platform, or nil.
	Get(platform Platform) *Profile

	// ForHTML detects the platform of html and returns a copy of its
	// profile. The fallback profile, if any, is returned for unknown
	// platforms; otherwise the profile is nil.
	ForHTML(html string) (*Profile, Platform)

	// Register adds or replaces the profile of platform.
	Register(platform Platform, profile *Profile)

	// List returns the registered platforms in sorted order.
	List() []Platform
}

// BuiltinProfiles returns the conversion profiles for the default themes of
// the supported platforms. Each call returns fresh values.
func BuiltinProfiles() map[Platform]*Profile {
	return map[Platform]*Profile{
		PlatformWordPress: {
			Content: "div.entry-content",
			Remove:  []string{"script", "style", ".sharedaddy", ".jp-relatedposts", ".wp-block-buttons"},
			Inline:  []string{"font"},
		},
		PlatformBlogger: {
			Content: "div.post-body",
			Remove:  []string{"script", "style", ".post-share-buttons"},
			Inline:  []string{"span[style]", "font"},
		},
		PlatformGhost: {
			Content: ".gh-content, .post-content",
			Remove:  []string{"script", "style", ".kg-signup-card"},
		},
		PlatformJekyll: {
			Content: "div.post-content",
			Remove:  []string{"script", "style"},
		},
		PlatformHugo: {
			Content: "article",
			Remove:  []string{"script", "style", "nav", "article > header", "article > footer"},
		},
		PlatformMedium: {
			Content: "article section",
			Remove:  []string{"script", "style", "button"},
		},
	}
}
