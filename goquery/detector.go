package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mdport"
)

// Ensure Detector implements mdport.PlatformDetector at compile time.
var _ mdport.PlatformDetector = (*Detector)(nil)

// Detector identifies blogging platforms from HTML content.
// It checks meta generator tags first, then theme classes, asset paths and
// structural markers that are unique to each platform.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified platform.
// Returns PlatformUnknown if the platform cannot be determined.
func (d *Detector) Detect(html string) mdport.Platform {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return mdport.PlatformUnknown
	}

	// Check meta generator tags first - most reliable when present
	if platform := d.detectFromMetaGenerator(doc); platform != mdport.PlatformUnknown {
		return platform
	}

	// WordPress serves theme and core assets from fixed paths
	if d.hasSelector(doc, "link[href*='/wp-content/']") ||
		d.hasSelector(doc, "script[src*='/wp-includes/']") ||
		d.hasSelector(doc, "link[rel='https://api.w.org/']") {
		return mdport.PlatformWordPress
	}

	// Blogger layouts always contain the Blog1 widget
	if d.hasSelector(doc, "#Blog1") ||
		d.hasSelector(doc, "div.post-body.entry-content") && d.hasSelector(doc, "div.blog-posts") {
		return mdport.PlatformBlogger
	}

	// Ghost cards and content wrapper
	if d.hasSelector(doc, ".gh-content") ||
		d.hasSelector(doc, ".kg-card") {
		return mdport.PlatformGhost
	}

	// Medium exposes its app name in Open Graph meta tags
	if d.hasSelector(doc, "meta[property='al:ios:app_name'][content='Medium']") ||
		d.hasSelector(doc, "meta[property='og:site_name'][content='Medium']") {
		return mdport.PlatformMedium
	}

	// Jekyll minima theme
	if d.hasSelector(doc, "div.post-content.e-content") &&
		d.hasSelector(doc, "article.post.h-entry") {
		return mdport.PlatformJekyll
	}

	return mdport.PlatformUnknown
}

// detectFromMetaGenerator checks the meta generator tag for platform identification.
func (d *Detector) detectFromMetaGenerator(doc *goquery.Document) mdport.Platform {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})

	if generator == "" {
		return mdport.PlatformUnknown
	}

	switch {
	case strings.Contains(generator, "wordpress"):
		return mdport.PlatformWordPress
	case strings.Contains(generator, "blogger"):
		return mdport.PlatformBlogger
	case strings.Contains(generator, "ghost"):
		return mdport.PlatformGhost
	case strings.Contains(generator, "jekyll"):
		return mdport.PlatformJekyll
	case strings.Contains(generator, "hugo"):
		return mdport.PlatformHugo
	}

	return mdport.PlatformUnknown
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
