package mdport

import (
	"strings"
	"unicode"
)

// Section represents a heading in a markdown document.
type Section struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// Outliner lists the headings of a markdown document.
type Outliner interface {
	// Outline returns all headings (H1-H6) in document order.
	// Duplicate anchors get numeric suffixes.
	Outline(markdown string) []Section
}

// Slugify creates a URL-safe slug from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func Slugify(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' || r == '_' || r == '.' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

// HeadingTitle returns the title of the first H1 in sections, or of the
// first heading of any level when there is no H1.
func HeadingTitle(sections []Section) string {
	for _, s := range sections {
		if s.Level == 1 {
			return s.Title
		}
	}
	if len(sections) > 0 {
		return sections[0].Title
	}
	return ""
}
