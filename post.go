package mdport

import (
	"context"
	"time"
)

// Entry is a raw HTML post read from a Source.
type Entry struct {
	// Source identifies where the entry came from (file path or URL).
	Source     string
	Title      string
	Date       time.Time
	HTML       string
	Categories []string
	Tags       []string
}

// Source lists the entries of a site being migrated.
type Source interface {
	// Entries returns all entries in source order.
	Entries(ctx context.Context) ([]*Entry, error)
}

// Post is a converted Markdown post.
type Post struct {
	// ID is assigned by stores that keep posts in a database.
	ID          string    `json:"id,omitempty"`
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Date        time.Time `json:"date"`
	Layout      string    `json:"layout"`
	Categories  []string  `json:"categories"`
	Tags        []string  `json:"tags"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
}

// Validate returns an error if the post contains invalid fields.
func (p *Post) Validate() error {
	if p.Source == "" {
		return Errorf(EINVALID, "post source required")
	}
	if p.Slug == "" {
		return Errorf(EINVALID, "post slug required")
	}
	return nil
}

// PostFilter represents a filter for listing stored posts.
type PostFilter struct {
	Source *string

	// Restrict to a subset of the results.
	Offset int
	Limit  int
}

// PostStore persists posts with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PostStore interface {
	Save(ctx context.Context, post *Post) error
	Commit() error
	Abort() error
}
