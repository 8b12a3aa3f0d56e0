package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/mdport"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ mdport.PostStore = (*PostStore)(nil)

// PostStore implements mdport.PostStore using SQLite. Saves run inside one
// transaction that Commit makes permanent and Abort rolls back. Posts are
// keyed by source, so importing a source again replaces its post.
type PostStore struct {
	db *DB
	tx *sql.Tx

	// Now returns the date used for posts without one and the import
	// timestamp. Defaults to time.Now.
	Now func() time.Time
}

// NewPostStore creates a new PostStore.
func NewPostStore(db *DB) *PostStore {
	return &PostStore{db: db, Now: time.Now}
}

// Save inserts or replaces the post with the same source. post.ID is set to
// the stored row ID.
func (s *PostStore) Save(ctx context.Context, post *mdport.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}
	if post.Date.IsZero() {
		post.Date = s.Now()
	}

	if s.tx == nil {
		tx, err := s.db.BeginTx(ctx)
		if err != nil {
			return err
		}
		s.tx = tx
	}

	return s.tx.QueryRowContext(ctx, `
		INSERT INTO posts (id, source, title, slug, date, layout, categories, tags, content, content_hash, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source) DO UPDATE SET
			title = excluded.title,
			slug = excluded.slug,
			date = excluded.date,
			layout = excluded.layout,
			categories = excluded.categories,
			tags = excluded.tags,
			content = excluded.content,
			content_hash = excluded.content_hash,
			imported_at = excluded.imported_at
		RETURNING id
	`, uuid.New().String(), post.Source, post.Title, post.Slug, post.Date.UTC().Format(time.RFC3339),
		post.Layout, joinList(post.Categories), joinList(post.Tags), post.Content, post.ContentHash,
		s.Now().UTC().Format(time.RFC3339)).Scan(&post.ID)
}

// Commit makes saved posts permanent. Committing without saves is a no-op.
func (s *PostStore) Commit() error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit()
	s.tx = nil
	return err
}

// Abort discards posts saved since the last Commit.
func (s *PostStore) Abort() error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback()
	s.tx = nil
	return err
}

// FindPosts retrieves committed posts matching the filter, oldest first.
// It must not be called while saves are pending.
func (s *PostStore) FindPosts(ctx context.Context, filter mdport.PostFilter) ([]*mdport.Post, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, title, slug, date, layout, categories, tags, content, content_hash FROM posts WHERE 1=1")

	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	query.WriteString(" ORDER BY date ASC, source ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*mdport.Post
	for rows.Next() {
		var post mdport.Post
		var date, categories, tags string

		if err := rows.Scan(&post.ID, &post.Source, &post.Title, &post.Slug, &date, &post.Layout,
			&categories, &tags, &post.Content, &post.ContentHash); err != nil {
			return nil, err
		}

		if post.Date, err = parseRFC3339(date, "date"); err != nil {
			return nil, err
		}
		post.Categories = splitList(categories)
		post.Tags = splitList(tags)

		posts = append(posts, &post)
	}

	return posts, rows.Err()
}
