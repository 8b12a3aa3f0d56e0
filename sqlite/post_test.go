package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/mdport"
	"github.com/fwojciec/mdport/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(source, slug string) *mdport.Post {
	return &mdport.Post{
		Source:      source,
		Title:       "Title of " + slug,
		Slug:        slug,
		Date:        time.Date(2019, 3, 14, 9, 30, 0, 0, time.UTC),
		Layout:      "post",
		Categories:  []string{"Vegetables", "Winter"},
		Tags:        []string{"garlic"},
		Content:     "Garlic went in late.",
		ContentHash: "abc123",
	}
}

func TestPostStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("stores posts on commit", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := sqlite.NewPostStore(openDB(t))
		p := post("a.html", "winter-notes")

		require.NoError(t, store.Save(ctx, p))
		require.NoError(t, store.Commit())

		assert.NotEmpty(t, p.ID)
		posts, err := store.FindPosts(ctx, mdport.PostFilter{})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		got := posts[0]
		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, "a.html", got.Source)
		assert.Equal(t, "Title of winter-notes", got.Title)
		assert.Equal(t, "winter-notes", got.Slug)
		assert.True(t, p.Date.Equal(got.Date))
		assert.Equal(t, "post", got.Layout)
		assert.Equal(t, []string{"Vegetables", "Winter"}, got.Categories)
		assert.Equal(t, []string{"garlic"}, got.Tags)
		assert.Equal(t, "Garlic went in late.", got.Content)
		assert.Equal(t, "abc123", got.ContentHash)
	})

	t.Run("discards posts on abort", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := sqlite.NewPostStore(openDB(t))

		require.NoError(t, store.Save(ctx, post("a.html", "a")))
		require.NoError(t, store.Abort())

		posts, err := store.FindPosts(ctx, mdport.PostFilter{})
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("replaces posts with the same source", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := sqlite.NewPostStore(openDB(t))

		first := post("a.html", "old-slug")
		require.NoError(t, store.Save(ctx, first))
		require.NoError(t, store.Commit())

		second := post("a.html", "new-slug")
		require.NoError(t, store.Save(ctx, second))
		require.NoError(t, store.Commit())

		assert.Equal(t, first.ID, second.ID)
		posts, err := store.FindPosts(ctx, mdport.PostFilter{})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "new-slug", posts[0].Slug)
	})

	t.Run("fills missing date", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := sqlite.NewPostStore(openDB(t))
		now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		store.Now = func() time.Time { return now }

		p := post("a.html", "a")
		p.Date = time.Time{}
		require.NoError(t, store.Save(ctx, p))
		require.NoError(t, store.Commit())

		posts, err := store.FindPosts(ctx, mdport.PostFilter{})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.True(t, now.Equal(posts[0].Date))
	})

	t.Run("rejects invalid posts", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewPostStore(openDB(t))

		err := store.Save(context.Background(), &mdport.Post{Source: "a.html"})

		require.Error(t, err)
		assert.Equal(t, mdport.EINVALID, mdport.ErrorCode(err))
	})

	t.Run("commit and abort without saves are no-ops", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewPostStore(openDB(t))

		assert.NoError(t, store.Commit())
		assert.NoError(t, store.Abort())
	})
}

func TestPostStore_FindPosts(t *testing.T) {
	t.Parallel()

	t.Run("filters and paginates", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := sqlite.NewPostStore(openDB(t))
		for i, src := range []string{"a.html", "b.html", "c.html"} {
			p := post(src, src)
			p.Date = p.Date.AddDate(0, 0, i)
			p.Categories = nil
			require.NoError(t, store.Save(ctx, p))
		}
		require.NoError(t, store.Commit())

		source := "b.html"
		posts, err := store.FindPosts(ctx, mdport.PostFilter{Source: &source})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "b.html", posts[0].Source)
		assert.Nil(t, posts[0].Categories)

		posts, err = store.FindPosts(ctx, mdport.PostFilter{Offset: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "b.html", posts[0].Source)

		posts, err = store.FindPosts(ctx, mdport.PostFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "c.html", posts[0].Source)
	})
}
