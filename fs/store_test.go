package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/mdport"
	"github.com/fwojciec/mdport/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postDate = time.Date(2019, 3, 14, 9, 30, 0, 0, time.UTC)

func newPost(slug string) *mdport.Post {
	return &mdport.Post{
		Source:  "archive/" + slug + ".html",
		Title:   "Post " + slug,
		Slug:    slug,
		Date:    postDate,
		Layout:  "post",
		Content: "Body of " + slug,
	}
}

// Story: Atomic Post Storage
// The store uses a temp directory for atomic updates

func TestFileStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := fs.NewFileStore(base, "site")

	// When I save a post
	err := store.Save(context.Background(), newPost("hello"))
	require.NoError(t, err)

	// Then the file exists in the temp directory under _posts
	tempPath := filepath.Join(base, "site.tmp", "_posts", "2019-03-14-hello.md")
	_, err = os.Stat(tempPath)
	require.NoError(t, err, "file should exist in temp directory")

	// And the final directory does not exist yet
	_, err = os.Stat(filepath.Join(base, "site"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestFileStore_CommitMovesFromTempToFinal(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "site")
	require.NoError(t, store.Save(context.Background(), newPost("a")))

	err := store.Commit()
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(base, "site", "_posts", "2019-03-14-a.md"))
	require.NoError(t, err, "file should exist in final directory after commit")

	_, err = os.Stat(filepath.Join(base, "site.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestFileStore_CommitReplacesExistingOutput(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	stale := filepath.Join(base, "site", "_posts", "2001-01-01-stale.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

	store := fs.NewFileStore(base, "site")
	require.NoError(t, store.Save(context.Background(), newPost("fresh")))
	require.NoError(t, store.Commit())

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale post should be gone")
	_, err = os.Stat(filepath.Join(base, "site", "_posts", "2019-03-14-fresh.md"))
	assert.NoError(t, err)
}

func TestFileStore_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "site")
	require.NoError(t, store.Save(context.Background(), newPost("a")))

	err := store.Abort()
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(base, "site.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after abort")
	_, err = os.Stat(filepath.Join(base, "site"))
	assert.True(t, os.IsNotExist(err), "final directory should not be created")
}

func TestFileStore_SuffixesDuplicateNames(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "site")

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Save(context.Background(), newPost("same")))
	}

	dir := filepath.Join(base, "site.tmp", "_posts")
	for _, name := range []string{"2019-03-14-same.md", "2019-03-14-same-2.md", "2019-03-14-same-3.md"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestFileStore_UsesNowForUndatedPosts(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "site")
	store.Now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }

	post := newPost("undated")
	post.Date = time.Time{}
	require.NoError(t, store.Save(context.Background(), post))

	_, err := os.Stat(filepath.Join(base, "site.tmp", "_posts", "2024-05-01-undated.md"))
	assert.NoError(t, err)
}

func TestFileStore_RejectsInvalidPost(t *testing.T) {
	t.Parallel()

	store := fs.NewFileStore(t.TempDir(), "site")

	err := store.Save(context.Background(), &mdport.Post{Source: "x.html"})

	require.Error(t, err)
	assert.Equal(t, mdport.EINVALID, mdport.ErrorCode(err))
}

func TestFormatPost(t *testing.T) {
	t.Parallel()

	t.Run("writes front matter and content", func(t *testing.T) {
		t.Parallel()

		post := newPost("hello")
		post.Title = "Hello: World"
		post.Categories = []string{"Meta"}
		post.Tags = []string{"go", "blog"}
		post.ContentHash = "abc123"

		got, err := fs.FormatPost(post)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "---\nlayout: post\n"))
		assert.True(t, strings.HasSuffix(got, "content_hash: abc123\n---\n\nBody of hello\n"))
		assert.Contains(t, got, "Hello: World")
		assert.Contains(t, got, "2019-03-14 09:30:00 +0000")
		assert.Contains(t, got, "- Meta")
		assert.Contains(t, got, "- blog")
		assert.Contains(t, got, "source: archive/hello.html")
	})

	t.Run("omits empty optional fields", func(t *testing.T) {
		t.Parallel()

		post := newPost("plain")
		post.Layout = ""

		got, err := fs.FormatPost(post)

		require.NoError(t, err)
		assert.NotContains(t, got, "layout:")
		assert.NotContains(t, got, "categories:")
		assert.NotContains(t, got, "content_hash:")
	})
}
