// Package fs provides file-based sources and storage for posts.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/mdport"
	"gopkg.in/yaml.v3"
)

// PostsDir is the directory inside the output directory that holds posts.
const PostsDir = "_posts"

// DateFormat is the front matter date layout.
const DateFormat = "2006-01-02 15:04:05 -0700"

// Ensure FileStore implements mdport.PostStore at compile time.
var _ mdport.PostStore = (*FileStore)(nil)

// FileStore implements mdport.PostStore with atomic update semantics.
// Posts are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
	used    map[string]int

	// Now returns the date used for posts without one. Defaults to time.Now.
	Now func() time.Time
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
		used:    make(map[string]int),
		Now:     time.Now,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes post to _posts/YYYY-MM-DD-slug.md in the temporary directory.
// Posts sharing a date and slug get numeric suffixes.
func (s *FileStore) Save(ctx context.Context, post *mdport.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}
	if post.Date.IsZero() {
		post.Date = s.Now()
	}

	fullPath := filepath.Join(s.tempDir(), PostsDir, s.fileName(post))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatPost(post)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

func (s *FileStore) fileName(post *mdport.Post) string {
	base := post.Date.Format("2006-01-02") + "-" + post.Slug
	n := s.used[base]
	s.used[base] = n + 1
	if n == 0 {
		return base + ".md"
	}
	return fmt.Sprintf("%s-%d.md", base, n+1)
}

// Commit replaces the output directory with the temporary directory.
func (s *FileStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the temporary directory.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

type frontMatter struct {
	Layout      string   `yaml:"layout,omitempty"`
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Categories  []string `yaml:"categories,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Source      string   `yaml:"source"`
	ContentHash string   `yaml:"content_hash,omitempty"`
}

// FormatPost formats a post as Markdown with YAML front matter.
func FormatPost(post *mdport.Post) (string, error) {
	fm, err := yaml.Marshal(frontMatter{
		Layout:      post.Layout,
		Title:       post.Title,
		Date:        post.Date.Format(DateFormat),
		Categories:  post.Categories,
		Tags:        post.Tags,
		Source:      post.Source,
		ContentHash: post.ContentHash,
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n\n")
	b.WriteString(post.Content)
	if !strings.HasSuffix(post.Content, "\n") {
		b.WriteString("\n")
	}
	return b.String(), nil
}
