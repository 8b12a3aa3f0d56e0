package fs

import (
	"context"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/mdport"
)

// Ensure FileSource implements mdport.Source at compile time.
var _ mdport.Source = (*FileSource)(nil)

// FileSource reads HTML posts from local files.
type FileSource struct {
	patterns []string
}

// NewFileSource creates a FileSource over the given glob patterns.
// Patterns support ** for recursive matches.
func NewFileSource(patterns ...string) *FileSource {
	return &FileSource{patterns: patterns}
}

// Entries reads every file matched by the patterns, in pattern order.
// Files matched by several patterns are read once. A pattern matching
// nothing returns ENOTFOUND.
func (s *FileSource) Entries(ctx context.Context) ([]*mdport.Entry, error) {
	var entries []*mdport.Entry
	seen := make(map[string]bool)

	for _, pattern := range s.patterns {
		paths, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, mdport.Errorf(mdport.EINVALID, "invalid pattern %q: %v", pattern, err)
		}
		if len(paths) == 0 {
			return nil, mdport.Errorf(mdport.ENOTFOUND, "no files match %q", pattern)
		}

		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if seen[path] {
				continue
			}
			seen[path] = true

			entry, err := readEntry(path)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

func readEntry(path string) (*mdport.Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &mdport.Entry{
		Source: path,
		Date:   info.ModTime(),
		HTML:   string(body),
	}, nil
}
