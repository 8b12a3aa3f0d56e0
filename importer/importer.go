// Package importer migrates the entries of a Source into Markdown posts.
// It coordinates optional content extraction, parsing, conversion and
// storage of every entry.
package importer

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mdport"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of entries converted at once when
// Importer.Concurrency is not set.
const DefaultConcurrency = 4

// Importer converts the entries of a Source and saves them as posts.
type Importer struct {
	Source    mdport.Source
	Parser    mdport.DocumentParser
	Converter *mdport.Converter
	Store     mdport.PostStore

	// Extractor, if set, reduces each entry to its main content before
	// parsing.
	Extractor mdport.Extractor

	// Outliner, if set, supplies a title from the first heading for entries
	// without one.
	Outliner mdport.Outliner

	// Profiles, if set and Converter is nil, picks the conversion profile of
	// each entry from its detected platform. Converters built this way use
	// Renderer. Profile extractors are ignored.
	Profiles mdport.ProfileRegistry
	Renderer mdport.Renderer

	// Layout is written to the front matter of every post.
	Layout      string
	Concurrency int
}

// Result holds the outcome of an import.
type Result struct {
	Saved   int
	Skipped int
	Failed  int
}

// ProgressEvent reports progress during an import.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting import progress.
type ProgressFunc func(event ProgressEvent)

// LocatorError reports that the content, remove or inline locators could not
// be evaluated. It fails every entry the same way, so Run stops on it.
type LocatorError struct {
	Err error
}

func (e *LocatorError) Error() string {
	return e.Err.Error()
}

func (e *LocatorError) Unwrap() error {
	return e.Err
}

// entryResult holds the outcome of converting a single entry.
type entryResult struct {
	source string
	post   *mdport.Post
	err    error
}

// Run converts all entries and saves the resulting posts in source order.
// The store is committed when at least one post was saved and aborted
// otherwise. The progress callback, if provided, receives events as the
// import proceeds; calls are serialized.
func (imp *Importer) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	entries, err := imp.Source.Entries(ctx)
	if err != nil {
		_ = imp.Store.Abort()
		return nil, fmt.Errorf("list entries: %w", err)
	}

	var mu sync.Mutex
	notify := func(event ProgressEvent) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		progress(event)
	}

	total := len(entries)
	notify(ProgressEvent{Type: ProgressStarted, Total: total})

	concurrency := imp.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]entryResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, entry := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			post, err := imp.ConvertEntry(entry)
			var locErr *LocatorError
			if errors.As(err, &locErr) {
				return err
			}
			results[i] = entryResult{source: entry.Source, post: post, err: err}

			event := ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Add(1)),
				Total:     total,
				Source:    entry.Source,
			}
			switch {
			case err != nil:
				event.Type, event.Error = ProgressFailed, err
			case post == nil:
				event.Type = ProgressSkipped
			}
			notify(event)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		_ = imp.Store.Abort()
		return nil, err
	}

	var result Result
	for _, r := range results {
		switch {
		case r.err != nil:
			result.Failed++
			continue
		case r.post == nil:
			result.Skipped++
			continue
		}

		if err := imp.Store.Save(ctx, r.post); err != nil {
			result.Failed++
			notify(ProgressEvent{
				Type:      ProgressFailed,
				Completed: total,
				Total:     total,
				Source:    r.source,
				Error:     fmt.Errorf("save: %w", err),
			})
			continue
		}
		result.Saved++
	}

	if result.Saved == 0 {
		if err := imp.Store.Abort(); err != nil {
			return nil, fmt.Errorf("abort: %w", err)
		}
	} else if err := imp.Store.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return &result, nil
}

// ConvertEntry converts a single entry into a post. It returns nil and no
// error when the entry has no content match or converts to empty Markdown.
// Locator failures are returned as *LocatorError.
func (imp *Importer) ConvertEntry(entry *mdport.Entry) (*mdport.Post, error) {
	html := entry.HTML
	var extractedTitle string
	if imp.Extractor != nil {
		extracted, err := imp.Extractor.Extract(html)
		if err != nil {
			return nil, fmt.Errorf("extract: %w", err)
		}
		html, extractedTitle = extracted.ContentHTML, extracted.Title
	}

	converter, err := imp.converter(entry.HTML)
	if err != nil {
		return nil, err
	}

	doc, err := imp.Parser.Parse(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	pageTitle := documentTitle(doc)

	node, err := converter.Content(doc)
	if err != nil {
		return nil, &LocatorError{Err: err}
	}
	if node == nil {
		return nil, nil
	}
	if node, err = converter.Sanitize(node); err != nil {
		return nil, &LocatorError{Err: err}
	}
	md, err := converter.Convert(node)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if md.IsEmpty() {
		return nil, nil
	}

	content := md.String()
	title := firstNonEmpty(entry.Title, extractedTitle, pageTitle)
	if title == "" && imp.Outliner != nil {
		title = mdport.HeadingTitle(imp.Outliner.Outline(content))
	}
	name := sourceName(entry.Source)
	if title == "" {
		title = name
	}

	slug := firstNonEmpty(mdport.Slugify(title), mdport.Slugify(name), "post")

	return &mdport.Post{
		Source:      entry.Source,
		Title:       title,
		Slug:        slug,
		Date:        entry.Date,
		Layout:      imp.Layout,
		Categories:  entry.Categories,
		Tags:        entry.Tags,
		Content:     content,
		ContentHash: ComputeHash(content),
	}, nil
}

// converter returns the fixed Converter, or one built from the profile
// registered for the platform detected in html.
func (imp *Importer) converter(html string) (*mdport.Converter, error) {
	if imp.Converter != nil {
		return imp.Converter, nil
	}
	if imp.Profiles == nil {
		return nil, mdport.Errorf(mdport.EINVALID, "converter or profiles required")
	}

	profile, platform := imp.Profiles.ForHTML(html)
	if profile == nil {
		if platform == mdport.PlatformUnknown {
			return nil, mdport.Errorf(mdport.ENOTFOUND, "unknown platform")
		}
		return nil, mdport.Errorf(mdport.ENOTFOUND, "no profile for platform %q", platform)
	}
	profile.Extractor = mdport.ExtractorNone
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return mdport.NewConverter(profile.Content, imp.Renderer, profile.ConverterOptions()), nil
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// documentTitle returns the text of the document's <title>, if any.
func documentTitle(doc mdport.Document) string {
	node, err := doc.At("title")
	if err != nil || node == nil {
		return ""
	}
	return strings.TrimSpace(node.InnerText())
}

// sourceName returns the last path segment of a file path or URL without
// its extension.
func sourceName(source string) string {
	p := filepath.ToSlash(source)
	if u, err := url.Parse(source); err == nil && u.Host != "" {
		p = u.Path
	}
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		return ""
	}
	name := path.Base(p)
	return strings.TrimSuffix(name, path.Ext(name))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
