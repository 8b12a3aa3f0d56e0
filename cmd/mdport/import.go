package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/mdport"
	"github.com/fwojciec/mdport/etree"
	"github.com/fwojciec/mdport/fs"
	mdhttp "github.com/fwojciec/mdport/http"
	"github.com/fwojciec/mdport/importer"
	"github.com/fwojciec/mdport/rod"
	mdslog "github.com/fwojciec/mdport/slog"
	"github.com/fwojciec/mdport/sqlite"
)

// defaultLayout is used when neither the flag nor the profile sets one.
const defaultLayout = "post"

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	profile, registry, err := c.profiles(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdport.ErrorMessage(err))
		return err
	}

	if len(c.Sources) == 0 && c.WXR == "" {
		err := mdport.Errorf(mdport.EINVALID, "at least one source or --wxr is required")
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdport.ErrorMessage(err))
		return err
	}

	source, closeSource, err := c.source(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdport.ErrorMessage(err))
		return err
	}
	defer closeSource()

	if c.Preview {
		return c.runPreview(deps, source)
	}

	layout := c.Layout
	if layout == "" && profile != nil {
		layout = profile.Layout
	}
	if layout == "" {
		layout = defaultLayout
	}

	store, target, closeStore, err := c.store()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdport.ErrorMessage(err))
		return err
	}
	defer closeStore()

	imp := &importer.Importer{
		Source:      source,
		Parser:      deps.Parser,
		Store:       store,
		Outliner:    deps.Outliner,
		Profiles:    registry,
		Renderer:    deps.Renderer,
		Layout:      layout,
		Concurrency: c.Concurrency,
	}
	if registry == nil {
		imp.Converter = mdport.NewConverter(profile.Content, deps.Renderer, profile.ConverterOptions())
		imp.Extractor = newExtractor(profile.Extractor)
	}

	progress := func(e importer.ProgressEvent) {
		switch e.Type {
		case importer.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", e.Source, e.Error)
		case importer.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "skip %s: no content\n", e.Source)
		}
	}

	result, err := imp.Run(deps.Ctx, progress)
	if err != nil {
		var locErr *importer.LocatorError
		if errors.As(err, &locErr) {
			fmt.Fprintln(deps.Stderr, "Hint: check the --content, --remove and --inline locators")
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdport.ErrorMessage(err))
		return err
	}

	if result.Saved == 0 {
		fmt.Fprintf(deps.Stdout, "No posts saved (%d skipped, %d failed)\n", result.Skipped, result.Failed)
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Saved %d posts to %s (%d skipped, %d failed)\n",
		result.Saved, target, result.Skipped, result.Failed)
	return nil
}

// profiles returns the fixed profile, or with --platform auto the registry
// picking a profile per entry.
func (c *ImportCmd) profiles(deps *Dependencies) (*mdport.Profile, mdport.ProfileRegistry, error) {
	if !c.Auto() {
		profile, err := c.Resolve()
		return profile, nil, err
	}

	registry, err := c.Registry(deps.Logger)
	if err != nil {
		return nil, nil, err
	}
	return nil, registry, nil
}

// store returns the post store and a name for it in messages. The returned
// func closes the database, if one was opened.
func (c *ImportCmd) store() (mdport.PostStore, string, func(), error) {
	if c.DB == "" {
		return fs.NewFileStore(c.Out, c.Name), c.Name, func() {}, nil
	}

	db := sqlite.NewDB(c.DB)
	if err := db.Open(); err != nil {
		return nil, "", nil, err
	}
	return sqlite.NewPostStore(db), c.DB, func() { _ = db.Close() }, nil
}

func (c *ImportCmd) runPreview(deps *Dependencies, source mdport.Source) error {
	entries, err := source.Entries(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdport.ErrorMessage(err))
		return err
	}

	for _, e := range entries {
		if e.Title != "" {
			fmt.Fprintf(deps.Stdout, "%s  %s\n", e.Source, e.Title)
		} else {
			fmt.Fprintln(deps.Stdout, e.Source)
		}
	}
	fmt.Fprintf(deps.Stdout, "%d entries\n", len(entries))
	return nil
}

// source combines the WXR export, local patterns and URLs into one Source.
// The returned func releases the fetcher, if one was created.
func (c *ImportCmd) source(deps *Dependencies) (mdport.Source, func(), error) {
	var patterns, urls []string
	for _, s := range c.Sources {
		if isURL(s) {
			urls = append(urls, s)
		} else {
			patterns = append(patterns, s)
		}
	}

	var sources importer.Sources
	closeFn := func() {}

	if c.WXR != "" {
		sources = append(sources, mdslog.NewLoggingSource(etree.NewExportSource(c.WXR), "wxr", deps.Logger))
	}

	if len(patterns) > 0 {
		sources = append(sources, mdslog.NewLoggingSource(fs.NewFileSource(patterns...), "files", deps.Logger))
	}

	if len(urls) > 0 {
		fetcher, err := c.fetcher(deps)
		if err != nil {
			return nil, nil, err
		}
		closeFn = func() { _ = fetcher.Close() }

		var limiter mdport.DomainLimiter
		if c.RPS > 0 {
			limiter = mdhttp.NewDomainLimiter(c.RPS)
		}

		src := mdhttp.NewURLSource(fetcher, limiter, urls...)
		src.OnRetry = func(url string, attempt int, err error) {
			fmt.Fprintf(deps.Stderr, "retry %s (attempt %d): %v\n", url, attempt, err)
		}
		sources = append(sources, mdslog.NewLoggingSource(src, "urls", deps.Logger))
	}

	return sources, closeFn, nil
}

// fetcher returns a plain HTTP fetcher, or with --render a headless browser.
func (c *ImportCmd) fetcher(deps *Dependencies) (mdport.Fetcher, error) {
	if !c.Render {
		return mdslog.NewLoggingFetcher(mdhttp.NewFetcher(mdhttp.WithTimeout(c.Timeout)), deps.Logger), nil
	}

	f, err := rod.NewFetcher(rod.WithFetchTimeout(c.Timeout))
	if err != nil {
		return nil, mdport.Errorf(mdport.EINTERNAL, "start browser: %v", err)
	}
	return mdslog.NewLoggingFetcher(f, deps.Logger), nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
