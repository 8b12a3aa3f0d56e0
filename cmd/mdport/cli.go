package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/mdport"
	"github.com/fwojciec/mdport/goquery"
	"github.com/fwojciec/mdport/readability"
	mdslog "github.com/fwojciec/mdport/slog"
	"github.com/fwojciec/mdport/trafilatura"
	"github.com/fwojciec/mdport/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Parser   mdport.DocumentParser
	Renderer mdport.Renderer
	Outliner mdport.Outliner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetches and conversions to stderr"`

	Convert ConvertCmd `cmd:"" help:"Convert one HTML file to Markdown"`
	Import  ImportCmd  `cmd:"" help:"Import HTML posts into a Markdown site"`
}

// platformAuto selects profiles by detecting the platform of each page.
const platformAuto = "auto"

// ProfileFlags select and sanitize the content of each page. Values are
// layered: built-in platform profile, then --profile, then the other flags.
type ProfileFlags struct {
	Platform string   `short:"p" help:"Built-in profile (wordpress, blogger, ghost, jekyll, hugo, medium) or auto to detect per page"`
	Profile  string   `short:"P" help:"YAML conversion profile"`
	Content  string   `short:"C" help:"Locator (CSS or XPath) of the content node"`
	Remove   []string `short:"r" help:"Locator of nodes to remove (repeatable)"`
	Inline   []string `short:"i" help:"Locator of nodes to replace with their text (repeatable)"`
	Extract  string   `short:"x" help:"Content extractor to run first (readability or trafilatura)"`
}

// Resolve merges the profile layers and validates the result. With
// --platform auto, the result serves pages of unknown platforms.
func (f *ProfileFlags) Resolve() (*mdport.Profile, error) {
	profile := &mdport.Profile{}
	if f.Platform != "" && f.Platform != platformAuto {
		p, ok := mdport.BuiltinProfiles()[mdport.Platform(f.Platform)]
		if !ok {
			return nil, mdport.Errorf(mdport.EINVALID, "unknown platform %q", f.Platform)
		}
		profile = p
	}

	if f.Profile != "" {
		p, err := yaml.ReadProfile(f.Profile)
		if err != nil {
			return nil, err
		}
		overlay(profile, p)
	}

	overlay(profile, &mdport.Profile{
		Content:   f.Content,
		Remove:    f.Remove,
		Inline:    f.Inline,
		Extractor: f.Extract,
	})

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// Registry returns the registry used by --platform auto. The profile
// resolved from the other flags, if any are set, is the fallback.
func (f *ProfileFlags) Registry(logger *slog.Logger) (mdport.ProfileRegistry, error) {
	var fallback *mdport.Profile
	if f.Profile != "" || f.Content != "" || len(f.Remove) > 0 || len(f.Inline) > 0 || f.Extract != "" {
		p, err := f.Resolve()
		if err != nil {
			return nil, err
		}
		fallback = p
	}
	registry := goquery.NewBuiltinRegistry(goquery.NewDetector(), fallback)
	return mdslog.NewLoggingRegistry(registry, logger), nil
}

// Auto reports whether profiles are picked per page.
func (f *ProfileFlags) Auto() bool {
	return f.Platform == platformAuto
}

// overlay copies the non-empty fields of src onto dst.
func overlay(dst, src *mdport.Profile) {
	if src.Content != "" {
		dst.Content = src.Content
	}
	if len(src.Remove) > 0 {
		dst.Remove = src.Remove
	}
	if len(src.Inline) > 0 {
		dst.Inline = src.Inline
	}
	if src.Extractor != "" {
		dst.Extractor = src.Extractor
	}
	if src.Layout != "" {
		dst.Layout = src.Layout
	}
}

// newExtractor returns the extractor named by a validated profile, or nil.
func newExtractor(name string) mdport.Extractor {
	switch name {
	case mdport.ExtractorReadability:
		return readability.NewExtractor()
	case mdport.ExtractorTrafilatura:
		return trafilatura.NewExtractor()
	}
	return nil
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	ProfileFlags `embed:""`

	File string `arg:"" help:"HTML file to convert (- for stdin)"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	ProfileFlags `embed:""`

	Sources     []string      `arg:"" optional:"" help:"HTML files, glob patterns or http(s) URLs"`
	WXR         string        `name:"wxr" help:"WordPress export file to import"`
	Out         string        `short:"o" default:"." help:"Base directory for output"`
	Name        string        `short:"n" default:"site" help:"Name of the output directory"`
	DB          string        `name:"db" help:"Save posts to this SQLite database instead of files"`
	Layout      string        `short:"l" help:"Front matter layout (default: profile layout or post)"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent conversion limit"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	RPS         float64       `name:"rps" default:"1" help:"Requests per second per domain (0 disables limiting)"`
	Render      bool          `help:"Render URLs in headless Chrome before converting"`
	Preview     bool          `help:"List entries without converting them"`
}
