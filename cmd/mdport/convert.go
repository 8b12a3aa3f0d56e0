package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/mdport"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	html, err := c.read(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdport.ErrorMessage(err))
		return err
	}

	profile, err := c.profile(deps, html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdport.ErrorMessage(err))
		return err
	}

	if extractor := newExtractor(profile.Extractor); extractor != nil {
		extracted, err := extractor.Extract(html)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mdport.ErrorMessage(err))
			return err
		}
		html = extracted.ContentHTML
	}

	doc, err := deps.Parser.Parse(strings.NewReader(html))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdport.ErrorMessage(err))
		return err
	}

	converter := mdport.NewConverter(profile.Content, deps.Renderer, profile.ConverterOptions())
	markdown, err := converter.Markdown(doc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdport.ErrorMessage(err))
		return err
	}

	if markdown == "" {
		fmt.Fprintf(deps.Stderr, "warning: no content matches %q\n", profile.Content)
		return nil
	}

	fmt.Fprintln(deps.Stdout, markdown)
	return nil
}

// profile resolves the flags, or detects the platform of html with
// --platform auto.
func (c *ConvertCmd) profile(deps *Dependencies, html string) (*mdport.Profile, error) {
	if !c.Auto() {
		return c.Resolve()
	}

	registry, err := c.Registry(deps.Logger)
	if err != nil {
		return nil, err
	}
	profile, platform := registry.ForHTML(html)
	if profile == nil {
		return nil, mdport.Errorf(mdport.ENOTFOUND, "could not detect the platform; set --content")
	}
	fmt.Fprintf(deps.Stderr, "platform: %s\n", platformName(platform))
	return profile, nil
}

func platformName(p mdport.Platform) string {
	if p == mdport.PlatformUnknown {
		return "unknown"
	}
	return string(p)
}

func (c *ConvertCmd) read(stdin io.Reader) (string, error) {
	if c.File == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}

	b, err := os.ReadFile(c.File)
	if os.IsNotExist(err) {
		return "", mdport.Errorf(mdport.ENOTFOUND, "file %q not found", c.File)
	}
	return string(b), err
}
