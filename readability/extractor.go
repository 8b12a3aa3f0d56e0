// Package readability implements mdport.Extractor with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/mdport"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements mdport.Extractor at compile time.
var _ mdport.Extractor = (*Extractor)(nil)

// Extractor reduces a blog page to its article using Mozilla's Readability
// heuristics.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article title and content HTML of rawHTML.
func (e *Extractor) Extract(rawHTML string) (*mdport.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, mdport.Errorf(mdport.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &mdport.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
