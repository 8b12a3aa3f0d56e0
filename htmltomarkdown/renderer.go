// Package htmltomarkdown implements mdport.Renderer with html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/mdport"
)

// Ensure Renderer implements mdport.Renderer at compile time.
var _ mdport.Renderer = (*Renderer)(nil)

// Renderer wraps html-to-markdown to convert HTML to Markdown.
type Renderer struct {
	conv *converter.Converter
}

// NewRenderer creates a new Renderer with CommonMark and table support.
func NewRenderer() *Renderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Renderer{conv: conv}
}

// Render transforms HTML content into a Markdown document.
// Blank input yields an empty document.
func (r *Renderer) Render(html string) (*mdport.MarkdownDocument, error) {
	if strings.TrimSpace(html) == "" {
		return &mdport.MarkdownDocument{}, nil
	}

	result, err := r.conv.ConvertString(html)
	if err != nil {
		return nil, err
	}

	return &mdport.MarkdownDocument{Content: strings.TrimSpace(result)}, nil
}
