package mdport

// MarkdownDocument is the Markdown rendering of an HTML fragment.
type MarkdownDocument struct {
	// Content is the canonical Markdown text.
	Content string
}

// String returns the canonical Markdown text. A nil document renders as "".
func (d *MarkdownDocument) String() string {
	if d == nil {
		return ""
	}
	return d.Content
}

// IsEmpty reports whether the document holds no Markdown text.
func (d *MarkdownDocument) IsEmpty() bool {
	return d.String() == ""
}

// Renderer converts HTML markup to a MarkdownDocument.
type Renderer interface {
	// Render parses html leniently and renders it as Markdown.
	// Empty markup renders as an empty document, not an error.
	Render(html string) (*MarkdownDocument, error)
}
