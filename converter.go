package mdport

// ConverterOptions holds the auxiliary locators of a Converter.
// Both lists are evaluated relative to the content node, in order.
type ConverterOptions struct {
	// Inline lists locators for nodes flattened to their text content.
	Inline []string

	// Remove lists locators for nodes deleted from the content.
	Remove []string
}

// Converter extracts a content node from a Document, sanitizes it and
// renders it as Markdown.
//
// Configuration is read-only after construction, so a Converter may be used
// concurrently as long as each call works on its own Document.
type Converter struct {
	contentLocator string
	removeLocators []string
	inlineLocators []string
	renderer       Renderer
}

// NewConverter creates a Converter that selects content with contentLocator
// and renders it with renderer. Locators are not validated here; a malformed
// expression fails when it is first evaluated.
func NewConverter(contentLocator string, renderer Renderer, opts ConverterOptions) *Converter {
	return &Converter{
		contentLocator: contentLocator,
		removeLocators: cloneLocators(opts.Remove),
		inlineLocators: cloneLocators(opts.Inline),
		renderer:       renderer,
	}
}

// ContentLocator returns the locator selecting the content node.
func (c *Converter) ContentLocator() string {
	return c.contentLocator
}

// RemoveLocators returns a copy of the remove locators.
func (c *Converter) RemoveLocators() []string {
	return cloneLocators(c.removeLocators)
}

// InlineLocators returns a copy of the inline locators.
func (c *Converter) InlineLocators() []string {
	return cloneLocators(c.inlineLocators)
}

// Content returns the first node in doc matching the content locator.
// Returns nil and no error when nothing matches.
func (c *Converter) Content(doc Document) (Node, error) {
	return doc.At(c.contentLocator)
}

// Sanitize strips comments, removed nodes and inlined markup from node.
//
// The node is mutated in place and returned as is: the result is the same
// node, not a copy. Passes run in a fixed order: comments, then every remove
// locator, then every inline locator. Each locator is evaluated against the
// tree as left by the previous one. A locator matching node itself detaches
// or replaces it like any other match.
func (c *Converter) Sanitize(node Node) (Node, error) {
	if node == nil {
		return nil, Errorf(EINVALID, "content node required")
	}

	node.Traverse(func(n Node) {
		if n.IsComment() {
			n.Remove()
		}
	})

	for _, expr := range c.removeLocators {
		matches, err := node.Search(expr)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			m.Remove()
		}
	}

	for _, expr := range c.inlineLocators {
		matches, err := node.Search(expr)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			m.ReplaceWithText(m.InnerText())
		}
	}

	return node, nil
}

// Convert renders the inner markup of node as Markdown.
// The node's own tag is not part of the output.
func (c *Converter) Convert(node Node) (*MarkdownDocument, error) {
	if node == nil {
		return nil, Errorf(EINVALID, "content node required")
	}

	html, err := node.InnerHTML()
	if err != nil {
		return nil, err
	}

	return c.renderer.Render(html)
}

// Markdown runs the full pipeline on doc and returns the Markdown text.
// A document without a content match yields "" and no error; callers that
// must tell "no content" from "empty content" should call Content first.
func (c *Converter) Markdown(doc Document) (string, error) {
	node, err := c.Content(doc)
	if err != nil {
		return "", err
	}
	if node == nil {
		return "", nil
	}

	node, err = c.Sanitize(node)
	if err != nil {
		return "", err
	}

	md, err := c.Convert(node)
	if err != nil {
		return "", err
	}

	return md.String(), nil
}

func cloneLocators(locators []string) []string {
	out := make([]string, len(locators))
	copy(out, locators)
	return out
}
