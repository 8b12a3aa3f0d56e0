package mdport

import "io"

// Document is a parsed HTML document that can be queried with locator
// expressions. A locator is either an XPath expression or a CSS selector;
// the dialect is decided by the implementation.
type Document interface {
	// At returns the first node matching expr in document order.
	// Returns nil and no error when nothing matches.
	// Returns EINVALID if expr is not a valid locator.
	At(expr string) (Node, error)
}

// Node is a sub-tree of a Document.
//
// Mutating methods change the underlying document. A Node is only valid for
// the duration of the call that produced it and must not be shared between
// goroutines working on the same Document.
type Node interface {
	// Search returns all nodes inside this node's sub-tree that match expr,
	// in document order. Returns EINVALID if expr is not a valid locator.
	Search(expr string) ([]Node, error)

	// Traverse calls fn for every descendant of the node and the node itself,
	// depth-first with children visited before their parent. fn may detach
	// the node it is visiting.
	Traverse(fn func(Node))

	// IsComment reports whether the node is an HTML comment.
	IsComment() bool

	// Remove detaches the node from its parent.
	Remove()

	// ReplaceWithText replaces the node in its parent with a text node.
	ReplaceWithText(text string)

	// InnerText returns the concatenated text of all descendant text nodes.
	InnerText() string

	// InnerHTML returns the serialized markup of the node's children.
	InnerHTML() (string, error)
}

// DocumentParser parses raw HTML into a Document.
type DocumentParser interface {
	// Parse reads HTML from r. Malformed markup is recovered leniently.
	Parse(r io.Reader) (Document, error)
}
