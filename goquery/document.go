// Package goquery implements mdport.Document and mdport.Node over
// golang.org/x/net/html trees. CSS locators are evaluated with goquery and
// cascadia; XPath locators with antchfx/xpath over an htmlquery navigator.
package goquery

import (
	"io"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/xpath"
	"github.com/fwojciec/mdport"
)

// Ensure types implement their interfaces at compile time.
var (
	_ mdport.DocumentParser = (*Parser)(nil)
	_ mdport.Document       = (*Document)(nil)
	_ mdport.Node           = (*Node)(nil)
)

// xpathPattern matches locators treated as XPath: absolute paths and paths
// relative to the current or parent node. Anything else is a CSS selector.
var xpathPattern = regexp.MustCompile(`^(\./|/|\.\.|\.$)`)

// IsXPath reports whether expr is evaluated as XPath rather than CSS.
func IsXPath(expr string) bool {
	return xpathPattern.MatchString(expr)
}

// Parser parses HTML into Documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads HTML from r using the HTML5 parsing algorithm.
func (p *Parser) Parse(r io.Reader) (mdport.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, mdport.Errorf(mdport.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Document wraps a parsed goquery document.
type Document struct {
	doc *goquery.Document
}

// At returns the first node matching expr in document order, or nil.
func (d *Document) At(expr string) (mdport.Node, error) {
	if IsXPath(expr) {
		found, err := selectXPath(d.doc.Get(0), expr)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, nil
		}
		return found[0], nil
	}

	m, err := cascadia.Compile(expr)
	if err != nil {
		return nil, invalidLocator(expr, err)
	}
	sel := d.doc.FindMatcher(m)
	if sel.Length() == 0 {
		return nil, nil
	}
	return &Node{n: sel.Get(0)}, nil
}

// validateLocator reports whether expr compiles in its dialect.
func validateLocator(expr string) error {
	var err error
	if IsXPath(expr) {
		_, err = xpath.Compile(expr)
	} else {
		_, err = cascadia.Compile(expr)
	}
	if err != nil {
		return invalidLocator(expr, err)
	}
	return nil
}

func invalidLocator(expr string, err error) error {
	return mdport.Errorf(mdport.EINVALID, "invalid locator %q: %v", expr, err)
}
