package goquery

import (
	"cmp"
	"slices"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// match is an XPath result with its position in document order. An
// attribute sorts right after its owner element.
type match struct {
	node *Node
	pos  int
	attr int
}

// selectXPath evaluates expr with root as context node and returns the
// matches inside root's sub-tree in document order, without duplicates.
func selectXPath(root *html.Node, expr string) ([]*Node, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, invalidLocator(expr, err)
	}

	order := preorder(root)
	seen := make(map[match]bool)
	var matches []match

	it := compiled.Select(htmlquery.CreateXPathNavigator(root))
	for it.MoveNext() {
		nav, ok := it.Current().(*htmlquery.NodeNavigator)
		if !ok {
			continue
		}
		owner := nav.Current()
		pos, ok := order[owner]
		if !ok {
			continue
		}

		m := match{pos: pos}
		node := &Node{n: owner}
		if nav.NodeType() == xpath.AttributeNode {
			node.key, node.attr = nav.LocalName(), true
			m.attr = 1 + slices.IndexFunc(owner.Attr, func(a html.Attribute) bool {
				return a.Key == node.key
			})
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		m.node = node
		matches = append(matches, m)
	}

	slices.SortFunc(matches, func(a, b match) int {
		return cmp.Or(cmp.Compare(a.pos, b.pos), cmp.Compare(a.attr, b.attr))
	})

	nodes := make([]*Node, len(matches))
	for i, m := range matches {
		nodes[i] = m.node
	}
	return nodes, nil
}

// preorder numbers root and its descendants in document order.
func preorder(root *html.Node) map[*html.Node]int {
	order := make(map[*html.Node]int)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		order[n] = len(order)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return order
}
