package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/mdport"
	"golang.org/x/net/html"
)

// Node wraps a single html.Node, or one attribute of an element when
// selected by an XPath attribute step such as .//@style.
type Node struct {
	n *html.Node

	// attr marks an attribute node; key names the attribute of n.
	attr bool
	key  string
}

// Search returns the nodes in this node's sub-tree matching expr, in
// document order.
//
// CSS selectors match descendant elements only. XPath expressions are
// evaluated with the node as context node and may select elements, text,
// comments or attributes. Matches outside the sub-tree (for example from a
// ../ step) are dropped.
func (n *Node) Search(expr string) ([]mdport.Node, error) {
	if n.attr {
		return nil, validateLocator(expr)
	}

	if IsXPath(expr) {
		found, err := selectXPath(n.n, expr)
		if err != nil {
			return nil, err
		}
		nodes := make([]mdport.Node, len(found))
		for i, f := range found {
			nodes[i] = f
		}
		return nodes, nil
	}

	m, err := cascadia.Compile(expr)
	if err != nil {
		return nil, invalidLocator(expr, err)
	}
	found := n.selection().FindMatcher(m).Nodes
	nodes := make([]mdport.Node, 0, len(found))
	for _, f := range found {
		nodes = append(nodes, &Node{n: f})
	}
	return nodes, nil
}

// Traverse calls fn for every node of the sub-tree, children before parents.
// The next sibling is read before a child is visited, so fn may detach the
// node it receives. Attributes are not visited, except an attribute node
// itself.
func (n *Node) Traverse(fn func(mdport.Node)) {
	if n.attr {
		fn(n)
		return
	}
	traverse(n.n, fn)
}

func traverse(n *html.Node, fn func(mdport.Node)) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		traverse(c, fn)
		c = next
	}
	fn(&Node{n: n})
}

// IsComment reports whether the node is an HTML comment.
func (n *Node) IsComment() bool {
	return !n.attr && n.n.Type == html.CommentNode
}

// Remove detaches the node from its parent, or deletes the attribute from
// its element. Detached nodes are left as is.
func (n *Node) Remove() {
	if n.attr {
		n.n.Attr = deleteAttr(n.n.Attr, n.key)
		return
	}
	if n.n.Parent != nil {
		n.n.Parent.RemoveChild(n.n)
	}
}

// ReplaceWithText puts a text node holding text where the node was. For an
// attribute, text becomes its value. Detached nodes are left as is.
func (n *Node) ReplaceWithText(text string) {
	if n.attr {
		for i := range n.n.Attr {
			if n.n.Attr[i].Key == n.key {
				n.n.Attr[i].Val = text
			}
		}
		return
	}

	parent := n.n.Parent
	if parent == nil {
		return
	}
	parent.InsertBefore(&html.Node{Type: html.TextNode, Data: text}, n.n)
	parent.RemoveChild(n.n)
}

// InnerText returns the text of all descendant text nodes in document order,
// or the value of an attribute.
func (n *Node) InnerText() string {
	if n.attr {
		val, _ := attrValue(n.n.Attr, n.key)
		return val
	}
	return n.selection().Text()
}

// InnerHTML serializes the node's children, or the escaped value of an
// attribute.
func (n *Node) InnerHTML() (string, error) {
	if n.attr {
		val, _ := attrValue(n.n.Attr, n.key)
		return html.EscapeString(val), nil
	}
	return n.selection().Html()
}

func (n *Node) selection() *goquery.Selection {
	return goquery.NewDocumentFromNode(n.n).Selection
}

func attrValue(attrs []html.Attribute, key string) (string, bool) {
	for _, a := range attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func deleteAttr(attrs []html.Attribute, key string) []html.Attribute {
	out := attrs[:0]
	for _, a := range attrs {
		if a.Key != key {
			out = append(out, a)
		}
	}
	return out
}
