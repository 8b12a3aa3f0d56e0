// Package goldmark implements mdport.Outliner by walking a goldmark AST.
package goldmark

import (
	"strconv"
	"strings"

	"github.com/fwojciec/mdport"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Ensure Outliner implements mdport.Outliner at compile time.
var _ mdport.Outliner = (*Outliner)(nil)

// Outliner lists markdown headings. Headings inside code blocks are not
// headings in the AST, so they are never reported.
type Outliner struct {
	md goldmark.Markdown
}

// NewOutliner creates a new Outliner with CommonMark parsing.
func NewOutliner() *Outliner {
	return &Outliner{md: goldmark.New()}
}

// Outline parses markdown and returns all headings (H1-H6).
func (o *Outliner) Outline(markdown string) []mdport.Section {
	if markdown == "" {
		return nil
	}

	src := []byte(markdown)
	doc := o.md.Parser().Parse(text.NewReader(src))

	var sections []mdport.Section
	anchorCounts := make(map[string]int)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		title := strings.TrimSpace(headingText(heading, src))
		baseAnchor := mdport.Slugify(title)

		anchor := baseAnchor
		if count, exists := anchorCounts[baseAnchor]; exists {
			anchor = baseAnchor + "-" + strconv.Itoa(count)
			anchorCounts[baseAnchor]++
		} else {
			anchorCounts[baseAnchor] = 1
		}

		sections = append(sections, mdport.Section{
			Level:  heading.Level,
			Title:  title,
			Anchor: anchor,
		})
		return ast.WalkSkipChildren, nil
	})

	return sections
}

// headingText concatenates the text segments below a heading, dropping
// emphasis and link markup.
func headingText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		case *ast.CodeSpan:
			for gc := t.FirstChild(); gc != nil; gc = gc.NextSibling() {
				if seg, ok := gc.(*ast.Text); ok {
					sb.Write(seg.Segment.Value(src))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
