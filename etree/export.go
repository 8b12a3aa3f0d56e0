// Package etree reads posts from WordPress eXtended RSS (WXR) exports.
package etree

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/mdport"
)

// Ensure ExportSource implements mdport.Source at compile time.
var _ mdport.Source = (*ExportSource)(nil)

// wpDateFormat is the layout of wp:post_date values.
const wpDateFormat = "2006-01-02 15:04:05"

// ExportSource lists the published posts of a WordPress export file.
// Pages, attachments, drafts and private posts are skipped.
type ExportSource struct {
	path string
}

// NewExportSource creates an ExportSource reading the export at path.
func NewExportSource(path string) *ExportSource {
	return &ExportSource{path: path}
}

// Entries parses the export and returns its published posts in file order.
func (s *ExportSource) Entries(ctx context.Context) ([]*mdport.Entry, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, mdport.Errorf(mdport.ENOTFOUND, "export %q not found", s.path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadExport(ctx, f)
}

// ReadExport parses a WXR document from r.
func ReadExport(ctx context.Context, r io.Reader) ([]*mdport.Entry, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, mdport.Errorf(mdport.EINVALID, "invalid export: %v", err)
	}

	channel := doc.FindElement("./rss/channel")
	if channel == nil {
		return nil, mdport.Errorf(mdport.EINVALID, "invalid export: missing rss channel")
	}

	var entries []*mdport.Entry
	for _, item := range channel.SelectElements("item") {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if childText(item, "wp:post_type") != "post" || childText(item, "wp:status") != "publish" {
			continue
		}

		entry := &mdport.Entry{
			Source: childText(item, "link"),
			Title:  childText(item, "title"),
			Date:   itemDate(item),
			HTML:   childText(item, "content:encoded"),
		}
		if entry.Source == "" {
			entry.Source = "wp:" + childText(item, "wp:post_id")
		}

		for _, cat := range item.SelectElements("category") {
			name := strings.TrimSpace(cat.Text())
			if name == "" {
				continue
			}
			switch cat.SelectAttrValue("domain", "") {
			case "category":
				entry.Categories = append(entry.Categories, name)
			case "post_tag":
				entry.Tags = append(entry.Tags, name)
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// itemDate prefers pubDate and falls back to wp:post_date, which exports
// write even for posts without a valid pubDate.
func itemDate(item *etree.Element) time.Time {
	if d, err := time.Parse(time.RFC1123Z, childText(item, "pubDate")); err == nil {
		return d
	}
	if d, err := time.Parse(wpDateFormat, childText(item, "wp:post_date")); err == nil {
		return d
	}
	return time.Time{}
}

func childText(e *etree.Element, tag string) string {
	child := e.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
