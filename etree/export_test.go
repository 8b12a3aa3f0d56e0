package etree_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/mdport"
	"github.com/fwojciec/mdport/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const export = `<?xml version="1.0" encoding="UTF-8" ?>
<rss version="2.0"
	xmlns:content="http://purl.org/rss/1.0/modules/content/"
	xmlns:wp="http://wordpress.org/export/1.2/">
<channel>
	<title>Garden Log</title>
	<item>
		<title>Winter Notes</title>
		<link>https://garden.example/2019/03/winter-notes/</link>
		<pubDate>Thu, 14 Mar 2019 09:30:00 +0000</pubDate>
		<category domain="category" nicename="vegetables"><![CDATA[Vegetables]]></category>
		<category domain="post_tag" nicename="garlic"><![CDATA[garlic]]></category>
		<content:encoded><![CDATA[<div class="post"><p>Garlic went in <b>late</b>.</p></div>]]></content:encoded>
		<wp:post_id>12</wp:post_id>
		<wp:post_date><![CDATA[2019-03-14 09:30:00]]></wp:post_date>
		<wp:status><![CDATA[publish]]></wp:status>
		<wp:post_type><![CDATA[post]]></wp:post_type>
	</item>
	<item>
		<title>Draft</title>
		<link>https://garden.example/?p=13</link>
		<content:encoded><![CDATA[<p>unfinished</p>]]></content:encoded>
		<wp:post_id>13</wp:post_id>
		<wp:status><![CDATA[draft]]></wp:status>
		<wp:post_type><![CDATA[post]]></wp:post_type>
	</item>
	<item>
		<title>About</title>
		<link>https://garden.example/about/</link>
		<content:encoded><![CDATA[<p>about page</p>]]></content:encoded>
		<wp:post_id>2</wp:post_id>
		<wp:status><![CDATA[publish]]></wp:status>
		<wp:post_type><![CDATA[page]]></wp:post_type>
	</item>
	<item>
		<title>Undated</title>
		<pubDate>not a date</pubDate>
		<content:encoded><![CDATA[<p>spring</p>]]></content:encoded>
		<wp:post_id>14</wp:post_id>
		<wp:post_date><![CDATA[2020-04-01 08:00:00]]></wp:post_date>
		<wp:status><![CDATA[publish]]></wp:status>
		<wp:post_type><![CDATA[post]]></wp:post_type>
	</item>
</channel>
</rss>`

func TestReadExport(t *testing.T) {
	t.Parallel()

	t.Run("reads published posts only", func(t *testing.T) {
		t.Parallel()

		entries, err := etree.ReadExport(context.Background(), strings.NewReader(export))

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Winter Notes", entries[0].Title)
		assert.Equal(t, "Undated", entries[1].Title)
	})

	t.Run("maps item fields", func(t *testing.T) {
		t.Parallel()

		entries, err := etree.ReadExport(context.Background(), strings.NewReader(export))
		require.NoError(t, err)

		e := entries[0]
		assert.Equal(t, "https://garden.example/2019/03/winter-notes/", e.Source)
		assert.Equal(t, `<div class="post"><p>Garlic went in <b>late</b>.</p></div>`, e.HTML)
		assert.True(t, time.Date(2019, 3, 14, 9, 30, 0, 0, time.UTC).Equal(e.Date))
		assert.Equal(t, []string{"Vegetables"}, e.Categories)
		assert.Equal(t, []string{"garlic"}, e.Tags)
	})

	t.Run("falls back to post date and id", func(t *testing.T) {
		t.Parallel()

		entries, err := etree.ReadExport(context.Background(), strings.NewReader(export))
		require.NoError(t, err)

		e := entries[1]
		assert.Equal(t, "wp:14", e.Source)
		assert.True(t, time.Date(2020, 4, 1, 8, 0, 0, 0, time.UTC).Equal(e.Date))
	})

	t.Run("rejects malformed XML", func(t *testing.T) {
		t.Parallel()

		_, err := etree.ReadExport(context.Background(), strings.NewReader("<rss><channel>"))

		require.Error(t, err)
		assert.Equal(t, mdport.EINVALID, mdport.ErrorCode(err))
	})

	t.Run("rejects documents without channel", func(t *testing.T) {
		t.Parallel()

		_, err := etree.ReadExport(context.Background(), strings.NewReader("<feed></feed>"))

		require.Error(t, err)
		assert.Equal(t, mdport.EINVALID, mdport.ErrorCode(err))
	})
}

func TestExportSource_Entries(t *testing.T) {
	t.Parallel()

	t.Run("reads export from disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "export.xml")
		require.NoError(t, os.WriteFile(path, []byte(export), 0644))

		entries, err := etree.NewExportSource(path).Entries(context.Background())

		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("returns ENOTFOUND for missing export", func(t *testing.T) {
		t.Parallel()

		_, err := etree.NewExportSource(filepath.Join(t.TempDir(), "nope.xml")).Entries(context.Background())

		require.Error(t, err)
		assert.Equal(t, mdport.ENOTFOUND, mdport.ErrorCode(err))
	})
}
