package goldmark_test

import (
	"testing"

	"github.com/fwojciec/mdport"
	"github.com/fwojciec/mdport/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutliner_Outline(t *testing.T) {
	t.Parallel()

	t.Run("extracts H1 heading", func(t *testing.T) {
		t.Parallel()

		sections := goldmark.NewOutliner().Outline("# Introduction\n\nSome content here.")

		require.Len(t, sections, 1)
		assert.Equal(t, mdport.Section{Level: 1, Title: "Introduction", Anchor: "introduction"}, sections[0])
	})

	t.Run("extracts H1 through H6 headings", func(t *testing.T) {
		t.Parallel()

		markdown := "# H1\n## H2\n### H3\n#### H4\n##### H5\n###### H6"

		sections := goldmark.NewOutliner().Outline(markdown)

		require.Len(t, sections, 6)
		for i, s := range sections {
			assert.Equal(t, i+1, s.Level)
		}
	})

	t.Run("reads setext headings", func(t *testing.T) {
		t.Parallel()

		sections := goldmark.NewOutliner().Outline("Moving Day\n==========\n\nText")

		require.Len(t, sections, 1)
		assert.Equal(t, 1, sections[0].Level)
		assert.Equal(t, "Moving Day", sections[0].Title)
	})

	t.Run("strips inline markup from titles", func(t *testing.T) {
		t.Parallel()

		sections := goldmark.NewOutliner().Outline("## Using *the* [`mdport`](https://example.com) tool")

		require.Len(t, sections, 1)
		assert.Equal(t, "Using the mdport tool", sections[0].Title)
		assert.Equal(t, "using-the-mdport-tool", sections[0].Anchor)
	})

	t.Run("handles duplicate headings with numeric suffixes", func(t *testing.T) {
		t.Parallel()

		sections := goldmark.NewOutliner().Outline("## Notes\n\n## Notes\n\n## Notes")

		require.Len(t, sections, 3)
		assert.Equal(t, "notes", sections[0].Anchor)
		assert.Equal(t, "notes-1", sections[1].Anchor)
		assert.Equal(t, "notes-2", sections[2].Anchor)
	})

	t.Run("ignores headings inside code blocks", func(t *testing.T) {
		t.Parallel()

		markdown := "# Real\n\n```sh\n# not a heading\n```\n"

		sections := goldmark.NewOutliner().Outline(markdown)

		require.Len(t, sections, 1)
		assert.Equal(t, "Real", sections[0].Title)
	})

	t.Run("returns nil for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, goldmark.NewOutliner().Outline(""))
	})
}
