package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomebase/tome/pkg/types"
)

func TestProcess(t *testing.T) {
	p := NewProcessor()
	source := "title: Home\ntags: go, wiki\n\n# Heading\n\nSome *text*."

	html, body, meta, err := p.Process(source)
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Heading</h1>")
	assert.Contains(t, html, "<em>text</em>")
	assert.Equal(t, "# Heading\n\nSome *text*.", body)

	title, ok := meta.Get("title")
	require.True(t, ok)
	assert.Equal(t, "Home", title)
	tags, ok := meta.Get("tags")
	require.True(t, ok)
	assert.Equal(t, "go, wiki", tags)
}

func TestProcessMissingSeparator(t *testing.T) {
	p := NewProcessor()
	_, _, _, err := p.Process("title: Home\nno blank line follows")
	require.ErrorIs(t, err, types.ErrMalformedPage)
}

func TestProcessIsStable(t *testing.T) {
	p := NewProcessor()
	source := "title: Home\ntags: \n\nSee [[Other Page]]."

	html1, body1, _, err := p.Process(source)
	require.NoError(t, err)
	html2, body2, _, err := p.Process(source)
	require.NoError(t, err)

	assert.Equal(t, html1, html2)
	assert.Equal(t, body1, body2)
}

func TestProcessRewritesWikilinks(t *testing.T) {
	p := NewProcessor()
	html, _, _, err := p.Process("title: Home\ntags: \n\nSee [[Other Page|the other page]].")
	require.NoError(t, err)
	assert.Contains(t, html, "<a href='/other_page/'>the other page</a>")
}

func TestProcessFrontMatterStaysOutOfHTML(t *testing.T) {
	p := NewProcessor()
	html, _, _, err := p.Process("title: Secret Title\ntags: \n\nbody text")
	require.NoError(t, err)
	assert.NotContains(t, html, "Secret Title")
}

func TestProcessorHooks(t *testing.T) {
	p := NewProcessor()
	p.UsePre(func(text string) string {
		return "title: Hooked\ntags: \n\n" + text
	})
	p.UsePost(func(html string) string {
		return html + "<!-- post -->"
	})

	html, _, meta, err := p.Process("plain body")
	require.NoError(t, err)

	title, _ := meta.Get("title")
	assert.Equal(t, "Hooked", title)
	assert.Contains(t, html, "<!-- post -->")
}

func TestParseMeta(t *testing.T) {
	t.Run("keys lower-cased in first-seen order", func(t *testing.T) {
		meta := ParseMeta("Title: Home\nTags: go\nAuthor: me")
		assert.Equal(t, []string{"title", "tags", "author"}, meta.Keys())
	})

	t.Run("indented lines continue the previous value", func(t *testing.T) {
		meta := ParseMeta("summary: first line\n    second line\n\ttab line")
		v, ok := meta.Get("summary")
		require.True(t, ok)
		assert.Equal(t, "first line\nsecond line\ntab line", v)
	})

	t.Run("continuation of an empty value", func(t *testing.T) {
		meta := ParseMeta("summary:\n    only line")
		v, _ := meta.Get("summary")
		assert.Equal(t, "only line", v)
	})

	t.Run("lines without a colon are skipped", func(t *testing.T) {
		meta := ParseMeta("no colon here\ntitle: Home")
		assert.Equal(t, []string{"title"}, meta.Keys())
	})

	t.Run("value keeps inner colons", func(t *testing.T) {
		meta := ParseMeta("link: https://example.com/page")
		v, _ := meta.Get("link")
		assert.Equal(t, "https://example.com/page", v)
	})

	t.Run("empty block", func(t *testing.T) {
		meta := ParseMeta("")
		assert.Zero(t, meta.Len())
	})
}
