package webview_test

import (
	"bytes"
	"testing"

	"github.com/mariotti/bookmark/internal/query"
	"github.com/mariotti/bookmark/internal/webview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_HeadingAndEntries(t *testing.T) {
	var buf bytes.Buffer
	entries := []query.Entry{
		{URL: "http://x", Tags: []string{"a", "b"}},
		{URL: "http://y", Tags: []string{"b"}},
	}

	err := webview.Render(&buf, []string{"a", "b"}, entries)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<h1>a b</h1>")
	assert.Contains(t, html, `<a href="http://x">http://x</a>`)
	assert.Contains(t, html, `<a href="http://y">http://y</a>`)
	assert.Contains(t, html, "<ol>")
}

func TestRender_DefaultTitle(t *testing.T) {
	var buf bytes.Buffer

	err := webview.Render(&buf, nil, nil)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "<h1>bookmarks</h1>")
}

func TestRender_EscapesMarkup(t *testing.T) {
	var buf bytes.Buffer
	entries := []query.Entry{{URL: "http://x", Tags: []string{"<script>"}}}

	err := webview.Render(&buf, nil, entries)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "<script>")
}

func TestOpen_NoBrowserConfigured(t *testing.T) {
	err := webview.Open("", nil, nil)

	assert.ErrorIs(t, err, webview.ErrNoBrowser)
}
