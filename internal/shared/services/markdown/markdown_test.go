package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewService()

	html, err := svc.ToHTMLSanitized("# Heading\n\nSome **bold** text")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestToHTMLSanitized_StripsScripts(t *testing.T) {
	svc := NewService()

	html, err := svc.ToHTMLSanitized(`Hello <script>alert("xss")</script> <img src=x onerror=alert(1)>`)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script")
	assert.NotContains(t, html, "onerror")
	assert.Contains(t, html, "Hello")
}

func TestToHTML_GFMTables(t *testing.T) {
	svc := NewService()

	html, err := svc.ToHTML("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)
	assert.Contains(t, html, "<table>")
}

func TestSanitize_AllowsUGCMarkup(t *testing.T) {
	svc := NewService()

	out := svc.Sanitize(`<p>fine</p><iframe src="https://evil"></iframe>`)
	assert.Contains(t, out, "<p>fine</p>")
	assert.NotContains(t, out, "iframe")
}
