package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradpath/cmd/web/contentclient"
)

func TestBodyMarkdown(t *testing.T) {
	out := string(Body("## Funding\n\nMost **PhD** offers are funded.\n\n<script>alert(1)</script>", contentclient.BodyFormatMarkdown))

	assert.Contains(t, out, `<h2 id="funding">Funding</h2>`)
	assert.Contains(t, out, "<strong>PhD</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestBodyHTMLIsSanitized(t *testing.T) {
	out := string(Body(`<p onclick="x()">Hello <a href="https://example.com">there</a></p><iframe src="https://evil.test"></iframe>`, contentclient.BodyFormatHTML))

	assert.Contains(t, out, "<p>Hello")
	assert.Contains(t, out, "nofollow")
	assert.Contains(t, out, "noreferrer")
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "iframe")
}

func TestUnknownFormatFallsBackToMarkdown(t *testing.T) {
	assert.Contains(t, string(Body("*hi*", "")), "<em>hi</em>")
}

func TestPageURL(t *testing.T) {
	testCases := []struct {
		name    string
		filters map[string]string
		page    int
		want    string
	}{
		{name: "first page without filters", page: 1, want: "/blogs"},
		{name: "later page", page: 3, want: "/blogs?page=3"},
		{name: "filters kept", filters: map[string]string{"tag": "visa", "category": ""}, page: 2, want: "/blogs?page=2&tag=visa"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, PageURL("/blogs", testCase.filters, testCase.page))
		})
	}
}

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"services.tmpl", "blogs.tmpl", "events.tmpl", "service.tmpl", "blog.tmpl", "event.tmpl", "not_found.tmpl", "error.tmpl"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "not_found.tmpl", map[string]any{"Title": "Not found", "Message": "No such post."})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No such post.")
}
