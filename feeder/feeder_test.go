package feeder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:dc="http://purl.org/dc/elements/1.1/">
<channel>
<title>GradPath on Medium</title>
<link>https://medium.example.com/gradpath</link>
<item>
  <title>Funding your PhD in Germany</title>
  <link>https://medium.example.com/p/funding-phd</link>
  <dc:creator>Mina Park</dc:creator>
  <category>funding</category>
  <category>germany</category>
  <pubDate>Mon, 05 Oct 2026 09:00:00 GMT</pubDate>
  <description>Short teaser</description>
  <content:encoded><![CDATA[<p>Most doctoral positions in Germany are salaried.</p><img src="https://cdn.example.com/de.png">]]></content:encoded>
  <enclosure url="https://cdn.example.com/cover.jpg" type="image/jpeg" length="0"/>
</item>
<item>
  <title>Item without link</title>
</item>
<item>
  <title>Interview tips</title>
  <link>https://medium.example.com/p/interview</link>
</item>
</channel>
</rss>`

func newFeedServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch(t *testing.T) {
	srv := newFeedServer(t, rssFeed, http.StatusOK)

	items, err := New(srv.Client()).Fetch(context.Background(), srv.URL, 0)
	require.NoError(t, err)
	require.Len(t, items, 2, "items without a link are skipped")

	first := items[0]
	assert.Equal(t, "Funding your PhD in Germany", first.Title)
	assert.Equal(t, "https://medium.example.com/p/funding-phd", first.Link)
	assert.Equal(t, "Mina Park", first.Author)
	assert.Equal(t, []string{"funding", "germany"}, first.Categories)
	assert.Equal(t, time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC), first.PublishedAt.UTC())
	assert.Contains(t, first.Content, "salaried")
	assert.Equal(t, "https://cdn.example.com/cover.jpg", first.ImageURL)

	assert.True(t, items[1].PublishedAt.IsZero())
}

func TestFetchLimit(t *testing.T) {
	srv := newFeedServer(t, rssFeed, http.StatusOK)

	items, err := New(nil).Fetch(context.Background(), srv.URL, 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestFetchErrors(t *testing.T) {
	notFound := newFeedServer(t, "gone", http.StatusNotFound)
	_, err := New(nil).Fetch(context.Background(), notFound.URL, 0)
	assert.Error(t, err)

	garbage := newFeedServer(t, "this is not xml", http.StatusOK)
	_, err = New(nil).Fetch(context.Background(), garbage.URL, 0)
	assert.Error(t, err)
}
