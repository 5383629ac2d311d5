package feeder

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Item is a feed entry reduced to what the blog importer stores.
type Item struct {
	Title       string
	Link        string
	PublishedAt time.Time
	Author      string
	Categories  []string
	Description string
	// Content is the full HTML body when the feed carries one (content:encoded / atom content).
	Content  string
	ImageURL string
}

// Fetcher reads RSS and Atom feeds.
type Fetcher struct {
	client *http.Client
}

// New returns a Fetcher using httpClient, or a client with a 30s timeout when nil.
func New(httpClient *http.Client) *Fetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Fetcher{client: httpClient}
}

// Fetch fetches the feed at feedURL.
// If limit is greater than 0, it returns only the first limit items.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string, limit int) ([]Item, error) {
	fp := gofeed.NewParser()
	fp.Client = f.client

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it == nil || strings.TrimSpace(it.Link) == "" {
			continue
		}
		var published time.Time
		if it.PublishedParsed != nil {
			published = *it.PublishedParsed
		} else if it.UpdatedParsed != nil {
			published = *it.UpdatedParsed
		}

		items = append(items, Item{
			Title:       strings.TrimSpace(it.Title),
			Link:        strings.TrimSpace(it.Link),
			PublishedAt: published,
			Author:      authorName(it, feed),
			Categories:  it.Categories,
			Description: it.Description,
			Content:     it.Content,
			ImageURL:    imageURL(it),
		})
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func authorName(it *gofeed.Item, feed *gofeed.Feed) string {
	for _, p := range it.Authors {
		if p != nil && p.Name != "" {
			return p.Name
		}
	}
	for _, p := range feed.Authors {
		if p != nil && p.Name != "" {
			return p.Name
		}
	}
	return ""
}

func imageURL(it *gofeed.Item) string {
	if it.Image != nil && it.Image.URL != "" {
		return it.Image.URL
	}
	for _, enc := range it.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}
