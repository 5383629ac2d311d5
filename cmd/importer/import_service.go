package main

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"gradpath/cmd/internal/logger"
	"gradpath/config"
	"gradpath/feeder"
	"gradpath/models"
	"gradpath/parser"
	"gradpath/repositories"
)

const excerptLength = 180

// FeedFetcher reads one feed.
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string, limit int) ([]feeder.Item, error)
}

// BlogStore is the part of the blog repository the importer writes through.
type BlogStore interface {
	FindBySourceURL(ctx context.Context, sourceURL string) (*models.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*models.Blog, error)
	UpsertBySourceURL(ctx context.Context, b *models.Blog) (*mongo.UpdateResult, error)
}

// ImportStats summarizes one run.
type ImportStats struct {
	Feeds   int
	Fetched int
	Created int
	Updated int
	Failed  int
}

// ImportService imports RSS/Atom feed items into the blogs collection.
type ImportService struct {
	fetcher   FeedFetcher
	blogs     BlogStore
	feeds     []config.FeedSource
	batchSize int
}

func NewImportService(fetcher FeedFetcher, blogs BlogStore, cfg config.ImporterConfig) *ImportService {
	return &ImportService{
		fetcher:   fetcher,
		blogs:     blogs,
		feeds:     cfg.Feeds,
		batchSize: cfg.FetchBatchSize,
	}
}

// RunOnce imports every configured feed. A failing feed or item is logged and skipped;
// the returned error is non-nil only when ctx ends the run early.
func (s *ImportService) RunOnce(ctx context.Context) (ImportStats, error) {
	var stats ImportStats
	if len(s.feeds) == 0 {
		logger.WarnWithFields("no feeds configured", logger.Fields{"key": "importer.feeds"})
		return stats, nil
	}

	for _, feed := range s.feeds {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Feeds++

		items, err := s.fetcher.Fetch(ctx, feed.RSSURL, s.batchSize)
		if err != nil {
			stats.Failed++
			logger.ErrorWithFields("failed to fetch feed", logger.Fields{
				"feed":  feed.Name,
				"url":   feed.RSSURL,
				"error": err.Error(),
			})
			continue
		}
		stats.Fetched += len(items)

		for _, item := range items {
			created, err := s.importItem(ctx, feed, item)
			if err != nil {
				stats.Failed++
				logger.ErrorWithFields("failed to import feed item", logger.Fields{
					"feed":  feed.Name,
					"link":  item.Link,
					"error": err.Error(),
				})
				continue
			}
			if created {
				stats.Created++
			} else {
				stats.Updated++
			}
		}
	}

	logger.InfoWithFields("import finished", logger.Fields{
		"feeds":   stats.Feeds,
		"fetched": stats.Fetched,
		"created": stats.Created,
		"updated": stats.Updated,
		"failed":  stats.Failed,
	})
	return stats, nil
}

// importItem upserts one item and reports whether it was new.
func (s *ImportService) importItem(ctx context.Context, feed config.FeedSource, item feeder.Item) (bool, error) {
	existing, err := s.blogs.FindBySourceURL(ctx, item.Link)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return false, err
	}

	b := buildBlog(feed, item)
	if existing != nil {
		b.Slug = existing.Slug
		b.CreatedAt = existing.CreatedAt
	} else {
		slug, err := s.uniqueSlug(ctx, b.Title, item.Link)
		if err != nil {
			return false, err
		}
		b.Slug = slug
	}

	if _, err := s.blogs.UpsertBySourceURL(ctx, b); err != nil {
		return false, err
	}
	return existing == nil, nil
}

// uniqueSlug slugifies title, suffixing a hash of link when the slug is taken.
func (s *ImportService) uniqueSlug(ctx context.Context, title, link string) (string, error) {
	sum := sha1.Sum([]byte(link))
	suffix := hex.EncodeToString(sum[:])[:8]

	base := parser.Slugify(title)
	if base == "" {
		return "post-" + suffix, nil
	}
	_, err := s.blogs.FindBySlug(ctx, base)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return base, nil
	case err != nil:
		return "", err
	}
	return base + "-" + suffix, nil
}

// buildBlog maps a feed item onto a blog post. Slug is left for the caller.
func buildBlog(feed config.FeedSource, item feeder.Item) *models.Blog {
	body := item.Content
	if strings.TrimSpace(body) == "" {
		body = item.Description
	}

	b := &models.Blog{
		Title:         item.Title,
		Body:          body,
		BodyFormat:    models.BodyFormatHTML,
		Author:        firstNonEmpty(item.Author, feed.Author, feed.Name),
		Category:      firstNonEmpty(feed.Category, "general"),
		Tags:          normalizeTags(item.Categories),
		CoverImageURL: item.ImageURL,
		SourceURL:     item.Link,
		PublishedAt:   item.PublishedAt,
	}
	if b.PublishedAt.IsZero() {
		b.PublishedAt = time.Now().UTC()
	}

	if article, err := parser.ExtractArticle(body, item.Link); err == nil {
		if b.Title == "" {
			b.Title = article.Title
		}
		if b.CoverImageURL == "" {
			b.CoverImageURL = article.TopImage
		}
	}
	if b.CoverImageURL == "" {
		b.CoverImageURL = parser.FirstImage(body, item.Link)
	}
	// the teaser in description is often a truncated copy of the body with markup
	b.Excerpt = parser.Excerpt(firstNonEmpty(item.Description, body), excerptLength)
	return b
}

func normalizeTags(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]struct{}{}
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
