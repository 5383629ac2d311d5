package contentclient

import (
	"strings"
	"time"

	"gradpath/models"
	"gradpath/parser"
)

const (
	BodyFormatMarkdown = models.BodyFormatMarkdown
	BodyFormatHTML     = models.BodyFormatHTML

	defaultTitle    = "Untitled"
	defaultCategory = "general"
	defaultLocation = "Online"
	summaryLength   = 180
)

type Service struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Body     string `json:"body"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
	Order    int    `json:"order"`
}

type Blog struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Body          string    `json:"body"`
	BodyFormat    string    `json:"body_format"`
	Author        string    `json:"author"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	CoverImageURL string    `json:"cover_image_url"`
	SourceURL     string    `json:"source_url,omitempty"`
	PublishedAt   time.Time `json:"published_at"`
}

type Event struct {
	ID              string    `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	Category        string    `json:"category"`
	ImageURL        string    `json:"image_url"`
	RegistrationURL string    `json:"registration_url"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
}

type normalizer interface {
	normalize()
}

func normalizeItem(v any) {
	if n, ok := v.(normalizer); ok {
		n.normalize()
	}
}

func (s *Service) normalize() {
	s.Slug = orDefault(s.Slug, s.ID)
	s.Title = orDefault(s.Title, defaultTitle)
	s.Category = orDefault(s.Category, defaultCategory)
	if strings.TrimSpace(s.Summary) == "" {
		s.Summary = parser.Excerpt(s.Body, summaryLength)
	}
}

func (b *Blog) normalize() {
	b.Slug = orDefault(b.Slug, b.ID)
	b.Title = orDefault(b.Title, defaultTitle)
	b.Category = orDefault(b.Category, defaultCategory)
	if b.BodyFormat != BodyFormatHTML {
		b.BodyFormat = BodyFormatMarkdown
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if strings.TrimSpace(b.Excerpt) == "" {
		b.Excerpt = parser.Excerpt(b.Body, summaryLength)
	}
}

func (e *Event) normalize() {
	e.Slug = orDefault(e.Slug, e.ID)
	e.Title = orDefault(e.Title, defaultTitle)
	e.Category = orDefault(e.Category, defaultCategory)
	e.Location = orDefault(e.Location, defaultLocation)
	if e.EndsAt.IsZero() || e.EndsAt.Before(e.StartsAt) {
		e.EndsAt = e.StartsAt
	}
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
