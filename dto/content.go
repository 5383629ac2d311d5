package dto

import (
	"time"

	"gradpath/models"
)

// ServiceDTO exposes a consulting service to API consumers
// ID is the ObjectID hex string
type ServiceDTO struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Body     string `json:"body"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
	Order    int    `json:"order"`
}

// BlogDTO exposes a blog post to API consumers
// Timestamps of the document itself are hidden; published_at is what readers see.
type BlogDTO struct {
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

// EventDTO exposes an event to API consumers
type EventDTO struct {
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

// NewServiceDTO constructs ServiceDTO from models.Service
func NewServiceDTO(s models.Service) ServiceDTO {
	return ServiceDTO{
		ID:       s.ID.Hex(),
		Slug:     s.Slug,
		Title:    s.Title,
		Summary:  s.Summary,
		Body:     s.Body,
		Category: s.Category,
		ImageURL: s.ImageURL,
		Order:    s.Order,
	}
}

// NewBlogDTO constructs BlogDTO from models.Blog
func NewBlogDTO(b models.Blog) BlogDTO {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return BlogDTO{
		ID:            b.ID.Hex(),
		Slug:          b.Slug,
		Title:         b.Title,
		Excerpt:       b.Excerpt,
		Body:          b.Body,
		BodyFormat:    b.BodyFormat,
		Author:        b.Author,
		Category:      b.Category,
		Tags:          tags,
		CoverImageURL: b.CoverImageURL,
		SourceURL:     b.SourceURL,
		PublishedAt:   b.PublishedAt,
	}
}

// NewEventDTO constructs EventDTO from models.Event
func NewEventDTO(e models.Event) EventDTO {
	return EventDTO{
		ID:              e.ID.Hex(),
		Slug:            e.Slug,
		Title:           e.Title,
		Description:     e.Description,
		Location:        e.Location,
		Category:        e.Category,
		ImageURL:        e.ImageURL,
		RegistrationURL: e.RegistrationURL,
		StartsAt:        e.StartsAt,
		EndsAt:          e.EndsAt,
	}
}
