package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"gradpath/models"
	"gradpath/parser"
)

const excerptLength = 180

var slugPattern = regexp.MustCompile(`^[\p{Ll}\p{Lo}0-9]+(-[\p{Ll}\p{Lo}0-9]+)*$`)

// ContentFile is the layout of a seed file such as content/seed.yaml.
type ContentFile struct {
	Services []ServiceEntry `yaml:"services" validate:"unique=Slug,dive"`
	Blogs    []BlogEntry    `yaml:"blogs" validate:"unique=Slug,dive"`
	Events   []EventEntry   `yaml:"events" validate:"unique=Slug,dive"`
}

type ServiceEntry struct {
	Slug     string `yaml:"slug" validate:"required,slug"`
	Title    string `yaml:"title" validate:"required"`
	Summary  string `yaml:"summary"`
	Body     string `yaml:"body"`
	Category string `yaml:"category"`
	ImageURL string `yaml:"image_url" validate:"omitempty,url"`
	Order    int    `yaml:"order"`
}

type BlogEntry struct {
	Slug          string    `yaml:"slug" validate:"required,slug"`
	Title         string    `yaml:"title" validate:"required"`
	Excerpt       string    `yaml:"excerpt"`
	Body          string    `yaml:"body" validate:"required"`
	BodyFormat    string    `yaml:"body_format" validate:"omitempty,oneof=markdown html"`
	Author        string    `yaml:"author"`
	Category      string    `yaml:"category"`
	Tags          []string  `yaml:"tags"`
	CoverImageURL string    `yaml:"cover_image_url" validate:"omitempty,url"`
	PublishedAt   time.Time `yaml:"published_at"`
}

type EventEntry struct {
	Slug            string    `yaml:"slug" validate:"required,slug"`
	Title           string    `yaml:"title" validate:"required"`
	Description     string    `yaml:"description"`
	Location        string    `yaml:"location"`
	Category        string    `yaml:"category"`
	ImageURL        string    `yaml:"image_url" validate:"omitempty,url"`
	RegistrationURL string    `yaml:"registration_url" validate:"omitempty,url"`
	StartsAt        time.Time `yaml:"starts_at"`
	EndsAt          time.Time `yaml:"ends_at"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return v
}

// LoadContentFile reads and validates a seed file.
func LoadContentFile(path string) (*ContentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseContent(data)
}

// ParseContent decodes and validates a seed document.
func ParseContent(data []byte) (*ContentFile, error) {
	var f ContentFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seed: decode yaml: %w", err)
	}
	if err := newValidator().Struct(&f); err != nil {
		return nil, fmt.Errorf("seed: validation error: %w", err)
	}
	for _, e := range f.Events {
		if e.StartsAt.IsZero() {
			return nil, fmt.Errorf("seed: event %q: starts_at is required", e.Slug)
		}
		if !e.EndsAt.IsZero() && e.EndsAt.Before(e.StartsAt) {
			return nil, fmt.Errorf("seed: event %q: ends_at is before starts_at", e.Slug)
		}
	}
	return &f, nil
}

func (e ServiceEntry) Model() *models.Service {
	summary := e.Summary
	if summary == "" {
		summary = parser.Excerpt(e.Body, excerptLength)
	}
	return &models.Service{
		Slug:     e.Slug,
		Title:    e.Title,
		Summary:  summary,
		Body:     e.Body,
		Category: orDefault(e.Category, "general"),
		ImageURL: e.ImageURL,
		Order:    e.Order,
	}
}

func (e BlogEntry) Model(now time.Time) *models.Blog {
	excerpt := e.Excerpt
	if excerpt == "" {
		excerpt = parser.Excerpt(e.Body, excerptLength)
	}
	tags := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, strings.ToLower(t))
		}
	}
	published := e.PublishedAt
	if published.IsZero() {
		published = now
	}
	return &models.Blog{
		Slug:          e.Slug,
		Title:         e.Title,
		Excerpt:       excerpt,
		Body:          e.Body,
		BodyFormat:    orDefault(e.BodyFormat, models.BodyFormatMarkdown),
		Author:        e.Author,
		Category:      orDefault(e.Category, "general"),
		Tags:          tags,
		CoverImageURL: e.CoverImageURL,
		PublishedAt:   published.UTC(),
	}
}

func (e EventEntry) Model() *models.Event {
	ends := e.EndsAt
	if ends.IsZero() {
		ends = e.StartsAt
	}
	return &models.Event{
		Slug:            e.Slug,
		Title:           e.Title,
		Description:     e.Description,
		Location:        orDefault(e.Location, "Online"),
		Category:        orDefault(e.Category, "general"),
		ImageURL:        e.ImageURL,
		RegistrationURL: e.RegistrationURL,
		StartsAt:        e.StartsAt.UTC(),
		EndsAt:          ends.UTC(),
	}
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
