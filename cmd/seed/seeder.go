package main

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"gradpath/cmd/internal/logger"
	"gradpath/models"
)

type ServiceStore interface {
	UpsertBySlug(ctx context.Context, s *models.Service) (*mongo.UpdateResult, error)
}

type BlogStore interface {
	UpsertBySlug(ctx context.Context, b *models.Blog) (*mongo.UpdateResult, error)
}

type EventStore interface {
	UpsertBySlug(ctx context.Context, e *models.Event) (*mongo.UpdateResult, error)
}

// SeedStats counts documents per collection. Inserted and Updated split each total.
type SeedStats struct {
	Inserted int
	Updated  int
}

// Seeder upserts a validated ContentFile into the content collections.
type Seeder struct {
	services ServiceStore
	blogs    BlogStore
	events   EventStore
	nowFunc  func() time.Time
}

func NewSeeder(services ServiceStore, blogs BlogStore, events EventStore) *Seeder {
	return &Seeder{
		services: services,
		blogs:    blogs,
		events:   events,
		nowFunc:  func() time.Time { return time.Now().UTC() },
	}
}

// Apply upserts every entry by slug and stops at the first failure.
func (s *Seeder) Apply(ctx context.Context, f *ContentFile) (SeedStats, error) {
	var stats SeedStats
	count := func(res *mongo.UpdateResult) {
		if res != nil && res.UpsertedCount > 0 {
			stats.Inserted++
		} else {
			stats.Updated++
		}
	}

	for _, e := range f.Services {
		res, err := s.services.UpsertBySlug(ctx, e.Model())
		if err != nil {
			return stats, fmt.Errorf("seed service %q: %w", e.Slug, err)
		}
		count(res)
	}

	now := s.nowFunc()
	for _, e := range f.Blogs {
		res, err := s.blogs.UpsertBySlug(ctx, e.Model(now))
		if err != nil {
			return stats, fmt.Errorf("seed blog %q: %w", e.Slug, err)
		}
		count(res)
	}

	for _, e := range f.Events {
		res, err := s.events.UpsertBySlug(ctx, e.Model())
		if err != nil {
			return stats, fmt.Errorf("seed event %q: %w", e.Slug, err)
		}
		count(res)
	}

	logger.InfoWithFields("seed applied", logger.Fields{
		"services": len(f.Services),
		"blogs":    len(f.Blogs),
		"events":   len(f.Events),
		"inserted": stats.Inserted,
		"updated":  stats.Updated,
	})
	return stats, nil
}
