package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gradpath/models"
)

type EventRepository struct {
	contentCollection[models.Event]
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{contentCollection[models.Event]{
		col: db.Collection("events"),
		sort: bson.D{
			{Key: "starts_at", Value: 1},
			{Key: "_id", Value: 1},
		},
		dateField: "starts_at",
	}}
}

// UpsertBySlug upserts an event identified by its slug.
func (r *EventRepository) UpsertBySlug(ctx context.Context, e *models.Event) (*mongo.UpdateResult, error) {
	touch(&e.CreatedAt, &e.UpdatedAt)
	return r.upsert(ctx, bson.M{"slug": e.Slug}, e.CreatedAt, bson.M{
		"updated_at":       e.UpdatedAt,
		"slug":             e.Slug,
		"title":            e.Title,
		"description":      e.Description,
		"location":         e.Location,
		"category":         e.Category,
		"image_url":        e.ImageURL,
		"registration_url": e.RegistrationURL,
		"starts_at":        e.StartsAt,
		"ends_at":          e.EndsAt,
	})
}
