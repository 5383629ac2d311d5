package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gradpath/models"
)

type ServiceRepository struct {
	contentCollection[models.Service]
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{contentCollection[models.Service]{
		col: db.Collection("services"),
		sort: bson.D{
			{Key: "order", Value: 1},
			{Key: "title", Value: 1},
		},
	}}
}

// UpsertBySlug upserts a service identified by its slug.
func (r *ServiceRepository) UpsertBySlug(ctx context.Context, s *models.Service) (*mongo.UpdateResult, error) {
	touch(&s.CreatedAt, &s.UpdatedAt)
	return r.upsert(ctx, bson.M{"slug": s.Slug}, s.CreatedAt, bson.M{
		"updated_at": s.UpdatedAt,
		"slug":       s.Slug,
		"title":      s.Title,
		"summary":    s.Summary,
		"body":       s.Body,
		"category":   s.Category,
		"image_url":  s.ImageURL,
		"order":      s.Order,
	})
}
