package repositories

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gradpath/models"
)

type BlogRepository struct {
	contentCollection[models.Blog]
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{contentCollection[models.Blog]{
		col: db.Collection("blogs"),
		sort: bson.D{
			{Key: "published_at", Value: -1},
			{Key: "_id", Value: -1},
		},
	}}
}

// UpsertBySlug upserts a blog post identified by its slug.
func (r *BlogRepository) UpsertBySlug(ctx context.Context, b *models.Blog) (*mongo.UpdateResult, error) {
	touch(&b.CreatedAt, &b.UpdatedAt)
	return r.upsert(ctx, bson.M{"slug": b.Slug}, b.CreatedAt, blogFields(b))
}

// UpsertBySourceURL upserts an imported blog post identified by its source_url.
func (r *BlogRepository) UpsertBySourceURL(ctx context.Context, b *models.Blog) (*mongo.UpdateResult, error) {
	touch(&b.CreatedAt, &b.UpdatedAt)
	return r.upsert(ctx, bson.M{"source_url": b.SourceURL}, b.CreatedAt, blogFields(b))
}

// FindBySourceURL finds an imported blog post by its source_url.
func (r *BlogRepository) FindBySourceURL(ctx context.Context, sourceURL string) (*models.Blog, error) {
	if strings.TrimSpace(sourceURL) == "" {
		return nil, ErrNotFound
	}
	return r.findOne(ctx, bson.M{"source_url": sourceURL})
}

func blogFields(b *models.Blog) bson.M {
	set := bson.M{
		"updated_at":      b.UpdatedAt,
		"slug":            b.Slug,
		"title":           b.Title,
		"excerpt":         b.Excerpt,
		"body":            b.Body,
		"body_format":     b.BodyFormat,
		"author":          b.Author,
		"category":        b.Category,
		"tags":            b.Tags,
		"cover_image_url": b.CoverImageURL,
		"published_at":    b.PublishedAt,
	}
	// source_url backs a partial unique index; only imported posts carry it
	if b.SourceURL != "" {
		set["source_url"] = b.SourceURL
	}
	return set
}
