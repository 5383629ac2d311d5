package repositories

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no document matches an id or slug.
// Malformed ObjectID hex strings are reported as not found as well.
var ErrNotFound = errors.New("document not found")

// ListOptions filters a content listing. Zero values disable a filter.
type ListOptions struct {
	Category string // case-insensitive exact match
	Tag      string // case-insensitive exact match against the tags array
	// Upcoming keeps only documents whose date field is at or after Now.
	// Ignored by collections without a date field.
	Upcoming bool
	Now      time.Time
}

// contentCollection holds the read paths shared by services, blogs and events.
type contentCollection[T any] struct {
	col       *mongo.Collection
	sort      bson.D
	dateField string
}

// List returns every document matching opt in the collection's display order.
// Listings are small and paginated client-side, so no skip/limit is applied.
func (c contentCollection[T]) List(ctx context.Context, opt ListOptions) ([]T, error) {
	cur, err := c.col.Find(ctx, buildListFilter(opt, c.dateField), options.Find().SetSort(c.sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	results := []T{}
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		results = append(results, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// FindByID returns a document by its ObjectID hex
func (c contentCollection[T]) FindByID(ctx context.Context, hexID string) (*T, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrNotFound
	}
	return c.findOne(ctx, bson.M{"_id": id})
}

// FindBySlug returns a document by slug
func (c contentCollection[T]) FindBySlug(ctx context.Context, slug string) (*T, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrNotFound
	}
	return c.findOne(ctx, bson.M{"slug": slug})
}

func (c contentCollection[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	if err := c.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// upsert writes set under filter, keeping created_at from the first insert.
func (c contentCollection[T]) upsert(ctx context.Context, filter bson.M, createdAt time.Time, set bson.M) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": createdAt,
		},
		"$set": set,
	}
	opts := options.Update().SetUpsert(true)
	return c.col.UpdateOne(ctx, filter, update, opts)
}

func buildListFilter(opt ListOptions, dateField string) bson.M {
	filter := bson.M{}
	if v := strings.TrimSpace(opt.Category); v != "" {
		filter["category"] = exactFold(v)
	}
	if v := strings.TrimSpace(opt.Tag); v != "" {
		filter["tags"] = exactFold(v)
	}
	if opt.Upcoming && dateField != "" {
		now := opt.Now
		if now.IsZero() {
			now = time.Now()
		}
		filter[dateField] = bson.M{"$gte": now}
	}
	return filter
}

// exactFold matches v exactly, ignoring case
func exactFold(v string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(v) + "$", Options: "i"}
}

// touch fills CreatedAt/UpdatedAt the way every upsert needs them.
func touch(createdAt *time.Time, updatedAt *time.Time) {
	now := time.Now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}
