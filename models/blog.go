package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Body formats of a blog post
const (
	BodyFormatMarkdown = "markdown"
	BodyFormatHTML     = "html"
)

// Blog represents a blog post
// Collection: blogs
//
// Posts written in-house are markdown. Posts pulled in by the importer keep the
// feed's HTML and are identified by SourceURL.
type Blog struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
	Slug          string             `bson:"slug" json:"slug"`
	Title         string             `bson:"title" json:"title"`
	Excerpt       string             `bson:"excerpt" json:"excerpt"`
	Body          string             `bson:"body" json:"body"`
	BodyFormat    string             `bson:"body_format" json:"body_format"`
	Author        string             `bson:"author" json:"author"`
	Category      string             `bson:"category" json:"category"`
	Tags          []string           `bson:"tags" json:"tags"`
	CoverImageURL string             `bson:"cover_image_url" json:"cover_image_url"`
	SourceURL     string             `bson:"source_url,omitempty" json:"source_url,omitempty"`
	PublishedAt   time.Time          `bson:"published_at" json:"published_at"`
}
