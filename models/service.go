package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a consulting offer shown on the services page
// Collection: services
type Service struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	Slug      string             `bson:"slug" json:"slug"`
	Title     string             `bson:"title" json:"title"`
	Summary   string             `bson:"summary" json:"summary"`
	Body      string             `bson:"body" json:"body"`
	Category  string             `bson:"category" json:"category"`
	ImageURL  string             `bson:"image_url" json:"image_url"`
	// Order sorts services ascending; ties fall back to title
	Order int `bson:"order" json:"order"`
}
