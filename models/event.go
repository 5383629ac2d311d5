package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a webinar, info session or fair the consultancy runs or attends
// Collection: events
type Event struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
	Slug            string             `bson:"slug" json:"slug"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	Location        string             `bson:"location" json:"location"`
	Category        string             `bson:"category" json:"category"`
	ImageURL        string             `bson:"image_url" json:"image_url"`
	RegistrationURL string             `bson:"registration_url" json:"registration_url"`
	StartsAt        time.Time          `bson:"starts_at" json:"starts_at"`
	EndsAt          time.Time          `bson:"ends_at" json:"ends_at"`
}
