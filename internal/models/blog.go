package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a single post stored in MongoDB.
type Blog struct {
	ID          primitive.ObjectID `json:"_id"         bson:"_id,omitempty"`
	Title       string             `json:"title"       bson:"title"`
	Description string             `json:"description" bson:"description"`
	Image       string             `json:"image"       bson:"image"`
	UserID      string             `json:"userId"      bson:"userId"`
	CreatedAt   time.Time          `json:"createdAt"   bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"   bson:"updatedAt"`
}

// BlogInput carries the client-supplied fields of a new blog.
// A zero CreatedAt means "now".
type BlogInput struct {
	Title       string
	Description string
	CreatedAt   time.Time
}

// BlogPatch lists the fields an owner may change. Nil means unchanged;
// the owning user is never patchable.
type BlogPatch struct {
	Title       *string
	Description *string
	CreatedAt   *time.Time
	Image       *string
}
