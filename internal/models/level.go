package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Level is an academic level (e.g. first-year licence, Master 1).
type Level struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description *string            `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
