package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Section is a named group of students inside a level. LevelID is the hex
// form of the parent level's _id; the level must exist when the section is
// created.
type Section struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LevelID   string             `bson:"level_id" json:"level_id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// SectionFilter narrows section listings to a level.
type SectionFilter struct {
	LevelID string
}
