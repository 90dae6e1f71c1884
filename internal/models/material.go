package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Material is a teacher-published course resource. Only the URL is stored;
// the file itself lives wherever the teacher uploaded it.
type Material struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TeacherID   string             `bson:"teacher_id" json:"teacher_id"`
	SectionID   *string            `bson:"section_id" json:"section_id"`
	Title       string             `bson:"title" json:"title"`
	URL         string             `bson:"url" json:"url"`
	Description *string            `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// MaterialFilter captures the optional material list parameters.
type MaterialFilter struct {
	SectionID string
	TeacherID string
}
