package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audience scopes who an announcement is aimed at. The level and section
// audiences are narrowed further by LevelID/SectionID, which are stored but
// not validated against the referenced collections.
type Audience string

const (
	AudienceAll      Audience = "all"
	AudienceAdmins   Audience = "admins"
	AudienceTeachers Audience = "teachers"
	AudienceStudents Audience = "students"
	AudienceLevel    Audience = "level"
	AudienceSection  Audience = "section"
)

// Announcement is a department-wide or scoped notice.
type Announcement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Body      string             `bson:"body" json:"body"`
	AuthorID  *string            `bson:"author_id" json:"author_id"`
	Audience  Audience           `bson:"audience" json:"audience"`
	LevelID   *string            `bson:"level_id" json:"level_id"`
	SectionID *string            `bson:"section_id" json:"section_id"`
	Pinned    bool               `bson:"pinned" json:"pinned"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// AnnouncementFilter captures the optional announcement list parameters.
type AnnouncementFilter struct {
	Audience  string
	LevelID   string
	SectionID string
}
