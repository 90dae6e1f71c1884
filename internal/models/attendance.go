package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance is a single presence record for a student on a date, optionally
// tied to the timetable slot it was taken in.
type Attendance struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SectionID   string             `bson:"section_id" json:"section_id"`
	TimetableID *string            `bson:"timetable_id" json:"timetable_id"`
	Date        string             `bson:"date" json:"date"`
	StudentID   string             `bson:"student_id" json:"student_id"`
	Present     bool               `bson:"present" json:"present"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// AttendanceFilter captures the optional attendance list parameters.
type AttendanceFilter struct {
	SectionID string
	StudentID string
	Date      string
}
