package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Weekday enumerates timetable days.
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

// TimetableEntry is a recurring slot in a section's weekly timetable.
// Times are HH:MM strings.
type TimetableEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SectionID string             `bson:"section_id" json:"section_id"`
	Day       Weekday            `bson:"day" json:"day"`
	StartTime string             `bson:"start_time" json:"start_time"`
	EndTime   string             `bson:"end_time" json:"end_time"`
	Room      string             `bson:"room" json:"room"`
	Subject   string             `bson:"subject" json:"subject"`
	TeacherID *string            `bson:"teacher_id" json:"teacher_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
