// Package schema describes the structure of every entity for the /schema
// endpoint, consumed by the database viewer and other external tooling. The
// descriptors are hand-maintained next to the model definitions; they carry
// no behavior.
package schema

// Field describes one document field.
type Field struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Enum     []string `json:"enum,omitempty"`
	Default  any      `json:"default,omitempty"`
}

// Entity describes one collection.
type Entity struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// Definitions returns the structural description of all eight entities,
// keyed by collection name.
func Definitions() map[string]Entity {
	return map[string]Entity{
		"user": {
			Title: "User",
			Fields: []Field{
				{Name: "full_name", Type: "string", Required: true},
				{Name: "email", Type: "string", Required: true},
				{Name: "password", Type: "string", Required: true},
				{Name: "role", Type: "string", Required: true, Enum: []string{"admin", "teacher", "student"}},
				{Name: "approved", Type: "boolean", Required: false, Default: false},
				{Name: "section_id", Type: "string", Required: false},
			},
		},
		"level": {
			Title: "Level",
			Fields: []Field{
				{Name: "name", Type: "string", Required: true},
				{Name: "description", Type: "string", Required: false},
			},
		},
		"section": {
			Title: "Section",
			Fields: []Field{
				{Name: "level_id", Type: "string", Required: true},
				{Name: "name", Type: "string", Required: true},
			},
		},
		"timetableentry": {
			Title: "TimetableEntry",
			Fields: []Field{
				{Name: "section_id", Type: "string", Required: true},
				{Name: "day", Type: "string", Required: true, Enum: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}},
				{Name: "start_time", Type: "string", Required: true},
				{Name: "end_time", Type: "string", Required: true},
				{Name: "room", Type: "string", Required: true},
				{Name: "subject", Type: "string", Required: true},
				{Name: "teacher_id", Type: "string", Required: false},
			},
		},
		"announcement": {
			Title: "Announcement",
			Fields: []Field{
				{Name: "title", Type: "string", Required: true},
				{Name: "body", Type: "string", Required: true},
				{Name: "author_id", Type: "string", Required: false},
				{Name: "audience", Type: "string", Required: false, Enum: []string{"all", "admins", "teachers", "students", "level", "section"}, Default: "all"},
				{Name: "level_id", Type: "string", Required: false},
				{Name: "section_id", Type: "string", Required: false},
				{Name: "pinned", Type: "boolean", Required: false, Default: false},
			},
		},
		"material": {
			Title: "Material",
			Fields: []Field{
				{Name: "teacher_id", Type: "string", Required: true},
				{Name: "section_id", Type: "string", Required: false},
				{Name: "title", Type: "string", Required: true},
				{Name: "url", Type: "string", Required: true},
				{Name: "description", Type: "string", Required: false},
			},
		},
		"roombooking": {
			Title: "RoomBooking",
			Fields: []Field{
				{Name: "room", Type: "string", Required: true},
				{Name: "date", Type: "string", Required: true},
				{Name: "start_time", Type: "string", Required: true},
				{Name: "end_time", Type: "string", Required: true},
				{Name: "purpose", Type: "string", Required: false},
				{Name: "requested_by", Type: "string", Required: true},
				{Name: "status", Type: "string", Required: false, Enum: []string{"pending", "approved", "declined"}, Default: "pending"},
			},
		},
		"attendance": {
			Title: "Attendance",
			Fields: []Field{
				{Name: "section_id", Type: "string", Required: true},
				{Name: "timetable_id", Type: "string", Required: false},
				{Name: "date", Type: "string", Required: true},
				{Name: "student_id", Type: "string", Required: true},
				{Name: "present", Type: "boolean", Required: false, Default: true},
			},
		},
	}
}
