package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/eedept/dms-api/internal/models"
)

const attendanceCollection = "attendance"

// AttendanceRepository persists presence records.
type AttendanceRepository struct {
	store DocumentStore
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(store DocumentStore) *AttendanceRepository {
	return &AttendanceRepository{store: store}
}

// Create inserts the record and returns the generated id.
func (r *AttendanceRepository) Create(ctx context.Context, a *models.Attendance) (string, error) {
	a.CreatedAt = time.Now().UTC()
	return r.store.Insert(ctx, attendanceCollection, a)
}

// List returns attendance records matching the filter.
func (r *AttendanceRepository) List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	query := bson.M{}
	if filter.SectionID != "" {
		query["section_id"] = filter.SectionID
	}
	if filter.StudentID != "" {
		query["student_id"] = filter.StudentID
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	}

	var records []models.Attendance
	if err := r.store.Find(ctx, attendanceCollection, query, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.Attendance{}
	}
	return records, nil
}
