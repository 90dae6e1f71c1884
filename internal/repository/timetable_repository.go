package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/eedept/dms-api/internal/models"
)

const timetableCollection = "timetableentry"

// TimetableRepository persists weekly timetable slots.
type TimetableRepository struct {
	store DocumentStore
}

// NewTimetableRepository constructs the repository.
func NewTimetableRepository(store DocumentStore) *TimetableRepository {
	return &TimetableRepository{store: store}
}

// Create inserts the entry and returns the generated id.
func (r *TimetableRepository) Create(ctx context.Context, entry *models.TimetableEntry) (string, error) {
	entry.CreatedAt = time.Now().UTC()
	return r.store.Insert(ctx, timetableCollection, entry)
}

// ListBySection returns the timetable of one section.
func (r *TimetableRepository) ListBySection(ctx context.Context, sectionID string) ([]models.TimetableEntry, error) {
	var entries []models.TimetableEntry
	if err := r.store.Find(ctx, timetableCollection, bson.M{"section_id": sectionID}, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.TimetableEntry{}
	}
	return entries, nil
}
