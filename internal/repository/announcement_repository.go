package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/eedept/dms-api/internal/models"
)

const announcementCollection = "announcement"

// AnnouncementRepository persists announcement documents.
type AnnouncementRepository struct {
	store DocumentStore
}

// NewAnnouncementRepository constructs the repository.
func NewAnnouncementRepository(store DocumentStore) *AnnouncementRepository {
	return &AnnouncementRepository{store: store}
}

// Create inserts the announcement and returns the generated id.
func (r *AnnouncementRepository) Create(ctx context.Context, ann *models.Announcement) (string, error) {
	ann.CreatedAt = time.Now().UTC()
	return r.store.Insert(ctx, announcementCollection, ann)
}

// List returns announcements matching the filter.
func (r *AnnouncementRepository) List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, error) {
	query := bson.M{}
	if filter.Audience != "" {
		query["audience"] = filter.Audience
	}
	if filter.LevelID != "" {
		query["level_id"] = filter.LevelID
	}
	if filter.SectionID != "" {
		query["section_id"] = filter.SectionID
	}

	var anns []models.Announcement
	if err := r.store.Find(ctx, announcementCollection, query, &anns); err != nil {
		return nil, err
	}
	if anns == nil {
		anns = []models.Announcement{}
	}
	return anns, nil
}
