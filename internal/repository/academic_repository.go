package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eedept/dms-api/internal/models"
)

const (
	levelCollection   = "level"
	sectionCollection = "section"
)

// LevelRepository persists academic level documents.
type LevelRepository struct {
	store DocumentStore
}

// NewLevelRepository constructs the repository.
func NewLevelRepository(store DocumentStore) *LevelRepository {
	return &LevelRepository{store: store}
}

// Create inserts the level and returns the generated id.
func (r *LevelRepository) Create(ctx context.Context, level *models.Level) (string, error) {
	level.CreatedAt = time.Now().UTC()
	return r.store.Insert(ctx, levelCollection, level)
}

// List returns every level.
func (r *LevelRepository) List(ctx context.Context) ([]models.Level, error) {
	var levels []models.Level
	if err := r.store.Find(ctx, levelCollection, bson.M{}, &levels); err != nil {
		return nil, err
	}
	if levels == nil {
		levels = []models.Level{}
	}
	return levels, nil
}

// ExistsByID reports whether a level document with the given id exists.
func (r *LevelRepository) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.store.Exists(ctx, levelCollection, bson.M{"_id": id})
}

// SectionRepository persists section documents.
type SectionRepository struct {
	store DocumentStore
}

// NewSectionRepository constructs the repository.
func NewSectionRepository(store DocumentStore) *SectionRepository {
	return &SectionRepository{store: store}
}

// Create inserts the section and returns the generated id.
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) (string, error) {
	section.CreatedAt = time.Now().UTC()
	return r.store.Insert(ctx, sectionCollection, section)
}

// List returns sections matching the filter.
func (r *SectionRepository) List(ctx context.Context, filter models.SectionFilter) ([]models.Section, error) {
	query := bson.M{}
	if filter.LevelID != "" {
		query["level_id"] = filter.LevelID
	}

	var sections []models.Section
	if err := r.store.Find(ctx, sectionCollection, query, &sections); err != nil {
		return nil, err
	}
	if sections == nil {
		sections = []models.Section{}
	}
	return sections, nil
}

// ExistsByID reports whether a section document with the given id exists.
func (r *SectionRepository) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.store.Exists(ctx, sectionCollection, bson.M{"_id": id})
}
