package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/eedept/dms-api/internal/models"
)

const materialCollection = "material"

// MaterialRepository persists course material documents.
type MaterialRepository struct {
	store DocumentStore
}

// NewMaterialRepository constructs the repository.
func NewMaterialRepository(store DocumentStore) *MaterialRepository {
	return &MaterialRepository{store: store}
}

// Create inserts the material and returns the generated id.
func (r *MaterialRepository) Create(ctx context.Context, mat *models.Material) (string, error) {
	mat.CreatedAt = time.Now().UTC()
	return r.store.Insert(ctx, materialCollection, mat)
}

// List returns materials matching the filter.
func (r *MaterialRepository) List(ctx context.Context, filter models.MaterialFilter) ([]models.Material, error) {
	query := bson.M{}
	if filter.SectionID != "" {
		query["section_id"] = filter.SectionID
	}
	if filter.TeacherID != "" {
		query["teacher_id"] = filter.TeacherID
	}

	var mats []models.Material
	if err := r.store.Find(ctx, materialCollection, query, &mats); err != nil {
		return nil, err
	}
	if mats == nil {
		mats = []models.Material{}
	}
	return mats, nil
}
