package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/eedept/dms-api/internal/models"
)

func TestMaterialRepositoryListFilter(t *testing.T) {
	store := &fakeDocStore{}
	repo := NewMaterialRepository(store)

	_, err := repo.List(context.Background(), models.MaterialFilter{SectionID: "sec-1", TeacherID: "t-1"})
	require.NoError(t, err)

	assert.Equal(t, "material", store.findColl)
	assert.Equal(t, bson.M{"section_id": "sec-1", "teacher_id": "t-1"}, store.findFilter)
}

func TestTimetableRepositoryListBySection(t *testing.T) {
	store := &fakeDocStore{}
	repo := NewTimetableRepository(store)

	entries, err := repo.ListBySection(context.Background(), "sec-1")
	require.NoError(t, err)

	assert.Equal(t, "timetableentry", store.findColl)
	assert.Equal(t, bson.M{"section_id": "sec-1"}, store.findFilter)
	assert.NotNil(t, entries)
}
