package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eedept/dms-api/internal/models"
)

func TestLevelRepositoryCreate(t *testing.T) {
	store := &fakeDocStore{}
	repo := NewLevelRepository(store)

	level := &models.Level{Name: "L1"}
	_, err := repo.Create(context.Background(), level)
	require.NoError(t, err)

	assert.Equal(t, "level", store.insertColl)
	assert.False(t, level.CreatedAt.IsZero())
}

func TestLevelRepositoryExistsByID(t *testing.T) {
	store := &fakeDocStore{existsResult: true}
	repo := NewLevelRepository(store)

	oid := primitive.NewObjectID()
	exists, err := repo.ExistsByID(context.Background(), oid)
	require.NoError(t, err)

	assert.True(t, exists)
	assert.Equal(t, bson.M{"_id": oid}, store.existsFilter)
}

func TestSectionRepositoryListByLevel(t *testing.T) {
	store := &fakeDocStore{
		onFind: func(dest interface{}) error {
			sections := dest.(*[]models.Section)
			*sections = []models.Section{{LevelID: "lvl-1", Name: "A"}}
			return nil
		},
	}
	repo := NewSectionRepository(store)

	sections, err := repo.List(context.Background(), models.SectionFilter{LevelID: "lvl-1"})
	require.NoError(t, err)

	assert.Equal(t, "section", store.findColl)
	assert.Equal(t, bson.M{"level_id": "lvl-1"}, store.findFilter)
	require.Len(t, sections, 1)
	assert.Equal(t, "A", sections[0].Name)
}

func TestSectionRepositoryListWithoutLevel(t *testing.T) {
	store := &fakeDocStore{}
	repo := NewSectionRepository(store)

	sections, err := repo.List(context.Background(), models.SectionFilter{})
	require.NoError(t, err)

	assert.Equal(t, bson.M{}, store.findFilter)
	assert.NotNil(t, sections)
}
