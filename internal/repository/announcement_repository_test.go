package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/eedept/dms-api/internal/models"
)

func TestAnnouncementRepositoryListFilter(t *testing.T) {
	store := &fakeDocStore{}
	repo := NewAnnouncementRepository(store)

	_, err := repo.List(context.Background(), models.AnnouncementFilter{
		Audience:  "students",
		LevelID:   "lvl-1",
		SectionID: "sec-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "announcement", store.findColl)
	assert.Equal(t, bson.M{
		"audience":   "students",
		"level_id":   "lvl-1",
		"section_id": "sec-1",
	}, store.findFilter)
}

func TestAnnouncementRepositoryListEmptyResult(t *testing.T) {
	store := &fakeDocStore{}
	repo := NewAnnouncementRepository(store)

	anns, err := repo.List(context.Background(), models.AnnouncementFilter{})
	require.NoError(t, err)

	assert.Equal(t, bson.M{}, store.findFilter)
	assert.NotNil(t, anns)
	assert.Empty(t, anns)
}
