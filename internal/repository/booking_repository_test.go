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

func TestBookingRepositoryListByStatus(t *testing.T) {
	store := &fakeDocStore{}
	repo := NewBookingRepository(store)

	_, err := repo.List(context.Background(), models.BookingFilter{Status: "pending"})
	require.NoError(t, err)

	assert.Equal(t, "roombooking", store.findColl)
	assert.Equal(t, bson.M{"status": "pending"}, store.findFilter)
}

func TestBookingRepositorySetStatus(t *testing.T) {
	store := &fakeDocStore{updateMatched: 0}
	repo := NewBookingRepository(store)

	oid := primitive.NewObjectID()
	matched, err := repo.SetStatus(context.Background(), oid, models.BookingApproved)
	require.NoError(t, err)

	assert.Equal(t, int64(0), matched)
	assert.Equal(t, bson.M{"status": models.BookingApproved}, store.updateSet)
}
