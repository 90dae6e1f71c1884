package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/eedept/dms-api/internal/models"
	appErrors "github.com/eedept/dms-api/pkg/errors"
)

type mockBookingRepo struct {
	created    []*models.RoomBooking
	listResult []models.RoomBooking
	lastFilter models.BookingFilter
	matched    int64
	lastStatus models.BookingStatus
}

func (m *mockBookingRepo) Create(ctx context.Context, rb *models.RoomBooking) (string, error) {
	m.created = append(m.created, rb)
	return primitive.NewObjectID().Hex(), nil
}

func (m *mockBookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]models.RoomBooking, error) {
	m.lastFilter = filter
	return m.listResult, nil
}

func (m *mockBookingRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) (int64, error) {
	m.lastStatus = status
	return m.matched, nil
}

func validBookingRequest() CreateBookingRequest {
	return CreateBookingRequest{
		Room:        "Amphi 2",
		Date:        "2025-04-18",
		StartTime:   "14:00",
		EndTime:     "16:00",
		RequestedBy: "teacher-1",
	}
}

func TestBookingServiceCreateDefaultsToPending(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := NewBookingService(repo, validator.New(), zap.NewNop())

	id, err := svc.Create(context.Background(), validBookingRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, repo.created, 1)
	assert.Equal(t, models.BookingPending, repo.created[0].Status)
}

func TestBookingServiceCreateKeepsExplicitStatus(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := NewBookingService(repo, validator.New(), zap.NewNop())

	req := validBookingRequest()
	req.Status = models.BookingApproved
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.BookingApproved, repo.created[0].Status)
}

func TestBookingServiceCreateBadDate(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, validator.New(), zap.NewNop())

	req := validBookingRequest()
	req.Date = "18/04/2025"
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestBookingServiceSetStatus(t *testing.T) {
	repo := &mockBookingRepo{matched: 1}
	svc := NewBookingService(repo, validator.New(), zap.NewNop())

	err := svc.SetStatus(context.Background(), primitive.NewObjectID().Hex(), models.BookingDeclined)
	require.NoError(t, err)
	assert.Equal(t, models.BookingDeclined, repo.lastStatus)
}

func TestBookingServiceSetStatusRejectsUnknownValue(t *testing.T) {
	repo := &mockBookingRepo{matched: 1}
	svc := NewBookingService(repo, validator.New(), zap.NewNop())

	err := svc.SetStatus(context.Background(), primitive.NewObjectID().Hex(), "cancelled")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidStatus.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.lastStatus)
}

func TestBookingServiceSetStatusNotFound(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{matched: 0}, validator.New(), zap.NewNop())

	err := svc.SetStatus(context.Background(), primitive.NewObjectID().Hex(), models.BookingApproved)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestBookingServiceListPassesStatusFilter(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := NewBookingService(repo, validator.New(), zap.NewNop())

	_, err := svc.List(context.Background(), models.BookingFilter{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, "pending", repo.lastFilter.Status)
}
