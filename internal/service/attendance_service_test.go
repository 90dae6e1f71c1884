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

type mockAttendanceRepo struct {
	created    []*models.Attendance
	listResult []models.Attendance
	lastFilter models.AttendanceFilter
}

func (m *mockAttendanceRepo) Create(ctx context.Context, a *models.Attendance) (string, error) {
	m.created = append(m.created, a)
	return primitive.NewObjectID().Hex(), nil
}

func (m *mockAttendanceRepo) List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	m.lastFilter = filter
	return m.listResult, nil
}

func TestAttendanceServiceCreateDefaultsPresent(t *testing.T) {
	repo := &mockAttendanceRepo{}
	svc := NewAttendanceService(repo, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateAttendanceRequest{
		SectionID: "sec-1",
		Date:      "2025-03-10",
		StudentID: "stu-1",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.True(t, repo.created[0].Present)
}

func TestAttendanceServiceCreateExplicitAbsent(t *testing.T) {
	repo := &mockAttendanceRepo{}
	svc := NewAttendanceService(repo, validator.New(), zap.NewNop())

	present := false
	_, err := svc.Create(context.Background(), CreateAttendanceRequest{
		SectionID: "sec-1",
		Date:      "2025-03-10",
		StudentID: "stu-1",
		Present:   &present,
	})
	require.NoError(t, err)
	assert.False(t, repo.created[0].Present)
}

func TestAttendanceServiceCreateBadDate(t *testing.T) {
	svc := NewAttendanceService(&mockAttendanceRepo{}, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateAttendanceRequest{
		SectionID: "sec-1",
		Date:      "10-03-2025",
		StudentID: "stu-1",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAttendanceServiceListPassesFilter(t *testing.T) {
	repo := &mockAttendanceRepo{}
	svc := NewAttendanceService(repo, validator.New(), zap.NewNop())

	_, err := svc.List(context.Background(), models.AttendanceFilter{SectionID: "sec-1", Date: "2025-03-10"})
	require.NoError(t, err)
	assert.Equal(t, "sec-1", repo.lastFilter.SectionID)
	assert.Equal(t, "2025-03-10", repo.lastFilter.Date)
}
