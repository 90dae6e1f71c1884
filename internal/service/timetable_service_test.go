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

type mockTimetableRepo struct {
	created     []*models.TimetableEntry
	listResult  []models.TimetableEntry
	lastSection string
}

func (m *mockTimetableRepo) Create(ctx context.Context, entry *models.TimetableEntry) (string, error) {
	m.created = append(m.created, entry)
	return primitive.NewObjectID().Hex(), nil
}

func (m *mockTimetableRepo) ListBySection(ctx context.Context, sectionID string) ([]models.TimetableEntry, error) {
	m.lastSection = sectionID
	return m.listResult, nil
}

func validTimetableRequest(sectionID string) CreateTimetableRequest {
	return CreateTimetableRequest{
		SectionID: sectionID,
		Day:       models.Monday,
		StartTime: "08:00",
		EndTime:   "09:30",
		Room:      "B-104",
		Subject:   "Signals and Systems",
	}
}

func TestTimetableServiceCreate(t *testing.T) {
	sectionID := primitive.NewObjectID().Hex()
	repo := &mockTimetableRepo{}
	svc := NewTimetableService(repo, &mockSectionLookup{existing: map[string]bool{sectionID: true}}, validator.New(), zap.NewNop())

	id, err := svc.Create(context.Background(), validTimetableRequest(sectionID))
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, repo.created, 1)
	assert.Equal(t, models.Monday, repo.created[0].Day)
}

func TestTimetableServiceCreateUnknownSection(t *testing.T) {
	repo := &mockTimetableRepo{}
	svc := NewTimetableService(repo, &mockSectionLookup{existing: map[string]bool{}}, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), validTimetableRequest(primitive.NewObjectID().Hex()))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrReference.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.created)
}

func TestTimetableServiceCreateBadTime(t *testing.T) {
	sectionID := primitive.NewObjectID().Hex()
	svc := NewTimetableService(&mockTimetableRepo{}, &mockSectionLookup{existing: map[string]bool{sectionID: true}}, validator.New(), zap.NewNop())

	req := validTimetableRequest(sectionID)
	req.StartTime = "8am"
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestTimetableServiceCreateBadDay(t *testing.T) {
	sectionID := primitive.NewObjectID().Hex()
	svc := NewTimetableService(&mockTimetableRepo{}, &mockSectionLookup{existing: map[string]bool{sectionID: true}}, validator.New(), zap.NewNop())

	req := validTimetableRequest(sectionID)
	req.Day = "Monday"
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestTimetableServiceListRequiresSection(t *testing.T) {
	svc := NewTimetableService(&mockTimetableRepo{}, &mockSectionLookup{}, validator.New(), zap.NewNop())

	_, err := svc.ListBySection(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestTimetableServiceList(t *testing.T) {
	repo := &mockTimetableRepo{listResult: []models.TimetableEntry{{SectionID: "sec-1"}}}
	svc := NewTimetableService(repo, &mockSectionLookup{}, validator.New(), zap.NewNop())

	entries, err := svc.ListBySection(context.Background(), "sec-1")
	require.NoError(t, err)
	assert.Equal(t, "sec-1", repo.lastSection)
	assert.Len(t, entries, 1)
}
