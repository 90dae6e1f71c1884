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

type mockUserRepo struct {
	created      []*models.User
	emails       map[string]bool
	listResult   []models.User
	listErr      error
	lastFilter   models.UserFilter
	matchApprove int64
	matchSection int64
	lastApproved bool
	lastSection  string
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) (string, error) {
	m.created = append(m.created, user)
	return primitive.NewObjectID().Hex(), nil
}

func (m *mockUserRepo) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	m.lastFilter = filter
	return m.listResult, m.listErr
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.emails[email], nil
}

func (m *mockUserRepo) SetApproved(ctx context.Context, id primitive.ObjectID, approved bool) (int64, error) {
	m.lastApproved = approved
	return m.matchApprove, nil
}

func (m *mockUserRepo) SetSection(ctx context.Context, id primitive.ObjectID, sectionID string) (int64, error) {
	m.lastSection = sectionID
	return m.matchSection, nil
}

type mockSectionLookup struct {
	existing map[string]bool
}

func (m *mockSectionLookup) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return m.existing[id.Hex()], nil
}

func TestUserServiceRegister(t *testing.T) {
	repo := &mockUserRepo{emails: map[string]bool{}}
	svc := NewUserService(repo, &mockSectionLookup{}, validator.New(), zap.NewNop())

	id, err := svc.Register(context.Background(), RegisterUserRequest{
		FullName: "Sara B",
		Email:    "sara@example.com",
		Password: "secret",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, repo.created, 1)
	assert.False(t, repo.created[0].Approved)
}

func TestUserServiceRegisterDuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{emails: map[string]bool{"sara@example.com": true}}
	svc := NewUserService(repo, &mockSectionLookup{}, validator.New(), zap.NewNop())

	_, err := svc.Register(context.Background(), RegisterUserRequest{
		FullName: "Sara B",
		Email:    "sara@example.com",
		Password: "secret",
		Role:     models.RoleStudent,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicateEmail.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.created)
}

func TestUserServiceRegisterInvalidRole(t *testing.T) {
	svc := NewUserService(&mockUserRepo{emails: map[string]bool{}}, &mockSectionLookup{}, validator.New(), zap.NewNop())

	_, err := svc.Register(context.Background(), RegisterUserRequest{
		FullName: "Sara B",
		Email:    "sara@example.com",
		Password: "secret",
		Role:     "director",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestUserServiceListPassesFilter(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo, &mockSectionLookup{}, validator.New(), zap.NewNop())

	role := models.RoleTeacher
	_, err := svc.List(context.Background(), models.UserFilter{Role: &role})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.Role)
	assert.Equal(t, models.RoleTeacher, *repo.lastFilter.Role)
}

func TestUserServiceApprove(t *testing.T) {
	repo := &mockUserRepo{matchApprove: 1}
	svc := NewUserService(repo, &mockSectionLookup{}, validator.New(), zap.NewNop())

	err := svc.Approve(context.Background(), primitive.NewObjectID().Hex(), true)
	require.NoError(t, err)
	assert.True(t, repo.lastApproved)
}

func TestUserServiceApproveInvalidID(t *testing.T) {
	svc := NewUserService(&mockUserRepo{}, &mockSectionLookup{}, validator.New(), zap.NewNop())

	err := svc.Approve(context.Background(), "not-a-hex-id", true)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidID.Code, appErrors.FromError(err).Code)
}

func TestUserServiceApproveNotFound(t *testing.T) {
	svc := NewUserService(&mockUserRepo{matchApprove: 0}, &mockSectionLookup{}, validator.New(), zap.NewNop())

	err := svc.Approve(context.Background(), primitive.NewObjectID().Hex(), false)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestUserServiceAssignSection(t *testing.T) {
	sectionID := primitive.NewObjectID().Hex()
	repo := &mockUserRepo{matchSection: 1}
	svc := NewUserService(repo, &mockSectionLookup{existing: map[string]bool{sectionID: true}}, validator.New(), zap.NewNop())

	err := svc.AssignSection(context.Background(), primitive.NewObjectID().Hex(), sectionID)
	require.NoError(t, err)
	assert.Equal(t, sectionID, repo.lastSection)
}

func TestUserServiceAssignSectionUnknownSection(t *testing.T) {
	repo := &mockUserRepo{matchSection: 1}
	svc := NewUserService(repo, &mockSectionLookup{existing: map[string]bool{}}, validator.New(), zap.NewNop())

	err := svc.AssignSection(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrReference.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.lastSection)
}

func TestUserServiceAssignSectionUserNotFound(t *testing.T) {
	sectionID := primitive.NewObjectID().Hex()
	repo := &mockUserRepo{matchSection: 0}
	svc := NewUserService(repo, &mockSectionLookup{existing: map[string]bool{sectionID: true}}, validator.New(), zap.NewNop())

	err := svc.AssignSection(context.Background(), primitive.NewObjectID().Hex(), sectionID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
