package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/eedept/dms-api/internal/models"
	"github.com/eedept/dms-api/internal/store"
	appErrors "github.com/eedept/dms-api/pkg/errors"
)

type userRepository interface {
	Create(ctx context.Context, user *models.User) (string, error)
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	SetApproved(ctx context.Context, id primitive.ObjectID, approved bool) (int64, error)
	SetSection(ctx context.Context, id primitive.ObjectID, sectionID string) (int64, error)
}

type sectionLookup interface {
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// RegisterUserRequest is the payload of POST /auth/register.
type RegisterUserRequest struct {
	FullName  string          `json:"full_name" validate:"required"`
	Email     string          `json:"email" validate:"required,email"`
	Password  string          `json:"password" validate:"required"`
	Role      models.UserRole `json:"role" validate:"required,oneof=admin teacher student"`
	Approved  bool            `json:"approved"`
	SectionID *string         `json:"section_id"`
}

// UserService handles registration and the two account patch operations.
type UserService struct {
	repo      userRepository
	sections  sectionLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService creates an instance of UserService.
func NewUserService(repo userRepository, sections sectionLookup, validate *validator.Validate, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &UserService{repo: repo, sections: sections, validator: validate, logger: logger}
}

// Register creates an account after a best-effort email uniqueness check.
// The check is read-then-write: two concurrent registrations with the same
// email can both pass it, so uniqueness is not guaranteed under races.
func (s *UserService) Register(ctx context.Context, req RegisterUserRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid register payload")
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check email uniqueness")
	}
	if exists {
		return "", appErrors.ErrDuplicateEmail
	}

	user := &models.User{
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		Approved:  req.Approved,
		SectionID: req.SectionID,
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register user")
	}

	s.logger.Info("user registered", zap.String("id", id), zap.String("role", string(user.Role)))
	return id, nil
}

// List returns users matching the filter.
func (s *UserService) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	users, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	return users, nil
}

// Approve sets the approved flag on the identified user. A zero matched
// count from the update is the not-found signal.
func (s *UserService) Approve(ctx context.Context, userID string, approved bool) error {
	oid, err := store.ParseID(userID)
	if err != nil {
		return err
	}

	matched, err := s.repo.SetApproved(ctx, oid, approved)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update approval")
	}
	if matched == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	return nil
}

// AssignSection checks the section exists, then stores its id on the user.
func (s *UserService) AssignSection(ctx context.Context, userID, sectionID string) error {
	sectionOID, err := store.ParseID(sectionID)
	if err != nil {
		return err
	}

	exists, err := s.sections.ExistsByID(ctx, sectionOID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check section")
	}
	if !exists {
		return appErrors.Clone(appErrors.ErrReference, "section not found")
	}

	userOID, err := store.ParseID(userID)
	if err != nil {
		return err
	}

	matched, err := s.repo.SetSection(ctx, userOID, sectionID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to assign section")
	}
	if matched == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	return nil
}
