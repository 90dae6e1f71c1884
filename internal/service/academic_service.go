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

type levelRepository interface {
	Create(ctx context.Context, level *models.Level) (string, error)
	List(ctx context.Context) ([]models.Level, error)
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type sectionRepository interface {
	Create(ctx context.Context, section *models.Section) (string, error)
	List(ctx context.Context, filter models.SectionFilter) ([]models.Section, error)
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// CreateLevelRequest is the payload of POST /levels.
type CreateLevelRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

// CreateSectionRequest is the payload of POST /sections.
type CreateSectionRequest struct {
	LevelID string `json:"level_id" validate:"required"`
	Name    string `json:"name" validate:"required"`
}

// AcademicService manages levels and their sections.
type AcademicService struct {
	levels    levelRepository
	sections  sectionRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAcademicService creates an instance of AcademicService.
func NewAcademicService(levels levelRepository, sections sectionRepository, validate *validator.Validate, logger *zap.Logger) *AcademicService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AcademicService{levels: levels, sections: sections, validator: validate, logger: logger}
}

// CreateLevel adds a new academic level.
func (s *AcademicService) CreateLevel(ctx context.Context, req CreateLevelRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid level payload")
	}

	id, err := s.levels.Create(ctx, &models.Level{Name: req.Name, Description: req.Description})
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create level")
	}
	return id, nil
}

// ListLevels returns every level.
func (s *AcademicService) ListLevels(ctx context.Context) ([]models.Level, error) {
	levels, err := s.levels.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list levels")
	}
	return levels, nil
}

// CreateSection adds a section after checking its parent level exists.
func (s *AcademicService) CreateSection(ctx context.Context, req CreateSectionRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid section payload")
	}

	levelOID, err := store.ParseID(req.LevelID)
	if err != nil {
		return "", err
	}

	exists, err := s.levels.ExistsByID(ctx, levelOID)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check level")
	}
	if !exists {
		return "", appErrors.Clone(appErrors.ErrReference, "level not found")
	}

	id, err := s.sections.Create(ctx, &models.Section{LevelID: req.LevelID, Name: req.Name})
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create section")
	}
	return id, nil
}

// ListSections returns sections matching the filter.
func (s *AcademicService) ListSections(ctx context.Context, filter models.SectionFilter) ([]models.Section, error) {
	sections, err := s.sections.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sections")
	}
	return sections, nil
}
