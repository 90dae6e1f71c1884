package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/eedept/dms-api/internal/models"
	appErrors "github.com/eedept/dms-api/pkg/errors"
)

type materialRepository interface {
	Create(ctx context.Context, mat *models.Material) (string, error)
	List(ctx context.Context, filter models.MaterialFilter) ([]models.Material, error)
}

// CreateMaterialRequest is the payload of POST /materials. Only the link is
// stored; the teacher/section references are not checked.
type CreateMaterialRequest struct {
	TeacherID   string  `json:"teacher_id" validate:"required"`
	SectionID   *string `json:"section_id"`
	Title       string  `json:"title" validate:"required"`
	URL         string  `json:"url" validate:"required,url"`
	Description *string `json:"description"`
}

// MaterialService manages link-based course materials.
type MaterialService struct {
	repo      materialRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMaterialService creates an instance of MaterialService.
func NewMaterialService(repo materialRepository, validate *validator.Validate, logger *zap.Logger) *MaterialService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &MaterialService{repo: repo, validator: validate, logger: logger}
}

// Create stores a material document.
func (s *MaterialService) Create(ctx context.Context, req CreateMaterialRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid material payload")
	}

	mat := &models.Material{
		TeacherID:   req.TeacherID,
		SectionID:   req.SectionID,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	}

	id, err := s.repo.Create(ctx, mat)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create material")
	}
	return id, nil
}

// List returns materials matching the filter.
func (s *MaterialService) List(ctx context.Context, filter models.MaterialFilter) ([]models.Material, error) {
	mats, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list materials")
	}
	return mats, nil
}
