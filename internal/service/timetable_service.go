package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/eedept/dms-api/internal/models"
	"github.com/eedept/dms-api/internal/store"
	appErrors "github.com/eedept/dms-api/pkg/errors"
)

type timetableRepository interface {
	Create(ctx context.Context, entry *models.TimetableEntry) (string, error)
	ListBySection(ctx context.Context, sectionID string) ([]models.TimetableEntry, error)
}

// CreateTimetableRequest is the payload of POST /timetable.
type CreateTimetableRequest struct {
	SectionID string         `json:"section_id" validate:"required"`
	Day       models.Weekday `json:"day" validate:"required,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	StartTime string         `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string         `json:"end_time" validate:"required,datetime=15:04"`
	Room      string         `json:"room" validate:"required"`
	Subject   string         `json:"subject" validate:"required"`
	TeacherID *string        `json:"teacher_id"`
}

// TimetableService manages the weekly timetable of a section.
type TimetableService struct {
	repo      timetableRepository
	sections  sectionLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTimetableService creates an instance of TimetableService.
func NewTimetableService(repo timetableRepository, sections sectionLookup, validate *validator.Validate, logger *zap.Logger) *TimetableService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &TimetableService{repo: repo, sections: sections, validator: validate, logger: logger}
}

// Create adds a timetable entry after checking its section exists.
func (s *TimetableService) Create(ctx context.Context, req CreateTimetableRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable payload")
	}

	sectionOID, err := store.ParseID(req.SectionID)
	if err != nil {
		return "", err
	}

	exists, err := s.sections.ExistsByID(ctx, sectionOID)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check section")
	}
	if !exists {
		return "", appErrors.Clone(appErrors.ErrReference, "section not found")
	}

	entry := &models.TimetableEntry{
		SectionID: req.SectionID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Room:      req.Room,
		Subject:   req.Subject,
		TeacherID: req.TeacherID,
	}

	id, err := s.repo.Create(ctx, entry)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create timetable entry")
	}
	return id, nil
}

// ListBySection returns the timetable of one section. The section id is the
// only list parameter and is mandatory.
func (s *TimetableService) ListBySection(ctx context.Context, sectionID string) ([]models.TimetableEntry, error) {
	if sectionID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "section_id is required")
	}

	entries, err := s.repo.ListBySection(ctx, sectionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list timetable")
	}
	return entries, nil
}
