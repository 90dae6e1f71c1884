package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/eedept/dms-api/internal/models"
	appErrors "github.com/eedept/dms-api/pkg/errors"
)

type attendanceRepository interface {
	Create(ctx context.Context, a *models.Attendance) (string, error)
	List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error)
}

// CreateAttendanceRequest is the payload of POST /attendance. Present
// defaults to true when omitted.
type CreateAttendanceRequest struct {
	SectionID   string  `json:"section_id" validate:"required"`
	TimetableID *string `json:"timetable_id"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	StudentID   string  `json:"student_id" validate:"required"`
	Present     *bool   `json:"present"`
}

// AttendanceService records student presence.
type AttendanceService struct {
	repo      attendanceRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService creates an instance of AttendanceService.
func NewAttendanceService(repo attendanceRepository, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AttendanceService{repo: repo, validator: validate, logger: logger}
}

// Create stores a presence record.
func (s *AttendanceService) Create(ctx context.Context, req CreateAttendanceRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}

	present := true
	if req.Present != nil {
		present = *req.Present
	}

	a := &models.Attendance{
		SectionID:   req.SectionID,
		TimetableID: req.TimetableID,
		Date:        req.Date,
		StudentID:   req.StudentID,
		Present:     present,
	}

	id, err := s.repo.Create(ctx, a)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record attendance")
	}
	return id, nil
}

// List returns attendance records matching the filter.
func (s *AttendanceService) List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance")
	}
	return records, nil
}
