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

type bookingRepository interface {
	Create(ctx context.Context, rb *models.RoomBooking) (string, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.RoomBooking, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) (int64, error)
}

// CreateBookingRequest is the payload of POST /bookings.
type CreateBookingRequest struct {
	Room        string               `json:"room" validate:"required"`
	Date        string               `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string               `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string               `json:"end_time" validate:"required,datetime=15:04"`
	Purpose     *string              `json:"purpose"`
	RequestedBy string               `json:"requested_by" validate:"required"`
	Status      models.BookingStatus `json:"status" validate:"omitempty,oneof=pending approved declined"`
}

// BookingService manages room booking requests and their review status.
type BookingService struct {
	repo      bookingRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewBookingService creates an instance of BookingService.
func NewBookingService(repo bookingRepository, validate *validator.Validate, logger *zap.Logger) *BookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &BookingService{repo: repo, validator: validate, logger: logger}
}

// Create stores a booking request, defaulting the status to pending.
func (s *BookingService) Create(ctx context.Context, req CreateBookingRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid booking payload")
	}

	status := req.Status
	if status == "" {
		status = models.BookingPending
	}

	rb := &models.RoomBooking{
		Room:        req.Room,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Purpose:     req.Purpose,
		RequestedBy: req.RequestedBy,
		Status:      status,
	}

	id, err := s.repo.Create(ctx, rb)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create booking")
	}
	return id, nil
}

// List returns bookings matching the filter.
func (s *BookingService) List(ctx context.Context, filter models.BookingFilter) ([]models.RoomBooking, error) {
	bookings, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list bookings")
	}
	return bookings, nil
}

// SetStatus moves a booking to the requested status. Any allowed status may
// replace any other, including itself; a zero matched count means the
// booking does not exist.
func (s *BookingService) SetStatus(ctx context.Context, bookingID string, status models.BookingStatus) error {
	if !status.Valid() {
		return appErrors.Clone(appErrors.ErrInvalidStatus, "invalid status")
	}

	oid, err := store.ParseID(bookingID)
	if err != nil {
		return err
	}

	matched, err := s.repo.SetStatus(ctx, oid, status)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update booking status")
	}
	if matched == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "booking not found")
	}
	return nil
}
