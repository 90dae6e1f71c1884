package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eedept/dms-api/internal/models"
	"github.com/eedept/dms-api/internal/service"
	appErrors "github.com/eedept/dms-api/pkg/errors"
	"github.com/eedept/dms-api/pkg/response"
)

type bookingService interface {
	Create(ctx context.Context, req service.CreateBookingRequest) (string, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.RoomBooking, error)
	SetStatus(ctx context.Context, bookingID string, status models.BookingStatus) error
}

// BookingHandler exposes room booking endpoints.
type BookingHandler struct {
	service bookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(svc bookingService) *BookingHandler {
	return &BookingHandler{service: svc}
}

// Create godoc
// @Summary Request a room booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param payload body service.CreateBookingRequest true "Booking payload"
// @Success 200 {object} models.IDResponse
// @Failure 400 {object} response.ErrorEnvelope
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req service.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid booking payload"))
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, models.IDResponse{ID: id})
}

// SetStatus godoc
// @Summary Set a booking's status
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param payload body object true "Status payload"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) SetStatus(c *gin.Context) {
	var req struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}

	if err := h.service.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, models.StatusResponse{Status: "ok"})
}

// List godoc
// @Summary List bookings
// @Tags Bookings
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {array} models.RoomBooking
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context(), models.BookingFilter{Status: c.Query("status")})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, bookings)
}
