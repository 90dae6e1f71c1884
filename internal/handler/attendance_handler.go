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

type attendanceService interface {
	Create(ctx context.Context, req service.CreateAttendanceRequest) (string, error)
	List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error)
}

// AttendanceHandler exposes attendance endpoints.
type AttendanceHandler struct {
	service attendanceService
}

// NewAttendanceHandler creates a new attendance handler.
func NewAttendanceHandler(svc attendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: svc}
}

// Create godoc
// @Summary Mark attendance
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body service.CreateAttendanceRequest true "Attendance payload"
// @Success 200 {object} models.IDResponse
// @Failure 400 {object} response.ErrorEnvelope
// @Router /attendance [post]
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req service.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attendance payload"))
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, models.IDResponse{ID: id})
}

// List godoc
// @Summary List attendance records
// @Tags Attendance
// @Produce json
// @Param section_id query string false "Section filter"
// @Param student_id query string false "Student filter"
// @Param date query string false "Date filter (YYYY-MM-DD)"
// @Success 200 {array} models.Attendance
// @Router /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	filter := models.AttendanceFilter{
		SectionID: c.Query("section_id"),
		StudentID: c.Query("student_id"),
		Date:      c.Query("date"),
	}

	records, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, records)
}
