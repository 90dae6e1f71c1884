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

type timetableService interface {
	Create(ctx context.Context, req service.CreateTimetableRequest) (string, error)
	ListBySection(ctx context.Context, sectionID string) ([]models.TimetableEntry, error)
}

// TimetableHandler exposes timetable endpoints.
type TimetableHandler struct {
	service timetableService
}

// NewTimetableHandler creates a new timetable handler.
func NewTimetableHandler(svc timetableService) *TimetableHandler {
	return &TimetableHandler{service: svc}
}

// Create godoc
// @Summary Add a timetable entry
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body service.CreateTimetableRequest true "Timetable payload"
// @Success 200 {object} models.IDResponse
// @Failure 400 {object} response.ErrorEnvelope
// @Router /timetable [post]
func (h *TimetableHandler) Create(c *gin.Context) {
	var req service.CreateTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid timetable payload"))
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
// @Summary Get a section's timetable
// @Tags Timetable
// @Produce json
// @Param section_id query string true "Section ID"
// @Success 200 {array} models.TimetableEntry
// @Failure 400 {object} response.ErrorEnvelope
// @Router /timetable [get]
func (h *TimetableHandler) List(c *gin.Context) {
	entries, err := h.service.ListBySection(c.Request.Context(), c.Query("section_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entries)
}
