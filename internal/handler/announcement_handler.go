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

type announcementService interface {
	Create(ctx context.Context, req service.CreateAnnouncementRequest) (string, error)
	List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, error)
}

// AnnouncementHandler exposes announcement endpoints.
type AnnouncementHandler struct {
	service announcementService
}

// NewAnnouncementHandler creates a new announcement handler.
func NewAnnouncementHandler(svc announcementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: svc}
}

// Create godoc
// @Summary Create an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body service.CreateAnnouncementRequest true "Announcement payload"
// @Success 200 {object} models.IDResponse
// @Failure 400 {object} response.ErrorEnvelope
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req service.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid announcement payload"))
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
// @Summary List announcements
// @Tags Announcements
// @Produce json
// @Param audience query string false "Audience filter"
// @Param level_id query string false "Level filter"
// @Param section_id query string false "Section filter"
// @Success 200 {array} models.Announcement
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	filter := models.AnnouncementFilter{
		Audience:  c.Query("audience"),
		LevelID:   c.Query("level_id"),
		SectionID: c.Query("section_id"),
	}

	anns, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, anns)
}
