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

type academicService interface {
	CreateLevel(ctx context.Context, req service.CreateLevelRequest) (string, error)
	ListLevels(ctx context.Context) ([]models.Level, error)
	CreateSection(ctx context.Context, req service.CreateSectionRequest) (string, error)
	ListSections(ctx context.Context, filter models.SectionFilter) ([]models.Section, error)
}

// AcademicHandler exposes level and section endpoints.
type AcademicHandler struct {
	service academicService
}

// NewAcademicHandler creates a new academic handler.
func NewAcademicHandler(svc academicService) *AcademicHandler {
	return &AcademicHandler{service: svc}
}

// CreateLevel godoc
// @Summary Create a level
// @Tags Academic
// @Accept json
// @Produce json
// @Param payload body service.CreateLevelRequest true "Level payload"
// @Success 200 {object} models.IDResponse
// @Failure 400 {object} response.ErrorEnvelope
// @Router /levels [post]
func (h *AcademicHandler) CreateLevel(c *gin.Context) {
	var req service.CreateLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid level payload"))
		return
	}

	id, err := h.service.CreateLevel(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, models.IDResponse{ID: id})
}

// ListLevels godoc
// @Summary List levels
// @Tags Academic
// @Produce json
// @Success 200 {array} models.Level
// @Router /levels [get]
func (h *AcademicHandler) ListLevels(c *gin.Context) {
	levels, err := h.service.ListLevels(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, levels)
}

// CreateSection godoc
// @Summary Create a section
// @Tags Academic
// @Accept json
// @Produce json
// @Param payload body service.CreateSectionRequest true "Section payload"
// @Success 200 {object} models.IDResponse
// @Failure 400 {object} response.ErrorEnvelope
// @Router /sections [post]
func (h *AcademicHandler) CreateSection(c *gin.Context) {
	var req service.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid section payload"))
		return
	}

	id, err := h.service.CreateSection(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, models.IDResponse{ID: id})
}

// ListSections godoc
// @Summary List sections
// @Tags Academic
// @Produce json
// @Param level_id query string false "Level filter"
// @Success 200 {array} models.Section
// @Router /sections [get]
func (h *AcademicHandler) ListSections(c *gin.Context) {
	sections, err := h.service.ListSections(c.Request.Context(), models.SectionFilter{LevelID: c.Query("level_id")})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sections)
}
