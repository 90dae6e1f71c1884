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

type materialService interface {
	Create(ctx context.Context, req service.CreateMaterialRequest) (string, error)
	List(ctx context.Context, filter models.MaterialFilter) ([]models.Material, error)
}

// MaterialHandler exposes course material endpoints.
type MaterialHandler struct {
	service materialService
}

// NewMaterialHandler creates a new material handler.
func NewMaterialHandler(svc materialService) *MaterialHandler {
	return &MaterialHandler{service: svc}
}

// Create godoc
// @Summary Publish a material link
// @Tags Materials
// @Accept json
// @Produce json
// @Param payload body service.CreateMaterialRequest true "Material payload"
// @Success 200 {object} models.IDResponse
// @Failure 400 {object} response.ErrorEnvelope
// @Router /materials [post]
func (h *MaterialHandler) Create(c *gin.Context) {
	var req service.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid material payload"))
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
// @Summary List materials
// @Tags Materials
// @Produce json
// @Param section_id query string false "Section filter"
// @Param teacher_id query string false "Teacher filter"
// @Success 200 {array} models.Material
// @Router /materials [get]
func (h *MaterialHandler) List(c *gin.Context) {
	filter := models.MaterialFilter{
		SectionID: c.Query("section_id"),
		TeacherID: c.Query("teacher_id"),
	}

	mats, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, mats)
}
