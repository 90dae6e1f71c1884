package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eedept/dms-api/internal/models"
	"github.com/eedept/dms-api/internal/service"
	appErrors "github.com/eedept/dms-api/pkg/errors"
	"github.com/eedept/dms-api/pkg/response"
)

type userService interface {
	Register(ctx context.Context, req service.RegisterUserRequest) (string, error)
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	Approve(ctx context.Context, userID string, approved bool) error
	AssignSection(ctx context.Context, userID, sectionID string) error
}

// UserHandler exposes registration and account management endpoints.
type UserHandler struct {
	service userService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc userService) *UserHandler {
	return &UserHandler{service: svc}
}

// Register godoc
// @Summary Register a user
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body service.RegisterUserRequest true "User payload"
// @Success 200 {object} models.IDResponse
// @Failure 400 {object} response.ErrorEnvelope
// @Router /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req service.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid register payload"))
		return
	}

	id, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, models.IDResponse{ID: id})
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Param role query string false "Role filter"
// @Param approved query bool false "Approval filter"
// @Success 200 {array} models.User
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	var filter models.UserFilter

	if role := c.Query("role"); role != "" {
		r := models.UserRole(role)
		filter.Role = &r
	}
	if approved := c.Query("approved"); approved != "" {
		if val, err := strconv.ParseBool(approved); err == nil {
			filter.Approved = &val
		}
	}

	users, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, users)
}

// Approve godoc
// @Summary Approve or revoke a user account
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param payload body object false "Approval payload, defaults to approved"
// @Success 200 {object} models.StatusResponse
// @Failure 404 {object} response.ErrorEnvelope
// @Router /users/{id}/approve [patch]
func (h *UserHandler) Approve(c *gin.Context) {
	var req struct {
		Approved *bool `json:"approved"`
	}
	// An empty body means approve.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid approval payload"))
		return
	}
	approved := true
	if req.Approved != nil {
		approved = *req.Approved
	}

	if err := h.service.Approve(c.Request.Context(), c.Param("id"), approved); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, models.StatusResponse{Status: "ok"})
}

// AssignSection godoc
// @Summary Assign a student to a section
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param payload body object true "Section assignment payload"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /users/{id}/section [patch]
func (h *UserHandler) AssignSection(c *gin.Context) {
	var req struct {
		SectionID string `json:"section_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid section payload"))
		return
	}

	if err := h.service.AssignSection(c.Request.Context(), c.Param("id"), req.SectionID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, models.StatusResponse{Status: "ok"})
}
