package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/eedept/dms-api/internal/schema"
	"github.com/eedept/dms-api/pkg/response"
)

// SchemaHandler serves the structural description of the data model for the
// database viewer and other external tooling.
type SchemaHandler struct{}

// NewSchemaHandler creates a new schema handler.
func NewSchemaHandler() *SchemaHandler {
	return &SchemaHandler{}
}

// Get godoc
// @Summary Describe the data model
// @Tags Schema
// @Produce json
// @Success 200 {object} map[string]schema.Entity
// @Router /schema [get]
func (h *SchemaHandler) Get(c *gin.Context) {
	response.OK(c, schema.Definitions())
}
