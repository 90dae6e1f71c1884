package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type storeDiagnostics interface {
	Ping(ctx context.Context) error
	DatabaseName() string
	CollectionNames(ctx context.Context) ([]string, error)
}

type cacheDiagnostics interface {
	Ping(ctx context.Context) error
}

// HealthHandler exposes the liveness message and the store connectivity
// diagnostic. The diagnostic always answers 200 and degrades its fields when
// a dependency is unreachable.
type HealthHandler struct {
	store storeDiagnostics
	cache cacheDiagnostics
}

// NewHealthHandler creates a new health handler. A nil cache reports as not
// configured.
func NewHealthHandler(store storeDiagnostics, cache cacheDiagnostics) *HealthHandler {
	return &HealthHandler{store: store, cache: cache}
}

// Root godoc
// @Summary Liveness message
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "EE Department Backend Running"})
}

// Test godoc
// @Summary Store connectivity diagnostic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /test [get]
func (h *HealthHandler) Test(c *gin.Context) {
	ctx := c.Request.Context()

	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
		"cache":             "not configured",
	}

	if h.store != nil {
		if err := h.store.Ping(ctx); err != nil {
			resp["database"] = "error: " + truncate(err.Error(), 80)
		} else {
			resp["database"] = "connected"
			resp["database_name"] = h.store.DatabaseName()
			resp["connection_status"] = "connected"

			if names, err := h.store.CollectionNames(ctx); err != nil {
				resp["database"] = "connected but error: " + truncate(err.Error(), 80)
			} else {
				if len(names) > 15 {
					names = names[:15]
				}
				resp["collections"] = names
			}
		}
	}

	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			resp["cache"] = "error: " + truncate(err.Error(), 80)
		} else {
			resp["cache"] = "connected"
		}
	}

	c.JSON(http.StatusOK, resp)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
