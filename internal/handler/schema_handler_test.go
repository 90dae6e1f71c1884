package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eedept/dms-api/internal/schema"
)

func TestSchemaHandlerGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSchemaHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/schema", nil)
	c.Request = req

	handler.Get(c)
	require.Equal(t, http.StatusOK, w.Code)

	var defs map[string]schema.Entity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &defs))
	assert.Len(t, defs, 8)
	assert.Contains(t, defs, "user")
	assert.Contains(t, defs, "roombooking")
	assert.Contains(t, defs, "timetableentry")
}
