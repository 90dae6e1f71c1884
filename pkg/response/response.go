package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/eedept/dms-api/pkg/errors"
)

// ErrorEnvelope wraps failed responses. Successful responses are written
// verbatim: creation endpoints return an id document, list endpoints a raw
// array, so clients of the previous backend keep working unchanged.
type ErrorEnvelope struct {
	Error *appErrors.Error `json:"error"`
}

// JSON sends a success response with the payload as-is.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, ErrorEnvelope{Error: appErr})
}
