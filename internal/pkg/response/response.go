// internal/pkg/response/response.go
package response

import (
	"errors"
	"net/http"

	xerrors "github.com/25ayu25/BGC-MedicalManagementSystem/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error envelope the dashboard already parses:
// {"error": "...", "detail": "..."} with detail only on server errors.
type ErrorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// FromError maps the service error taxonomy onto HTTP. InvalidArgument
// surfaces as a 400 with the specific message; everything else is a
// generic 500 carrying the diagnostic in detail.
func FromError(c *gin.Context, err error) {
	if errors.Is(err, xerrors.ErrInvalidArgument) {
		BadRequest(c, err.Error())
		return
	}
	ServerError(c, err)
}

// BadRequest sends a 400 with a caller-facing message.
func BadRequest(c *gin.Context, message string) {
	c.Abort()
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// ServerError sends the generic 500 envelope.
func ServerError(c *gin.Context, err error) {
	c.Abort()
	body := ErrorBody{Error: "Server error"}
	if err != nil {
		body.Detail = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

// NotFound is the catch-all for unknown paths.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: "Not found"})
}
