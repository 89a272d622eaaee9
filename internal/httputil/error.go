package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the X-User-ID header must identify the user"`
}

// NewError writes an HTTPError with the status and aborts the handler chain.
func NewError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, HTTPError{
		Error: err.Error(),
	})
}

// MethodNotAllowed is the handler for known paths called with an unsupported method.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, HTTPError{
		Error: "This HTTP method is not allowed for the endpoint you called",
	})
}
