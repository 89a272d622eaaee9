// Package identity resolves the user that a request acts for.
//
// The backend does not authenticate users. A gateway in front of it sets the
// X-User-ID header for every request it forwards.
package identity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gofinances/backend/internal/httputil"
)

// Header carries the ID of the user.
const Header = "X-User-ID"

const contextKey = "gf-identity"

// ErrMissing is returned when a request does not identify its user.
var ErrMissing = errors.New("the X-User-ID header must identify the user")

// Middleware aborts requests without an identity with 401 Unauthorized and
// makes the identity available to Get for all other requests.
//
// OPTIONS requests pass without an identity.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		id := strings.TrimSpace(c.GetHeader(Header))
		if id == "" {
			httputil.NewError(c, http.StatusUnauthorized, ErrMissing)
			return
		}

		c.Set(contextKey, id)
		c.Next()
	}
}

// Get returns the identity set by Middleware.
func Get(c *gin.Context) (string, bool) {
	id := c.GetString(contextKey)
	return id, id != ""
}
