// Package version reports the build of the backend and the conventions
// its amounts and dates are formatted with.
package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofinances/backend/internal/httputil"
)

const (
	locale   = "pt-BR"
	currency = "BRL"
)

type Response struct {
	Data Object `json:"data"` // Build information
}

type Object struct {
	Version  string `json:"version" example:"1.1.0"` // Version of the running backend
	Locale   string `json:"locale" example:"pt-BR"`  // Locale of formatted amounts and dates
	Currency string `json:"currency" example:"BRL"`  // ISO 4217 code of all amounts
}

// RegisterRoutes registers the version routes. Responses report version.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	r.OPTIONS("", Options)
	r.GET("", Get(version))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the version of the backend and the locale and currency it formats with
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Data: Object{
				Version:  version,
				Locale:   locale,
				Currency: currency,
			},
		})
	}
}
