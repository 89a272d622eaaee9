// Package healthz reports if the backend can serve transactions.
package healthz

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofinances/backend/internal/httputil"
	"github.com/gofinances/backend/internal/models"
)

// pingTimeout bounds the time the database has to answer.
const pingTimeout = 2 * time.Second

var errStorageMissing = errors.New("the storage table does not exist")

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Checks that the database answers and holds the storage table. Returns an error if not.
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httputil.HTTPError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		httputil.NewError(c, http.StatusInternalServerError, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	err = sqlDB.PingContext(ctx)
	if err != nil {
		httputil.NewError(c, http.StatusInternalServerError, err)
		return
	}

	if !models.DB.WithContext(ctx).Migrator().HasTable(&models.StorageEntry{}) {
		httputil.NewError(c, http.StatusInternalServerError, errStorageMissing)
		return
	}

	c.Status(http.StatusNoContent)
}
