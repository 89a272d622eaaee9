// Package v1 implements the v1 API of the backend.
package v1

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gofinances/backend/internal/finance"
	"github.com/gofinances/backend/internal/identity"
	"github.com/gofinances/backend/internal/models"
	"github.com/gofinances/backend/internal/storage"
	"github.com/rs/zerolog/log"
)

// Controller holds the dependencies of the v1 handlers.
type Controller struct {
	Transactions storage.Transactions
	Formatter    finance.Formatter

	// Categories is the category table, finance.Categories if nil
	Categories []finance.Category

	// Now returns the current time, time.Now if nil
	Now func() time.Time
}

// New returns a Controller that stores transactions in the database.
func New(scope storage.Scope, loc *time.Location) Controller {
	return Controller{
		Transactions: storage.NewTransactions(storage.NewDatabase(models.DB), scope),
		Formatter:    finance.NewFormatter(loc),
	}
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}
	return co.Now()
}

func (co Controller) categories() []finance.Category {
	if co.Categories == nil {
		return finance.Categories
	}
	return co.Categories
}

// user returns the identity of the request. If there is none, the error
// response is written and ok is false.
func user(c *gin.Context) (id string, ok bool) {
	id, ok = identity.Get(c)
	if !ok {
		e := identity.ErrMissing.Error()
		c.AbortWithStatusJSON(status(identity.ErrMissing), httpError{
			Error: e,
		})
	}
	return
}

// logSkipped logs records that were left out of an aggregation.
func logSkipped(c *gin.Context, skipped []*finance.DataIntegrityError) {
	for _, e := range skipped {
		log.Warn().
			Str("request-id", requestid.Get(c)).
			Str("id", e.ID).
			Str("field", e.Field).
			Str("value", e.Value).
			Msg("skipping transaction that cannot be interpreted")
	}
}
