package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofinances/backend/internal/finance"
	"github.com/gofinances/backend/internal/httputil"
	"github.com/gofinances/backend/internal/models"
	"github.com/gofinances/backend/internal/types"
)

// RegisterResumeRoutes registers the routes for the monthly category
// breakdown with the RouterGroup that is passed.
func (co Controller) RegisterResumeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsResume)
	r.GET("", co.GetResume)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Resume
// @Success		204
// @Router			/v1/resume [options]
func OptionsResume(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get monthly resume
// @Description	Returns the expenses of a month summed up by category. Without a month, the current month is used.
// @Tags			Resume
// @Produce		json
// @Success		200			{object}	ResumeResponse
// @Failure		400			{object}	ResumeResponse
// @Failure		401			{object}	ResumeResponse
// @Param			month		query		string	false	"Year and month in YYYY-MM format"
// @Param			X-User-ID	header		string	true	"ID of the user"
// @Router			/v1/resume [get]
func (co Controller) GetResume(c *gin.Context) {
	id, ok := user(c)
	if !ok {
		return
	}

	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ResumeResponse{
			Error: &e,
		})
		return
	}

	month, err := query.month(co.Formatter.MonthOf(co.now()))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ResumeResponse{
			Error: &e,
		})
		return
	}

	transactions := co.Transactions.Load(c.Request.Context(), id)
	resume := finance.Breakdown(transactions, month, co.categories(), co.Formatter)
	logSkipped(c, resume.Skipped)

	c.JSON(http.StatusOK, ResumeResponse{Data: &Resume{
		Resume: resume,
		Links:  resumeLinks(c, month),
	}})
}

func resumeLinks(c *gin.Context, month types.Month) ResumeLinks {
	url := c.GetString(string(models.DBContextURL)) + "/v1/resume"

	return ResumeLinks{
		Self:     fmt.Sprintf("%s?month=%s", url, month),
		Previous: fmt.Sprintf("%s?month=%s", url, month.Previous()),
		Next:     fmt.Sprintf("%s?month=%s", url, month.Next()),
	}
}
