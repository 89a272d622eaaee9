package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofinances/backend/internal/finance"
	"github.com/gofinances/backend/internal/httputil"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", co.GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns all transactions of the user formatted for display, with the income, expense and net highlights
// @Tags			Dashboard
// @Produce		json
// @Success		200			{object}	DashboardResponse
// @Failure		401			{object}	DashboardResponse
// @Param			X-User-ID	header		string	true	"ID of the user"
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	id, ok := user(c)
	if !ok {
		return
	}

	transactions := co.Transactions.Load(c.Request.Context(), id)
	dashboard := finance.Summarize(transactions, co.Formatter)
	logSkipped(c, dashboard.Skipped)

	c.JSON(http.StatusOK, DashboardResponse{Data: &dashboard})
}
