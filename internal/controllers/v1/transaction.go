package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gofinances/backend/internal/finance"
	"github.com/gofinances/backend/internal/httputil"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTransactions)
	r.GET("", co.GetTransactions)
	r.POST("", co.CreateTransaction)
	r.DELETE("", co.DeleteTransactions)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Get transactions
// @Description	Returns the transactions of the user formatted for display, in the order they were registered
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Failure		401			{object}	TransactionListResponse
// @Param			type		query		string	false	"Filter by type, income or expense"
// @Param			month		query		string	false	"Filter by month of the date, in YYYY-MM format"
// @Param			name		query		string	false	"Filter by name. Glob pattern, case insensitive"
// @Param			X-User-ID	header		string	true	"ID of the user"
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	id, ok := user(c)
	if !ok {
		return
	}

	var filter TransactionQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &e,
		})
		return
	}

	transactions := co.Transactions.Load(c.Request.Context(), id)

	if filter.Type != "" {
		t := finance.ParseType(filter.Type)
		if !slices.Contains([]finance.Type{finance.TypeIncome, finance.TypeExpense}, t) {
			e := errTypeInvalid.Error()
			c.JSON(status(errTypeInvalid), TransactionListResponse{
				Error: &e,
			})
			return
		}

		transactions = slices.DeleteFunc(transactions, func(tr finance.Transaction) bool {
			return tr.Type != t
		})
	}

	if filter.Month != "" {
		month, err := filter.month(co.Formatter.MonthOf(co.now()))
		if err != nil {
			e := err.Error()
			c.JSON(status(err), TransactionListResponse{
				Error: &e,
			})
			return
		}

		loc := co.Formatter.Location()
		transactions = slices.DeleteFunc(transactions, func(tr finance.Transaction) bool {
			return !month.Contains(tr.Date.In(loc))
		})
	}

	if filter.Name != "" {
		pattern := filter.namePattern()
		transactions = slices.DeleteFunc(transactions, func(tr finance.Transaction) bool {
			return !glob.Glob(pattern, strings.ToLower(tr.Name))
		})
	}

	dashboard := finance.Summarize(transactions, co.Formatter)
	logSkipped(c, dashboard.Skipped)

	c.JSON(http.StatusOK, TransactionListResponse{Data: dashboard.Transactions})
}

// @Summary		Create transaction
// @Description	Registers a new transaction dated now. Validation problems are reported one at a time, in the order name, amount, type, category.
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		401			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		finance.Registration	true	"Transaction"
// @Param			X-User-ID	header		string					true	"ID of the user"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	id, ok := user(c)
	if !ok {
		return
	}

	var registration finance.Registration
	if err := httputil.BindData(c, &registration); err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction, err := registration.Transaction(co.now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	if err := co.Transactions.Append(c.Request.Context(), id, transaction); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("saving transaction failed")

		err = fmt.Errorf("%w: %w", errSaveFailed, err)
		e := errSaveFailed.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// @Summary		Delete all transactions
// @Description	Deletes all transactions of the user. The confirm parameter must be set to "yes-please-delete-everything".
// @Tags			Transactions
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			confirm		query		string	true	"Confirmation to delete all transactions"
// @Param			X-User-ID	header		string	true	"ID of the user"
// @Router			/v1/transactions [delete]
func (co Controller) DeleteTransactions(c *gin.Context) {
	id, ok := user(c)
	if !ok {
		return
	}

	var query ConfirmDelete
	if err := c.ShouldBindQuery(&query); err != nil || query.Confirm != deleteConfirmation {
		c.JSON(status(errDeleteConfirmation), httpError{
			Error: errDeleteConfirmation.Error(),
		})
		return
	}

	if err := co.Transactions.Clear(c.Request.Context(), id); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
