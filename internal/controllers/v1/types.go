package v1

import (
	"strings"

	"github.com/gofinances/backend/internal/finance"
	"github.com/gofinances/backend/internal/types"
	"github.com/ryanuber/go-glob"
)

type QueryMonth struct {
	Month string `form:"month" example:"2024-03"` // Year and month in YYYY-MM format
}

// month returns the month of the query or def if the query does not set it.
func (q QueryMonth) month(def types.Month) (types.Month, error) {
	if q.Month == "" {
		return def, nil
	}

	m, err := types.ParseMonth(q.Month)
	if err != nil {
		return types.Month{}, errMonthInvalid
	}
	return m, nil
}

type TransactionQueryFilter struct {
	QueryMonth
	Type string `form:"type" example:"expense"` // income or expense
	Name string `form:"name" example:"Almo*"`   // Glob pattern matched against the name, case insensitive. Without a wildcard, matches names containing the value
}

// namePattern returns the lower case glob pattern for the name filter.
func (f TransactionQueryFilter) namePattern() string {
	pattern := strings.ToLower(strings.TrimSpace(f.Name))
	if !strings.Contains(pattern, glob.GLOB) {
		pattern = glob.GLOB + pattern + glob.GLOB
	}
	return pattern
}

// ConfirmDelete is the query confirming that all transactions are deleted.
type ConfirmDelete struct {
	Confirm string `form:"confirm" example:"yes-please-delete-everything"`
}

const deleteConfirmation = "yes-please-delete-everything"

type TransactionListResponse struct {
	Data  []finance.FormattedTransaction `json:"data"`                                                      // List of transactions
	Error *string                        `json:"error" example:"the specified transaction type is invalid"` // The error, if any occurred
}

type TransactionResponse struct {
	Data  *finance.Transaction `json:"data"`                                          // Data for the transaction
	Error *string              `json:"error" example:"Selecione o tipo de transação"` // The error, if any occurred
}

type DashboardResponse struct {
	Data  *finance.Dashboard `json:"data"`                                                        // Dashboard of the user
	Error *string            `json:"error" example:"the X-User-ID header must identify the user"` // The error, if any occurred
}

type ResumeLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/resume?month=2024-03"`     // The month itself
	Previous string `json:"previous" example:"https://example.com/api/v1/resume?month=2024-02"` // The previous month
	Next     string `json:"next" example:"https://example.com/api/v1/resume?month=2024-04"`     // The next month
}

// Resume is the category breakdown of a month with navigation links.
type Resume struct {
	finance.Resume
	Links ResumeLinks `json:"links"`
}

type ResumeResponse struct {
	Data  *Resume `json:"data"`                                                                             // Category breakdown of the month
	Error *string `json:"error" example:"could not parse the specified month, did you use YYYY-MM format?"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data []finance.Category `json:"data"` // List of categories
}
