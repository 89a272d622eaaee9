package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/gofinances/backend/internal/controllers/v1"
	"github.com/gofinances/backend/internal/httputil"
	"github.com/gofinances/backend/internal/identity"
	"github.com/gofinances/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(v1.Links{
		Categories:   "http://example.com/v1/categories",
		Transactions: "http://example.com/v1/transactions",
		Dashboard:    "http://example.com/v1/dashboard",
		Resume:       "http://example.com/v1/resume",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/categories", "OPTIONS, GET"},
		{"http://example.com/v1/dashboard", "OPTIONS, GET"},
		{"http://example.com/v1/resume", "OPTIONS, GET"},
		{"http://example.com/v1/transactions", "OPTIONS, GET, POST, DELETE"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(suite.T(), http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

// TestUnauthorized verifies that no user data is read or written without
// an identity.
func (suite *TestSuiteStandard) TestUnauthorized() {
	suite.storeTransactions("alice", exampleTransactions()...)

	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "http://example.com/v1/transactions", ""},
		{http.MethodPost, "http://example.com/v1/transactions", map[string]any{"name": "Almoço", "amount": "10", "type": "expense", "category": "food"}},
		{http.MethodDelete, "http://example.com/v1/transactions?confirm=yes-please-delete-everything", ""},
		{http.MethodGet, "http://example.com/v1/dashboard", ""},
		{http.MethodGet, "http://example.com/v1/resume?month=2024-03", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method+" "+tt.path, func(t *testing.T) {
			recorder := test.Request(t, tt.method, tt.path, tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)

			var response httputil.HTTPError
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, identity.ErrMissing.Error(), response.Error)
		})
	}

	// Nothing was changed
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "", test.User("alice"))
	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 3)
}
