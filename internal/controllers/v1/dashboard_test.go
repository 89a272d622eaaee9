package v1_test

import (
	"net/http"

	v1 "github.com/gofinances/backend/internal/controllers/v1"
	"github.com/gofinances/backend/internal/finance"
	"github.com/gofinances/backend/test"
)

const dashboardURL = "http://example.com/v1/dashboard"

func (suite *TestSuiteStandard) getDashboard(user string) finance.Dashboard {
	recorder := test.Request(suite.T(), http.MethodGet, dashboardURL, "", test.User(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Nil(response.Error)
	suite.Require().NotNil(response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestDashboard() {
	suite.storeTransactions("alice", exampleTransactions()...)

	dashboard := suite.getDashboard("alice")
	suite.Assert().Len(dashboard.Transactions, 3)

	h := dashboard.Highlights
	suite.Assert().Equal("100", h.Entries.Amount.String())
	suite.Assert().Equal("R$ 100,00", h.Entries.FormattedAmount)
	suite.Assert().Equal("Última entrada dia 5 de março", h.Entries.LastTransaction)

	suite.Assert().Equal("100", h.Expenses.Amount.String())
	suite.Assert().Equal("R$ 100,00", h.Expenses.FormattedAmount)
	suite.Assert().Equal("Última saída dia 15 de março", h.Expenses.LastTransaction)

	suite.Assert().True(h.Total.Amount.IsZero())
	suite.Assert().Equal("R$ 0,00", h.Total.FormattedAmount)
	suite.Assert().Equal("01 a 15 de março", h.Total.LastTransaction)
}

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	dashboard := suite.getDashboard("alice")

	suite.Assert().NotNil(dashboard.Transactions)
	suite.Assert().Empty(dashboard.Transactions)

	h := dashboard.Highlights
	suite.Assert().Equal("R$ 0,00", h.Entries.FormattedAmount)
	suite.Assert().Equal(finance.NoTransactions, h.Entries.LastTransaction)
	suite.Assert().Equal(finance.NoTransactions, h.Expenses.LastTransaction)
	suite.Assert().Equal(finance.NoTransactions, h.Total.LastTransaction)
}

func (suite *TestSuiteStandard) TestDashboardSkipsInvalidRecords() {
	suite.storeRaw("alice", `[
		{"id":"a","name":"Salário","amount":"100","type":"positive","category":"salary","date":"2024-03-05T15:00:00Z"},
		{"id":"b","name":"Erro","amount":"-5","type":"negative","category":"food","date":"2024-03-20T15:00:00Z"},
		{"id":"c","name":"Sem data","amount":"10","type":"negative","category":"food"}
	]`)

	dashboard := suite.getDashboard("alice")
	suite.Require().Len(dashboard.Transactions, 1)
	suite.Assert().Equal("a", dashboard.Transactions[0].ID)
	suite.Assert().Equal("R$ 100,00", dashboard.Highlights.Total.FormattedAmount)
	suite.Assert().True(dashboard.Highlights.Expenses.Amount.IsZero())
	suite.Assert().Equal(finance.NoTransactions, dashboard.Highlights.Expenses.LastTransaction)
}

func (suite *TestSuiteStandard) TestDashboardMalformedList() {
	suite.storeRaw("alice", "[{")

	dashboard := suite.getDashboard("alice")
	suite.Assert().Empty(dashboard.Transactions)
}

func (suite *TestSuiteStandard) TestDashboardDatabaseError() {
	suite.CloseDB()

	// A failed read is reported as an empty list
	dashboard := suite.getDashboard("alice")
	suite.Assert().Empty(dashboard.Transactions)
}
