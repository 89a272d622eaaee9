package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/gofinances/backend/internal/controllers/v1"
	"github.com/gofinances/backend/internal/finance"
	"github.com/gofinances/backend/test"
)

const resumeURL = "http://example.com/v1/resume"

func (suite *TestSuiteStandard) getResume(user, query string, expectedStatus int) v1.ResumeResponse {
	recorder := test.Request(suite.T(), http.MethodGet, resumeURL+query, "", test.User(user))
	test.AssertHTTPStatus(suite.T(), &recorder, expectedStatus)

	var response v1.ResumeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestResume() {
	suite.storeTransactions("alice", exampleTransactions()...)
	suite.storeTransactions("alice", finance.Transaction{
		ID: "4", Name: "Livro", Amount: "30", Type: finance.TypeExpense, Category: "studies", Date: date(time.April, 2),
	})

	response := suite.getResume("alice", "?month=2024-03", http.StatusOK)
	suite.Require().Nil(response.Error)
	suite.Require().NotNil(response.Data)

	resume := response.Data
	suite.Assert().Equal("2024-03", resume.Month.String())
	suite.Assert().Equal("março, 2024", resume.MonthLabel)
	suite.Assert().Equal("100", resume.Total.String())
	suite.Assert().Equal("R$ 100,00", resume.TotalFormatted)

	// Categories are in table order, income is not included
	suite.Require().Len(resume.Categories, 2)
	suite.Assert().Equal("food", resume.Categories[0].Key)
	suite.Assert().Equal("Alimentação", resume.Categories[0].Name)
	suite.Assert().Equal("#FF872C", resume.Categories[0].Color)
	suite.Assert().Equal("R$ 40,00", resume.Categories[0].TotalFormatted)
	suite.Assert().Equal(int64(40), resume.Categories[0].PercentValue)
	suite.Assert().Equal("40%", resume.Categories[0].Percent)
	suite.Assert().Equal("car", resume.Categories[1].Key)
	suite.Assert().Equal("60%", resume.Categories[1].Percent)

	suite.Assert().Equal(v1.ResumeLinks{
		Self:     "http://example.com/v1/resume?month=2024-03",
		Previous: "http://example.com/v1/resume?month=2024-02",
		Next:     "http://example.com/v1/resume?month=2024-04",
	}, resume.Links)
}

func (suite *TestSuiteStandard) TestResumeEmptyMonth() {
	suite.storeTransactions("alice", exampleTransactions()...)

	response := suite.getResume("alice", "?month=2023-12", http.StatusOK)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Total.IsZero())
	suite.Assert().NotNil(response.Data.Categories)
	suite.Assert().Empty(response.Data.Categories)
	suite.Assert().Equal("dezembro, 2023", response.Data.MonthLabel)
	suite.Assert().Equal("http://example.com/v1/resume?month=2024-01", response.Data.Links.Next)
}

func (suite *TestSuiteStandard) TestResumeDefaultMonth() {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	suite.Require().Nil(err)

	now := time.Now().In(loc)
	suite.storeTransactions("alice", finance.Transaction{
		ID: "1", Name: "Mercado", Amount: "12.5", Type: finance.TypeExpense, Category: "food", Date: now,
	})

	response := suite.getResume("alice", "", http.StatusOK)
	suite.Require().NotNil(response.Data)

	// The month may have changed between the store and the request
	if response.Data.Month.Year() == now.Year() && response.Data.Month.Month() == now.Month() {
		suite.Require().Len(response.Data.Categories, 1)
		suite.Assert().Equal("100%", response.Data.Categories[0].Percent)
		suite.Assert().Equal("R$ 12,50", response.Data.TotalFormatted)
	}
}

func (suite *TestSuiteStandard) TestResumeInvalidMonth() {
	for _, query := range []string{"?month=2024", "?month=03-2024", "?month=2024-00"} {
		response := suite.getResume("alice", query, http.StatusBadRequest)
		suite.Assert().Nil(response.Data, query)
		if suite.Assert().NotNil(response.Error, query) {
			suite.Assert().Equal("could not parse the specified month, did you use YYYY-MM format?", *response.Error)
		}
	}
}

func (suite *TestSuiteStandard) TestResumeUncategorized() {
	suite.storeTransactions("alice",
		finance.Transaction{ID: "1", Name: "Mercado", Amount: "50", Type: finance.TypeExpense, Category: "food", Date: date(time.March, 1)},
		finance.Transaction{ID: "2", Name: "Viagem", Amount: "50", Type: finance.TypeExpense, Category: "travel", Date: date(time.March, 2)},
	)

	response := suite.getResume("alice", "?month=2024-03", http.StatusOK)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("100", response.Data.Total.String())
	suite.Assert().Equal("50", response.Data.Uncategorized.String())
	suite.Require().Len(response.Data.Categories, 1)
	suite.Assert().Equal("50%", response.Data.Categories[0].Percent)
}
