package v1_test

import (
	"net/http"

	v1 "github.com/gofinances/backend/internal/controllers/v1"
	"github.com/gofinances/backend/internal/finance"
	"github.com/gofinances/backend/test"
)

func (suite *TestSuiteStandard) TestCategories() {
	// The category table does not need an identity
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(finance.Categories, response.Data)
	suite.Require().Len(response.Data, 6)
	suite.Assert().Equal("purchases", response.Data[0].Key)
	suite.Assert().Equal("studies", response.Data[5].Key)
}
