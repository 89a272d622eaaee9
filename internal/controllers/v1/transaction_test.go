package v1_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	v1 "github.com/gofinances/backend/internal/controllers/v1"
	"github.com/gofinances/backend/internal/finance"
	"github.com/gofinances/backend/internal/httputil"
	"github.com/gofinances/backend/internal/models"
	"github.com/gofinances/backend/internal/storage"
	"github.com/gofinances/backend/test"
	"github.com/stretchr/testify/assert"
)

const transactionsURL = "http://example.com/v1/transactions"

func (suite *TestSuiteStandard) createTransaction(user string, registration any, expectedStatus int) v1.TransactionResponse {
	recorder := test.Request(suite.T(), http.MethodPost, transactionsURL, registration, test.User(user))
	test.AssertHTTPStatus(suite.T(), &recorder, expectedStatus)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) listTransactions(user, query string, expectedStatus int) v1.TransactionListResponse {
	recorder := test.Request(suite.T(), http.MethodGet, transactionsURL+query, "", test.User(user))
	test.AssertHTTPStatus(suite.T(), &recorder, expectedStatus)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	before := time.Now()
	response := suite.createTransaction("alice", finance.Registration{
		Name:     " Almoço ",
		Amount:   "32.90",
		Type:     "expense",
		Category: "food",
	}, http.StatusCreated)

	suite.Require().Nil(response.Error)
	suite.Require().NotNil(response.Data)

	created := *response.Data
	suite.Assert().NotEmpty(created.ID)
	suite.Assert().Equal("Almoço", created.Name)
	suite.Assert().Equal(finance.Amount("32.9"), created.Amount)
	suite.Assert().Equal(finance.TypeExpense, created.Type)
	suite.Assert().Equal("food", created.Category)
	suite.Assert().False(created.Date.Before(before.Truncate(time.Second)), "Date must be the time of the registration")

	list := suite.listTransactions("alice", "", http.StatusOK)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal(created.ID, list.Data[0].ID)
	suite.Assert().Equal("R$ 32,90", list.Data[0].Amount)
}

func (suite *TestSuiteStandard) TestTransactionsCreateLegacyType() {
	response := suite.createTransaction("alice", map[string]string{
		"name":     "Salário",
		"amount":   "1500",
		"type":     "up",
		"category": "salary",
	}, http.StatusCreated)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(finance.TypeIncome, response.Data.Type)
}

func (suite *TestSuiteStandard) TestTransactionsCreateNumericAmount() {
	response := suite.createTransaction("alice", map[string]any{
		"name":     "Cinema",
		"amount":   25.5,
		"type":     "expense",
		"category": "leisure",
	}, http.StatusCreated)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(finance.Amount("25.5"), response.Data.Amount)
}

func (suite *TestSuiteStandard) TestTransactionsCreateValidation() {
	valid := map[string]any{
		"name":     "Almoço",
		"amount":   "32.90",
		"type":     "expense",
		"category": "food",
	}

	with := func(key string, value any) map[string]any {
		r := map[string]any{}
		for k, v := range valid {
			r[k] = v
		}
		r[key] = value
		return r
	}

	tests := []struct {
		name         string
		registration map[string]any
		err          error
	}{
		{"Name missing", with("name", ""), finance.ErrNameRequired},
		{"Name blank", with("name", "   "), finance.ErrNameRequired},
		{"Amount missing", with("amount", ""), finance.ErrAmountRequired},
		{"Amount not numeric", with("amount", "abc"), finance.ErrAmountNotNumeric},
		{"Amount negative", with("amount", "-10"), finance.ErrAmountNotPositive},
		{"Amount zero", with("amount", "0"), finance.ErrAmountNotPositive},
		{"Type missing", with("type", ""), finance.ErrTypeNotSelected},
		{"Type unknown", with("type", "transfer"), finance.ErrTypeNotSelected},
		{"Category missing", with("category", ""), finance.ErrCategoryNotSelected},
		{"Category unknown", with("category", "travel"), finance.ErrCategoryNotSelected},
		{"Name checked first", map[string]any{}, finance.ErrNameRequired},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := suite.createTransaction("alice", tt.registration, http.StatusBadRequest)

			assert.Nil(t, response.Data)
			if assert.NotNil(t, response.Error) {
				assert.Equal(t, tt.err.Error(), *response.Error)
			}
		})
	}

	// Nothing was persisted
	suite.Assert().Empty(suite.listTransactions("alice", "", http.StatusOK).Data)
}

func (suite *TestSuiteStandard) TestTransactionsCreateBrokenBody() {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{"Empty", "", httputil.ErrRequestBodyEmpty},
		{"Not JSON", `{"name": `, httputil.ErrInvalidBody},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := suite.createTransaction("alice", tt.body, http.StatusBadRequest)
			if assert.NotNil(t, response.Error) {
				assert.Equal(t, tt.err.Error(), *response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreateDatabaseError() {
	suite.CloseDB()

	response := suite.createTransaction("alice", finance.Registration{
		Name:     "Almoço",
		Amount:   "32.90",
		Type:     "expense",
		Category: "food",
	}, http.StatusInternalServerError)

	suite.Assert().Nil(response.Data)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("Não foi possível salvar", *response.Error)
}

func (suite *TestSuiteStandard) TestTransactionsCreateMalformedList() {
	suite.storeRaw("alice", "{not json")

	response := suite.createTransaction("alice", finance.Registration{
		Name:     "Almoço",
		Amount:   "32.90",
		Type:     "expense",
		Category: "food",
	}, http.StatusInternalServerError)
	suite.Assert().Nil(response.Data)

	// The stored value is left untouched
	value, err := storage.NewDatabase(models.DB).Get(context.Background(), storage.ScopeIdentity.Key("alice"))
	suite.Require().Nil(err)
	suite.Assert().Equal("{not json", value)

	// Reading falls back to an empty list
	suite.Assert().Empty(suite.listTransactions("alice", "", http.StatusOK).Data)
}

func (suite *TestSuiteStandard) TestTransactionsIdentityIsolation() {
	suite.storeTransactions("alice", exampleTransactions()...)

	suite.Assert().Len(suite.listTransactions("alice", "", http.StatusOK).Data, 3)
	suite.Assert().Empty(suite.listTransactions("bob", "", http.StatusOK).Data)
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	suite.storeTransactions("alice", exampleTransactions()...)

	response := suite.listTransactions("alice", "", http.StatusOK)
	suite.Require().Nil(response.Error)
	suite.Require().Len(response.Data, 3)

	// Input order is kept
	suite.Assert().Equal("1", response.Data[0].ID)
	suite.Assert().Equal("2", response.Data[1].ID)
	suite.Assert().Equal("3", response.Data[2].ID)

	suite.Assert().Equal(finance.FormattedTransaction{
		ID:       "2",
		Name:     "Mercado",
		Amount:   "R$ 40,00",
		Value:    response.Data[1].Value,
		Type:     finance.TypeExpense,
		Category: "food",
		Date:     "10/03/24",
	}, response.Data[1])
	suite.Assert().Equal("40", response.Data[1].Value.String())
}

func (suite *TestSuiteStandard) TestTransactionsListSkipsInvalidRecords() {
	suite.storeRaw("alice", `[
		{"id":"a","name":"Mercado","amount":"40","type":"negative","category":"food","date":"2024-03-10T15:00:00Z"},
		{"id":"b","name":"Erro","amount":"abc","type":"negative","category":"food","date":"2024-03-11T15:00:00Z"},
		{"id":"c","name":"Erro","amount":"10","type":"transfer","category":"food","date":"2024-03-12T15:00:00Z"}
	]`)

	response := suite.listTransactions("alice", "", http.StatusOK)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("a", response.Data[0].ID)
	suite.Assert().Equal(finance.TypeExpense, response.Data[0].Type)
}

func (suite *TestSuiteStandard) TestTransactionsFilter() {
	suite.storeTransactions("alice", exampleTransactions()...)
	suite.storeTransactions("alice", finance.Transaction{
		ID: "4", Name: "Mercado do mês", Amount: "55", Type: finance.TypeExpense, Category: "food", Date: date(time.April, 2),
	})

	// Early on the 1st of April in UTC is still the 31st of March in São Paulo
	suite.storeTransactions("alice", finance.Transaction{
		ID: "5", Name: "Padaria", Amount: "5", Type: finance.TypeExpense, Category: "food", Date: time.Date(2024, time.April, 1, 2, 0, 0, 0, time.UTC),
	})

	tests := []struct {
		name  string
		query string
		ids   []string
	}{
		{"Income", "?type=income", []string{"1"}},
		{"Expense", "?type=expense", []string{"2", "3", "4", "5"}},
		{"Legacy type", "?type=negative", []string{"2", "3", "4", "5"}},
		{"March", "?month=2024-03", []string{"1", "2", "3", "5"}},
		{"April", "?month=2024-04", []string{"4"}},
		{"Empty month", "?month=2023-01", []string{}},
		{"Name contains", "?name=mercado", []string{"2", "4"}},
		{"Name glob", "?name=Mer*m%C3%AAs", []string{"4"}},
		{"Name prefix", "?name=gas*", []string{"3"}},
		{"Combined", "?type=expense&month=2024-03&name=mercado", []string{"2"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := suite.listTransactions("alice", tt.query, http.StatusOK)

			ids := []string{}
			for _, tr := range response.Data {
				ids = append(ids, tr.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsFilterInvalid() {
	tests := []struct {
		name  string
		query string
		err   string
	}{
		{"Type", "?type=transfer", "the specified transaction type is invalid"},
		{"Month", "?month=March", "could not parse the specified month, did you use YYYY-MM format?"},
		{"Month out of range", "?month=2024-13", "could not parse the specified month, did you use YYYY-MM format?"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := suite.listTransactions("alice", tt.query, http.StatusBadRequest)
			if assert.NotNil(t, response.Error) {
				assert.Equal(t, tt.err, *response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	suite.storeTransactions("alice", exampleTransactions()...)
	suite.storeTransactions("bob", exampleTransactions()...)

	recorder := test.Request(suite.T(), http.MethodDelete, transactionsURL, "", test.User("alice"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodDelete, transactionsURL+"?confirm=yes", "", test.User("alice"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Len(suite.listTransactions("alice", "", http.StatusOK).Data, 3)

	recorder = test.Request(suite.T(), http.MethodDelete, transactionsURL+"?confirm=yes-please-delete-everything", "", test.User("alice"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	suite.Assert().Empty(suite.listTransactions("alice", "", http.StatusOK).Data)
	suite.Assert().Len(suite.listTransactions("bob", "", http.StatusOK).Data, 3)
}

func (suite *TestSuiteStandard) TestTransactionsDeleteDatabaseError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodDelete, transactionsURL+"?confirm=yes-please-delete-everything", "", test.User("alice"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
