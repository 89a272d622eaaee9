package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoTransactions is the label of a highlight without any transactions.
const NoTransactions = "Não há transações"

// Highlight is a summary bucket shown on the dashboard.
type Highlight struct {
	Amount          decimal.Decimal `json:"amount" example:"100"`                                    // Sum of the bucket
	FormattedAmount string          `json:"formattedAmount" example:"R$ 100,00"`                     // Sum formatted as currency
	LastTransaction string          `json:"lastTransaction" example:"Última entrada dia 5 de março"` // Label for the most recent transaction
}

// Highlights are the income, expense and net buckets.
type Highlights struct {
	Entries  Highlight `json:"entries"`  // Income
	Expenses Highlight `json:"expenses"` // Expenses
	Total    Highlight `json:"total"`    // Income minus expenses
}

// FormattedTransaction is a transaction rendered for the transaction list.
type FormattedTransaction struct {
	ID       string          `json:"id" example:"0b5e6d6a-3f4c-4d5e-9d8f-8a2f6c1b7e10"`
	Name     string          `json:"name" example:"Almoço"`
	Amount   string          `json:"amount" example:"R$ 32,90"` // Amount formatted as currency
	Value    decimal.Decimal `json:"value" example:"32.9"`      // Parsed amount
	Type     Type            `json:"type" swaggertype:"string" example:"expense"`
	Category string          `json:"category" example:"food"`
	Date     string          `json:"date" example:"10/03/24"` // Date formatted as DD/MM/YY
}

// Dashboard is the formatted transaction list with its highlights.
type Dashboard struct {
	Transactions []FormattedTransaction `json:"transactions"`
	Highlights   Highlights             `json:"highlights"`

	// Records that were left out because they could not be interpreted
	Skipped []*DataIntegrityError `json:"-"`
}

// Summarize formats the transactions and computes the dashboard highlights.
//
// Transactions that cannot be interpreted are skipped and listed in
// Dashboard.Skipped, all others are aggregated. The order of the formatted
// list is the order of the input.
func Summarize(transactions []Transaction, f Formatter) Dashboard {
	d := Dashboard{
		Transactions: make([]FormattedTransaction, 0, len(transactions)),
	}

	var income, expense decimal.Decimal
	var lastIncome, lastExpense time.Time

	for _, t := range transactions {
		amount, ie := t.check()
		if ie != nil {
			d.Skipped = append(d.Skipped, ie)
			continue
		}

		switch t.Type {
		case TypeIncome:
			income = income.Add(amount)
			if t.Date.After(lastIncome) {
				lastIncome = t.Date
			}
		case TypeExpense:
			expense = expense.Add(amount)
			if t.Date.After(lastExpense) {
				lastExpense = t.Date
			}
		}

		d.Transactions = append(d.Transactions, FormattedTransaction{
			ID:       t.ID,
			Name:     t.Name,
			Amount:   f.Currency(amount),
			Value:    amount,
			Type:     t.Type,
			Category: t.Category,
			Date:     f.Date(t.Date),
		})
	}

	total := income.Sub(expense)

	d.Highlights = Highlights{
		Entries: Highlight{
			Amount:          income,
			FormattedAmount: f.Currency(income),
			LastTransaction: lastLabel(f, "Última entrada dia ", lastIncome),
		},
		Expenses: Highlight{
			Amount:          expense,
			FormattedAmount: f.Currency(expense),
			LastTransaction: lastLabel(f, "Última saída dia ", lastExpense),
		},
		// The period of the net total always ends on the day of the last
		// expense, even if there is more recent income.
		Total: Highlight{
			Amount:          total,
			FormattedAmount: f.Currency(total),
			LastTransaction: lastLabel(f, "01 a ", lastExpense),
		},
	}

	return d
}

func lastLabel(f Formatter, prefix string, last time.Time) string {
	if last.IsZero() {
		return NoTransactions
	}

	return prefix + f.DayOfMonth(last)
}
