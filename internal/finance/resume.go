package finance

import (
	"strconv"

	"github.com/gofinances/backend/internal/types"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CategorySummary is the expense total of one category in a month.
type CategorySummary struct {
	Key            string          `json:"key" example:"food"`
	Name           string          `json:"name" example:"Alimentação"`
	Color          string          `json:"color" example:"#FF872C"`
	Total          decimal.Decimal `json:"total" example:"40"`                // Sum of the category's expenses
	TotalFormatted string          `json:"totalFormatted" example:"R$ 40,00"` // Sum formatted as currency
	PercentValue   int64           `json:"percentValue" example:"40"`         // Share of the month's expenses in whole percent
	Percent        string          `json:"percent" example:"40%"`             // PercentValue with a trailing %
}

// Resume is the expense breakdown by category for a month.
type Resume struct {
	Month          types.Month       `json:"month" example:"2024-03-01T00:00:00Z"`
	MonthLabel     string            `json:"monthLabel" example:"março, 2024"`
	Total          decimal.Decimal   `json:"total" example:"100"`                // Sum of all expenses of the month
	TotalFormatted string            `json:"totalFormatted" example:"R$ 100,00"` // Sum formatted as currency
	Uncategorized  decimal.Decimal   `json:"uncategorized" example:"0"`          // Part of Total with a category missing from the table
	Categories     []CategorySummary `json:"categories"`                         // Categories with expenses, in table order

	// Records that were left out because they could not be interpreted
	Skipped []*DataIntegrityError `json:"-"`
}

// Breakdown sums the month's expenses per category of the table.
//
// Only expenses whose date, in the formatter's location, lies in month are
// considered. Categories without expenses are omitted. An expense whose
// category is not in the table counts into Total and Uncategorized only.
func Breakdown(transactions []Transaction, month types.Month, table []Category, f Formatter) Resume {
	r := Resume{
		Month:      month,
		MonthLabel: f.MonthLabel(month),
		Categories: make([]CategorySummary, 0),
	}

	sums := make(map[string]decimal.Decimal, len(table))
	for _, t := range transactions {
		if t.Type != TypeExpense || !month.Contains(t.Date.In(f.Location())) {
			continue
		}

		amount, ie := t.check()
		if ie != nil {
			r.Skipped = append(r.Skipped, ie)
			continue
		}

		r.Total = r.Total.Add(amount)

		if _, ok := lookupCategory(table, t.Category); !ok {
			r.Uncategorized = r.Uncategorized.Add(amount)
			continue
		}
		sums[t.Category] = sums[t.Category].Add(amount)
	}

	r.TotalFormatted = f.Currency(r.Total)

	// Without expenses there is nothing to compute a share of
	if r.Total.IsZero() {
		return r
	}

	for _, c := range table {
		sum, ok := sums[c.Key]
		if !ok || !sum.IsPositive() {
			continue
		}

		percent := sum.Div(r.Total).Mul(hundred).Round(0).IntPart()

		r.Categories = append(r.Categories, CategorySummary{
			Key:            c.Key,
			Name:           c.Name,
			Color:          c.Color,
			Total:          sum,
			TotalFormatted: f.Currency(sum),
			PercentValue:   percent,
			Percent:        strconv.FormatInt(percent, 10) + "%",
		})
	}

	return r
}
