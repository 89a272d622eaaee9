package finance

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Registration holds the data a user submits to record a new transaction.
type Registration struct {
	Name     string `json:"name" example:"Almoço"`                       // Free text label
	Amount   Amount `json:"amount" swaggertype:"string" example:"32.90"` // Must be a positive number
	Type     string `json:"type" example:"expense"`                      // income or expense
	Category string `json:"category" example:"food"`                     // Key of a category in the category table
}

// Validate checks the registration in the order the form reports problems:
// name, amount, type, category.
func (r Registration) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}

	if strings.TrimSpace(string(r.Amount)) == "" {
		return ErrAmountRequired
	}

	amount, err := r.Amount.Decimal()
	if err != nil {
		return ErrAmountNotNumeric
	}

	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !ParseType(r.Type).Valid() {
		return ErrTypeNotSelected
	}

	if _, ok := LookupCategory(r.Category); !ok {
		return ErrCategoryNotSelected
	}

	return nil
}

// Transaction validates the registration and returns the record to persist.
// The date of the record is now.
func (r Registration) Transaction(now time.Time) (Transaction, error) {
	if err := r.Validate(); err != nil {
		return Transaction{}, err
	}

	// Validate guarantees that this does not fail
	amount, _ := r.Amount.Decimal()

	return Transaction{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(r.Name),
		Amount:   Amount(amount.String()),
		Type:     ParseType(r.Type),
		Category: r.Category,
		Date:     now,
	}, nil
}
