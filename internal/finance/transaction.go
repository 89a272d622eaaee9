// Package finance implements the transaction records of GoFinances and the
// summaries derived from them.
package finance

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Type is the direction of a transaction.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// legacyTypes maps values written by earlier versions of the app.
var legacyTypes = map[string]Type{
	"positive": TypeIncome,
	"up":       TypeIncome,
	"negative": TypeExpense,
	"down":     TypeExpense,
}

// ParseType returns the Type for s. Legacy values are normalized.
// Unknown values are returned unchanged, Valid reports false for them.
func ParseType(s string) Type {
	s = strings.ToLower(strings.TrimSpace(s))
	if t, ok := legacyTypes[s]; ok {
		return t
	}

	return Type(s)
}

// Valid reports if the type is income or expense.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *Type) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*t = ParseType(s)
	return nil
}

// Amount is a decimal quantity as it is persisted, a numeric string.
//
// Decoding also accepts a JSON number. The value is only interpreted by
// Decimal, so a malformed amount never fails decoding of the whole list.
type Amount string

// UnmarshalJSON implements the json.Unmarshaler interface.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}

	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	*a = Amount(data)
	return nil
}

// Decimal parses the amount. Both "12.34" and "12,34" are accepted.
func (a Amount) Decimal() (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(string(a)), ",", ".")
	if s == "" {
		return decimal.Zero, errAmountNotNumeric
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errAmountNotNumeric
	}

	return d, nil
}

// Transaction is a persisted income or expense record.
type Transaction struct {
	ID       string    `json:"id" example:"0b5e6d6a-3f4c-4d5e-9d8f-8a2f6c1b7e10"` // Opaque unique ID
	Name     string    `json:"name" example:"Almoço"`                             // Free text label
	Amount   Amount    `json:"amount" swaggertype:"string" example:"32.90"`       // Numeric string
	Type     Type      `json:"type" swaggertype:"string" example:"expense"`       // income or expense
	Category string    `json:"category" example:"food"`                           // Key into the category table
	Date     time.Time `json:"date" example:"2024-03-10T12:31:00Z"`               // Creation time of the record
}

// Value returns the amount of the transaction.
//
// The error is a *DataIntegrityError if the amount is not a non-negative number.
func (t Transaction) Value() (decimal.Decimal, error) {
	d, ie := t.value()
	if ie != nil {
		return decimal.Zero, ie
	}

	return d, nil
}

func (t Transaction) value() (decimal.Decimal, *DataIntegrityError) {
	d, err := t.Amount.Decimal()
	if err != nil {
		return decimal.Zero, &DataIntegrityError{ID: t.ID, Field: "amount", Value: string(t.Amount), Err: err}
	}

	if d.IsNegative() {
		return decimal.Zero, &DataIntegrityError{ID: t.ID, Field: "amount", Value: string(t.Amount), Err: errAmountNegative}
	}

	return d, nil
}

// check returns the parsed amount if the transaction can be aggregated.
func (t Transaction) check() (decimal.Decimal, *DataIntegrityError) {
	if !t.Type.Valid() {
		return decimal.Zero, &DataIntegrityError{ID: t.ID, Field: "type", Value: string(t.Type), Err: errTypeUnknown}
	}

	// A record without a date cannot be labeled or assigned to a month
	if t.Date.IsZero() {
		return decimal.Zero, &DataIntegrityError{ID: t.ID, Field: "date", Value: "", Err: errDateMissing}
	}

	return t.value()
}
