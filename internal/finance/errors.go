package finance

import (
	"errors"
	"fmt"
)

// ErrDataIntegrity is matched by every DataIntegrityError.
var ErrDataIntegrity = errors.New("persisted transaction is invalid")

var (
	errAmountNotNumeric = errors.New("amount is not numeric")
	errAmountNegative   = errors.New("amount is negative")
	errTypeUnknown      = errors.New("transaction type is unknown")
	errDateMissing      = errors.New("transaction has no date")
)

// Registration errors. The messages are shown to the user as they are.
var (
	ErrNameRequired        = errors.New("Nome é obrigatório")
	ErrAmountRequired      = errors.New("O valor é obrigatório")
	ErrAmountNotNumeric    = errors.New("Informe um valor numérico")
	ErrAmountNotPositive   = errors.New("O valor não pode ser negativo")
	ErrTypeNotSelected     = errors.New("Selecione o tipo de transação")
	ErrCategoryNotSelected = errors.New("Selecione a categoria")
)

// DataIntegrityError describes a persisted transaction that cannot be aggregated.
type DataIntegrityError struct {
	ID    string // ID of the offending transaction
	Field string // JSON name of the offending field
	Value string // Raw value of the field
	Err   error
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("transaction %q: %s %q: %v", e.ID, e.Field, e.Value, e.Err)
}

func (e *DataIntegrityError) Unwrap() error {
	return e.Err
}

// Is reports ErrDataIntegrity as a match so that callers do not need errors.As
// to classify the error.
func (e *DataIntegrityError) Is(target error) bool {
	return target == ErrDataIntegrity
}
