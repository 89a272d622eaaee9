package v1

import (
	"errors"
	"net/http"

	"github.com/gofinances/backend/internal/identity"
	"github.com/gofinances/backend/internal/models"
	"github.com/gofinances/backend/internal/storage"
)

type httpError struct {
	Error string `json:"error" example:"Selecione a categoria"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, identity.ErrMissing) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, models.ErrGeneral) || errors.Is(err, storage.ErrMalformedList) || errors.Is(err, errSaveFailed) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errMonthInvalid = errors.New("could not parse the specified month, did you use YYYY-MM format?")
	errTypeInvalid  = errors.New("the specified transaction type is invalid")
)

// Transaction errors
var (
	errSaveFailed         = errors.New("Não foi possível salvar")
	errDeleteConfirmation = errors.New("the confirmation for deleting all transactions was incorrect")
)
