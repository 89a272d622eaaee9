package models

import (
	"errors"
)

var (
	// ErrGeneral replaces driver errors that the user cannot act on. The
	// driver error is logged instead.
	ErrGeneral = errors.New("the database could not process the request")

	// ErrResourceNotFound is wrapped with the name of the table that was queried.
	ErrResourceNotFound = errors.New("no stored value")
)
