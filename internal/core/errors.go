package core

import (
	"errors"
)

var (
	// ErrBankNotFound is a configuration failure: the requested target bank
	// is not in the catalog. It is never mixed into per-record error lists.
	ErrBankNotFound = errors.New("bank not found in catalog")

	// ErrBatchInvalid means the batch failed validation and must not be
	// exported.
	ErrBatchInvalid = errors.New("batch failed validation")

	// ErrEmptyBatch means no payments were selected.
	ErrEmptyBatch = errors.New("no payments selected")
)
