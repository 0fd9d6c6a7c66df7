package parser

import (
	"io"

	"fjacquet/csv-ofx/internal/models"
)

// EmitFunc receives each accepted statement as soon as its row is read.
// Returning an error stops parsing and the error is returned from Parse.
type EmitFunc func(models.Statement) error

// Parser turns a statement export into domain statements.
type Parser interface {
	// Parse reads r and hands every extracted, filtered statement to emit in
	// input order. Malformed rows are logged and skipped; failures of the
	// stream itself abort with a *parsererror.StreamError.
	Parse(r io.Reader, emit EmitFunc) error

	// ParseAll collects what Parse emits.
	ParseAll(r io.Reader) ([]models.Statement, error)
}
