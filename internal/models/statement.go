// Package models holds the domain types shared by the resolver, the CSV
// parser and the OFX generator.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement is one transaction read from a CSV row. It is built once by the
// parser and never modified afterwards.
type Statement struct {
	Date     time.Time
	Payee    string
	Category string
	// Amount is signed: positive for credits, negative for debits.
	Amount decimal.Decimal
	Memo   Optional[string]
	// Label is a comma-separated list of tags.
	Label     Optional[string]
	Reference string
	Account   Optional[string]
}

// IsCredit reports whether the statement brings money in. Zero amounts count
// as credits.
func (s Statement) IsCredit() bool {
	return !s.Amount.IsNegative()
}
