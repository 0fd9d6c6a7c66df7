package models

import "time"

// ColumnMapping gives the one-based position of each field in a CSV row.
type ColumnMapping struct {
	Date     int
	Payee    int
	Category int
	Amount   int
	// Account is always resolved from configuration but the parser accepts
	// mappings without it; records then carry no account.
	Account   Optional[int]
	Memo      Optional[int]
	Label     Optional[int]
	Reference Optional[int]
}

// ParseSettings describes how a model's CSV export is laid out.
type ParseSettings struct {
	Delimiter rune
	// FromLine is the first line handed to the CSV reader (1-based).
	FromLine int
	// ToLine is the last line handed to the CSV reader, inclusive. Zero means
	// read until the end of the stream.
	ToLine           int
	Encoding         string
	DateFormat       string
	DecimalSeparator string
}

// ThousandsSeparator is the complement of the decimal separator.
func (p ParseSettings) ThousandsSeparator() string {
	if p.DecimalSeparator == "." {
		return ","
	}
	return "."
}

// AccountSettings are the OFX identifiers of one configured account.
type AccountSettings struct {
	// Key is the identifier the account is configured under.
	Key      string
	BankID   string
	AcctID   string
	Currency string
	// Filter is matched against the CSV account column when set; otherwise
	// Key is.
	Filter Optional[string]
}

// RunSettings are the per-run selections.
type RunSettings struct {
	Account  string
	FromDate Optional[time.Time]
	ToDate   Optional[time.Time]
}
