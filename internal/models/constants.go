package models

// OFX transaction types
const (
	TransactionTypeCredit = "CREDIT"
	TransactionTypeDebit  = "DEBIT"
)

// OFX account type emitted for every statement.
const AccountTypeChecking = "CHECKING"

// DefaultFromDate is the statement window floor used when none is configured.
const DefaultFromDate = "2001-01-01"

// Parse setting defaults applied when a model leaves them out.
const (
	DefaultDelimiter        = ","
	DefaultFromLine         = 1
	DefaultEncoding         = "utf-8"
	DefaultDecimalSeparator = ","
)

// File permissions
const (
	PermissionOutputFile = 0644
	PermissionDirectory  = 0750
)
