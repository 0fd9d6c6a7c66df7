// Package parser provides the statement parsers and their shared plumbing.
package parser

import (
	"io"

	"fjacquet/csv-ofx/internal/common"
	"fjacquet/csv-ofx/internal/logging"
	"fjacquet/csv-ofx/internal/models"
)

// BaseParser provides common functionality for parser implementations.
// Parsers embed it to share logging and normalized CSV export:
//
//	type MyParser struct {
//		BaseParser
//		// parser-specific fields
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a new BaseParser instance with the provided logger.
// If logger is nil, a default logger will be used.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	return BaseParser{
		logger: logger,
	}
}

// SetLogger replaces the parser's logger. A nil logger is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// WriteToCSV writes statements in the normalized CSV layout shared by every
// parser.
func (b *BaseParser) WriteToCSV(statements []models.Statement, out io.Writer) error {
	b.logger.Info("Writing statements to CSV using common writer",
		logging.Field{Key: logging.FieldCount, Value: len(statements)})

	return common.WriteStatementsToCSV(statements, out)
}
