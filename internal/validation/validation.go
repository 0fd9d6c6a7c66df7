// Package validation checks model settings before a run starts.
package validation

import (
	"fmt"
	"unicode/utf8"
)

// ValidateDelimiter checks that a delimiter is exactly one character that
// encoding/csv accepts, and returns it as a rune.
func ValidateDelimiter(delimiter string) (rune, error) {
	if utf8.RuneCountInString(delimiter) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got '%s'", delimiter)
	}
	r, _ := utf8.DecodeRuneInString(delimiter)
	switch r {
	case '"', '\r', '\n', utf8.RuneError:
		return 0, fmt.Errorf("unsupported delimiter '%s'", delimiter)
	}
	return r, nil
}

// ValidateDecimalSeparator accepts "." and ",".
func ValidateDecimalSeparator(sep string) error {
	switch sep {
	case ".", ",":
		return nil
	default:
		return fmt.Errorf("unsupported decimal separator '%s'. Supported separators are '.', ','", sep)
	}
}

// ValidateLineWindow checks a 1-based inclusive line window where a toLine of
// 0 leaves the window open-ended.
func ValidateLineWindow(fromLine, toLine int) error {
	if fromLine < 1 {
		return fmt.Errorf("fromLine must be at least 1, got %d", fromLine)
	}
	if toLine != 0 && toLine < fromLine {
		return fmt.Errorf("toLine %d is before fromLine %d", toLine, fromLine)
	}
	return nil
}

// ValidateColumnIndex checks a 1-based column position.
func ValidateColumnIndex(index int) error {
	if index < 1 {
		return fmt.Errorf("column index must be at least 1, got %d", index)
	}
	return nil
}
