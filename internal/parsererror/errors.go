// Package parsererror defines the error types raised while resolving
// configuration and reading statement files.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrNoStatements reports that nothing survived parsing and filtering.
// It is a condition, not a failure: callers log a warning and stop.
var ErrNoStatements = errors.New("no statements to process")

// ConfigError is a missing or invalid configuration value. It is fatal and
// raised before any input is read.
type ConfigError struct {
	Key    string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration %s: %s: %v", e.Key, e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration %s: %s", e.Key, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Missing builds the ConfigError for an absent required key.
func Missing(key string) *ConfigError {
	return &ConfigError{Key: key, Reason: "missing required configuration"}
}

// RowError is a failure to extract one CSV row. The parser logs it and moves
// on to the next row.
type RowError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: failed to parse %s='%s': %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// StreamError is a failure of the input as a whole (unreadable source,
// malformed CSV). It aborts the run.
type StreamError struct {
	Source string
	Line   int
	Err    error
}

func (e *StreamError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("reading %s at line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("reading %s: %v", e.Source, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

// InvalidFormatError reports a value that does not match the format the
// model declares for it.
type InvalidFormatError struct {
	Value          string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%s: '%s' (expected %s)", e.Msg, e.Value, e.ExpectedFormat)
}
