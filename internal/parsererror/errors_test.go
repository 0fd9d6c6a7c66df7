package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigError
		expected string
	}{
		{
			name:     "missing key",
			err:      Missing("models.bank.columns.date"),
			expected: "configuration models.bank.columns.date: missing required configuration",
		},
		{
			name: "invalid value with cause",
			err: &ConfigError{
				Key:    "run.fromDate",
				Reason: "invalid date",
				Err:    errors.New("bad month"),
			},
			expected: "configuration run.fromDate: invalid date: bad month",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestRowError(t *testing.T) {
	cause := &InvalidFormatError{Value: "31/02", ExpectedFormat: "dd/MM/yyyy", Msg: "invalid date format"}
	err := &RowError{Line: 7, Field: "date", Value: "31/02", Err: cause}

	assert.Equal(t, "line 7: failed to parse date='31/02': invalid date format: '31/02' (expected dd/MM/yyyy)", err.Error())

	var target *InvalidFormatError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "31/02", target.Value)
}

func TestStreamError(t *testing.T) {
	cause := errors.New("unexpected EOF")

	withLine := &StreamError{Source: "bank.csv", Line: 12, Err: cause}
	assert.Equal(t, "reading bank.csv at line 12: unexpected EOF", withLine.Error())
	assert.True(t, errors.Is(withLine, cause))

	noLine := &StreamError{Source: "stdin", Err: cause}
	assert.Equal(t, "reading stdin: unexpected EOF", noLine.Error())
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("resolving model: %w", Missing("models.x.columns.amount"))

	var cfgErr *ConfigError
	assert.True(t, errors.As(wrapped, &cfgErr))
	assert.Equal(t, "models.x.columns.amount", cfgErr.Key)
}
