package validation_test

import (
	"testing"

	"fjacquet/csv-ofx/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestValidateDelimiter(t *testing.T) {
	tests := []struct {
		name        string
		delimiter   string
		expected    rune
		expectError bool
	}{
		{name: "comma", delimiter: ",", expected: ','},
		{name: "semicolon", delimiter: ";", expected: ';'},
		{name: "tab", delimiter: "\t", expected: '\t'},
		{name: "pipe", delimiter: "|", expected: '|'},
		{name: "empty", delimiter: "", expectError: true},
		{name: "two characters", delimiter: ";;", expectError: true},
		{name: "quote", delimiter: `"`, expectError: true},
		{name: "newline", delimiter: "\n", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.ValidateDelimiter(tt.delimiter)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidateDecimalSeparator(t *testing.T) {
	assert.NoError(t, validation.ValidateDecimalSeparator("."))
	assert.NoError(t, validation.ValidateDecimalSeparator(","))

	err := validation.ValidateDecimalSeparator("'")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported decimal separator")
}

func TestValidateLineWindow(t *testing.T) {
	tests := []struct {
		name        string
		from, to    int
		expectError bool
	}{
		{"open ended", 2, 0, false},
		{"single line", 3, 3, false},
		{"range", 1, 10, false},
		{"zero from", 0, 0, true},
		{"to before from", 5, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateLineWindow(tt.from, tt.to)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateColumnIndex(t *testing.T) {
	assert.NoError(t, validation.ValidateColumnIndex(1))
	assert.Error(t, validation.ValidateColumnIndex(0))
	assert.Error(t, validation.ValidateColumnIndex(-2))
}
