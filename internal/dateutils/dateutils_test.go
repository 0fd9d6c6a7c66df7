package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutFromPattern(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected string
		wantErr  bool
	}{
		{"european slash", "dd/MM/yyyy", "02/01/2006", false},
		{"swiss dots", "dd.MM.yyyy", "02.01.2006", false},
		{"iso", "yyyy-MM-dd", "2006-01-02", false},
		{"short year", "d/M/yy", "2/1/06", false},
		{"month name", "d MMM yyyy", "2 Jan 2006", false},
		{"with time", "yyyy-MM-dd HH:mm:ss", "2006-01-02 15:04:05", false},
		{"quoted literal", "yyyy'T'MM", "2006T01", false},
		{"empty", "", "", true},
		{"unknown token", "dd/QQ/yyyy", "", true},
		{"unterminated literal", "yyyy'T", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			layout, err := LayoutFromPattern(tc.pattern)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, layout)
		})
	}
}

func TestParseWithPattern(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    time.Time
		wantErr bool
	}{
		{"european", "05/01/2024", "dd/MM/yyyy", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), false},
		{"padded input", "  31.12.2023 ", "dd.MM.yyyy", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), false},
		{"unpadded day", "7/3/2024", "d/M/yyyy", time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), false},
		{"time dropped", "2024-02-29 17:45:10", "yyyy-MM-dd HH:mm:ss", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"wrong separator", "05-01-2024", "dd/MM/yyyy", time.Time{}, true},
		{"not a date", "yesterday", "dd/MM/yyyy", time.Time{}, true},
		{"empty text", "", "dd/MM/yyyy", time.Time{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseWithPattern(tc.text, tc.pattern)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseISODate(t *testing.T) {
	got, err := ParseISODate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseISODate("15.01.2024")
	assert.Error(t, err)

	assert.Panics(t, func() { MustParseISODate("nope") })
}

func TestFormatting(t *testing.T) {
	date := time.Date(2024, time.March, 9, 22, 10, 0, 0, time.UTC)

	assert.Equal(t, "20240309", FormatOFX(date))
	assert.Equal(t, "2024-03-09", ToISODate(date))
}

func TestTruncateToDay(t *testing.T) {
	zone := time.FixedZone("CET", 3600)
	date := time.Date(2024, 6, 1, 23, 30, 0, 0, zone)

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), TruncateToDay(date))
}

func TestCompareDates(t *testing.T) {
	morning := time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 1, 5, 20, 0, 0, 0, time.UTC)
	next := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, CompareDates(morning, evening))
	assert.Equal(t, -1, CompareDates(evening, next))
	assert.Equal(t, 1, CompareDates(next, morning))
}
