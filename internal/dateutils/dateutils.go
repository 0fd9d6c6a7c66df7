// Package dateutils provides the date operations used by the parser and the
// OFX generator: model date patterns, ISO run dates and OFX timestamps.
package dateutils

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Common date layouts used throughout the application
const (
	DateLayoutISO = "2006-01-02"
	DateLayoutOFX = "20060102"
)

// patternTokens maps date pattern tokens (the yyyy/MM/dd notation used in
// model configuration) to Go reference-time layout elements.
var patternTokens = map[string]string{
	"yyyy": "2006",
	"y":    "2006",
	"yy":   "06",
	"MMMM": "January",
	"MMM":  "Jan",
	"MM":   "01",
	"M":    "1",
	"LLLL": "January",
	"LLL":  "Jan",
	"LL":   "01",
	"L":    "1",
	"dd":   "02",
	"d":    "2",
	"EEEE": "Monday",
	"EEE":  "Mon",
	"HH":   "15",
	"H":    "15",
	"hh":   "03",
	"h":    "3",
	"mm":   "04",
	"m":    "4",
	"ss":   "05",
	"s":    "5",
	"a":    "PM",
}

// LayoutFromPattern translates a model date pattern such as "dd/MM/yyyy" into
// the equivalent Go layout ("02/01/2006"). Text between single quotes is kept
// literally; any other letter run that is not a known token is an error.
func LayoutFromPattern(pattern string) (string, error) {
	if strings.TrimSpace(pattern) == "" {
		return "", fmt.Errorf("empty date pattern")
	}

	runes := []rune(pattern)
	var layout strings.Builder

	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case r == '\'':
			end := i + 1
			for end < len(runes) && runes[end] != '\'' {
				end++
			}
			if end >= len(runes) {
				return "", fmt.Errorf("unterminated literal in date pattern %q", pattern)
			}
			layout.WriteString(string(runes[i+1 : end]))
			i = end + 1

		case unicode.IsLetter(r):
			end := i
			for end < len(runes) && runes[end] == r {
				end++
			}
			token := string(runes[i:end])
			element, ok := patternTokens[token]
			if !ok {
				return "", fmt.Errorf("unsupported token %q in date pattern %q", token, pattern)
			}
			layout.WriteString(element)
			i = end

		default:
			layout.WriteRune(r)
			i++
		}
	}

	return layout.String(), nil
}

// ParseWithLayout parses trimmed text with a Go layout and returns the
// calendar day at UTC midnight.
func ParseWithLayout(text, layout string) (time.Time, error) {
	t, err := time.Parse(layout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, err
	}
	return TruncateToDay(t), nil
}

// ParseWithPattern parses text with a model date pattern.
func ParseWithPattern(text, pattern string) (time.Time, error) {
	layout, err := LayoutFromPattern(pattern)
	if err != nil {
		return time.Time{}, err
	}
	return ParseWithLayout(text, layout)
}

// ParseISODate parses a YYYY-MM-DD date as UTC midnight.
func ParseISODate(text string) (time.Time, error) {
	t, err := time.Parse(DateLayoutISO, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO date %q: %w", text, err)
	}
	return t, nil
}

// MustParseISODate is ParseISODate for constants known to be valid.
func MustParseISODate(text string) time.Time {
	t, err := ParseISODate(text)
	if err != nil {
		panic(err)
	}
	return t
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// FormatOFX formats a date as the OFX short date form YYYYMMDD.
func FormatOFX(date time.Time) string {
	return date.Format(DateLayoutOFX)
}

// TruncateToDay drops the time of day, keeping the calendar day in UTC.
func TruncateToDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// CompareDates compares two dates and returns:
//
//	-1 if date1 is before date2
//	 0 if date1 is equal to date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	date1 = TruncateToDay(date1)
	date2 = TruncateToDay(date2)

	if date1.Before(date2) {
		return -1
	} else if date1.After(date2) {
		return 1
	} else {
		return 0
	}
}
