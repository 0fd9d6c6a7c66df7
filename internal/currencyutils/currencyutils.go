// Package currencyutils provides the amount and currency operations used by
// the parser, the resolver and the OFX generator.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ThousandsSeparatorFor returns the grouping character implied by a decimal
// separator: "," when decimals use ".", otherwise ".".
func ThousandsSeparatorFor(decimalSep string) string {
	if decimalSep == "." {
		return ","
	}
	return "."
}

// ParseLocalizedAmount parses a bank amount written with the given decimal
// separator. Every thousands separator is removed, the first decimal
// separator becomes ".", and a blank value is zero.
func ParseLocalizedAmount(amountStr, decimalSep string) (decimal.Decimal, error) {
	amountStr = strings.TrimSpace(amountStr)
	if amountStr == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr, decimalSep)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount rewrites a localized amount into the form accepted by
// decimal.NewFromString.
func StandardizeAmount(amountStr, decimalSep string) string {
	amountStr = strings.TrimPrefix(strings.TrimSpace(amountStr), "+")
	amountStr = strings.ReplaceAll(amountStr, ThousandsSeparatorFor(decimalSep), "")
	if decimalSep != "." {
		amountStr = strings.Replace(amountStr, decimalSep, ".", 1)
	}
	return amountStr
}

// ValidateCurrencyCode checks an ISO 4217 code against the go-money currency
// table and returns it upper-cased.
func ValidateCurrencyCode(code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return "", fmt.Errorf("empty currency code")
	}
	if money.GetCurrency(normalized) == nil {
		return "", fmt.Errorf("unknown currency code '%s'", code)
	}
	return normalized, nil
}

// FormatAmount renders an amount for humans in the given currency, e.g.
// "CHF 1,234.50". Unknown currencies fall back to "<amount> <code>".
func FormatAmount(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + currency
	}

	factor := decimal.New(1, int32(cur.Fraction))
	minor := amount.Mul(factor).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// IsNegative checks if an amount is negative
func IsNegative(amount decimal.Decimal) bool {
	return amount.LessThan(decimal.Zero)
}
