// Package currencyutils parses user-typed amounts and formats decimal amounts
// for display. Rounding to two digits happens here and nowhere else.
package currencyutils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmptyAmount is returned by ParseAmount for blank input.
var ErrEmptyAmount = errors.New("amount is empty")

var currencyMarks = regexp.MustCompile(`(?i)CHF|USD|EUR|GBP|[€$£¥\s]`)

// ParseAmount parses strings such as "1,234.56", "1.234,56", "1'234.56",
// "$ 12" or "12,5" into a decimal. The sign is kept; callers decide whether
// negative values are acceptable.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount strips currency marks and thousands separators and
// normalizes the decimal separator to a dot.
func StandardizeAmount(amountStr string) string {
	s := currencyMarks.ReplaceAllString(amountStr, "")
	s = strings.ReplaceAll(s, "'", "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(s, ".") < strings.LastIndex(s, ",") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		parts := strings.Split(s, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	return s
}

// FormatAmount renders amount with exactly two fractional digits, prefixed by
// symbol. Negative amounts put the sign before the symbol: "-$12.50".
func FormatAmount(amount decimal.Decimal, symbol string) string {
	if amount.IsNegative() {
		return "-" + symbol + amount.Abs().StringFixed(2)
	}
	return symbol + amount.StringFixed(2)
}

// FormatSigned renders amount with an explicit sign, "+$10.00" or "-$10.00".
// Zero is rendered without a sign.
func FormatSigned(amount decimal.Decimal, symbol string) string {
	if amount.IsPositive() {
		return "+" + FormatAmount(amount, symbol)
	}
	return FormatAmount(amount, symbol)
}
