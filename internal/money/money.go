// Package money provides the canonical amount representation and the
// free-text amount sanitizer shared by all document templates.
//
// Amounts are decimal values quantized to 2 fractional places (fen). All
// arithmetic goes through shopspring/decimal so totals never pick up binary
// float artifacts.
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is the canonical zero amount.
var Zero = decimal.Zero

var validAmountRe = regexp.MustCompile(`^(\d+(\.\d{1,2})?|\.\d{1,2})$`)

// Sanitize cleans free-text numeric input into a canonical decimal string.
// Every character that is not a digit or '.' is stripped. When more than one
// '.' is present the first one is kept as the separator and the remaining
// digit runs are concatenated after it. The fractional segment is truncated
// (not rounded) to at most 2 digits. A trailing bare separator is dropped,
// and input with no digits at all yields "", so every non-empty result
// satisfies IsValid and parses cleanly.
//
// Sanitize is idempotent: Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(raw string) string {
	var kept strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			kept.WriteRune(r)
		}
	}
	s := kept.String()
	if s == "" {
		return ""
	}

	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s
	}

	intPart := s[:dot]
	frac := strings.ReplaceAll(s[dot+1:], ".", "")
	if len(frac) > 2 {
		frac = frac[:2]
	}
	if frac == "" {
		return intPart
	}
	return intPart + "." + frac
}

// Parse converts raw input to an amount rounded to the nearest fen using
// round-half-away-from-zero. Empty or non-numeric input parses as 0; Parse
// never returns an error. Callers that accept keyboard input should run
// Sanitize first (the sanitize-before-parse pipeline), so "12.345" becomes
// "12.34" before rounding ever applies.
func Parse(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" || s == "." {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Round(2)
}

// IsValid reports whether raw is an acceptable amount literal. The empty
// string is valid ("not yet entered" is not an input error); otherwise the
// input must be digits with an optional '.' followed by 1-2 digits.
func IsValid(raw string) bool {
	if raw == "" {
		return true
	}
	return validAmountRe.MatchString(raw)
}

// FromFen builds an amount from an integer number of fen.
func FromFen(fen int64) decimal.Decimal {
	return decimal.New(fen, -2)
}

// Fen returns the amount as an integer number of fen, rounding half away
// from zero when the amount carries more than 2 fractional digits.
func Fen(amount decimal.Decimal) int64 {
	return amount.Round(2).Shift(2).IntPart()
}

// IsPositive reports whether the amount is strictly greater than zero.
func IsPositive(amount decimal.Decimal) bool {
	return amount.IsPositive()
}
