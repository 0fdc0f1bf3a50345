// Package numeral converts monetary amounts into their Chinese legal
// numeral (大写金额) form for printed contracts and expense documents.
package numeral

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrOutOfRange means the amount is negative or at least 10^15 yuan, beyond
// the supported 兆 grouping. Callers render a blank numeral instead of
// failing the document.
var ErrOutOfRange = errors.New("amount out of range for legal numeral")

var (
	digits     = []string{"零", "壹", "贰", "叁", "肆", "伍", "陆", "柒", "捌", "玖"}
	radixUnits = []string{"", "拾", "佰", "仟"}
	bigUnits   = []string{"", "万", "亿", "兆"}
)

const (
	zeroYuanExact = "零元整"
	maxYuan       = int64(1_000_000_000_000_000) // 10^15
)

// ToLegalNumeral renders a non-negative amount as its Chinese legal numeral.
// The amount is rounded to the nearest fen first; amounts are expected to be
// already quantized to fen by the sanitize/parse pipeline, so the rounding
// here never moves a legitimate value.
func ToLegalNumeral(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", fmt.Errorf("%w: negative amount %s", ErrOutOfRange, amount)
	}
	// Ceiling check must happen on the decimal: shifting an over-ceiling
	// amount into int64 cents first would wrap around and produce a wrong
	// numeral with no error.
	if amount.GreaterThanOrEqual(decimal.New(1, 15)) {
		return "", fmt.Errorf("%w: %s exceeds 10^15 yuan", ErrOutOfRange, amount)
	}

	cents := amount.Round(2).Shift(2).IntPart()
	if cents == 0 {
		return zeroYuanExact, nil
	}

	yuan := cents / 100
	jiao := (cents / 10) % 10
	fen := cents % 10

	// Rounding to fen can push an amount just below the ceiling onto it.
	if yuan >= maxYuan {
		return "", fmt.Errorf("%w: %s exceeds 10^15 yuan", ErrOutOfRange, amount)
	}

	var b strings.Builder
	if yuan > 0 {
		writeInteger(&b, yuan)
		b.WriteString("元")
	}

	switch {
	case jiao == 0 && fen == 0:
		b.WriteString("整")
	default:
		if jiao > 0 {
			b.WriteString(digits[jiao])
			b.WriteString("角")
		}
		if fen > 0 {
			if jiao == 0 && yuan > 0 {
				b.WriteString(digits[0])
			}
			b.WriteString(digits[fen])
			b.WriteString("分")
		}
	}

	return b.String(), nil
}

// writeInteger emits the integer part, most significant digit first. Runs of
// zero digits collapse into a single 零 emitted just before the next nonzero
// digit; a 4-digit group's big-unit marker (万/亿/兆) is skipped only when
// the group consists entirely of suppressed zeros.
func writeInteger(b *strings.Builder, yuan int64) {
	s := strconv.FormatInt(yuan, 10)
	n := len(s)
	pendingZeros := 0

	for i := 0; i < n; i++ {
		p := n - 1 - i // positional exponent, 0 = ones place
		m := p % 4
		q := p / 4
		d := int(s[i] - '0')

		if d == 0 {
			pendingZeros++
		} else {
			if pendingZeros > 0 {
				b.WriteString(digits[0])
				pendingZeros = 0
			}
			b.WriteString(digits[d])
			b.WriteString(radixUnits[m])
		}

		if m == 0 && pendingZeros < 4 {
			b.WriteString(bigUnits[q])
		}
	}
}

// MustLegalNumeral is ToLegalNumeral with the out-of-range degradation
// applied: it returns "" instead of an error so rendering code can inline it.
func MustLegalNumeral(amount decimal.Decimal) string {
	s, err := ToLegalNumeral(amount)
	if err != nil {
		return ""
	}
	return s
}
