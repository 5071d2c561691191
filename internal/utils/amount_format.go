package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatThousands renders an amount with dot-grouped thousands for the
// dashboard totals, e.g. 2000000 -> "2.000.000". Amounts are whole pesos;
// any fractional part is truncated before grouping.
func FormatThousands(amount decimal.Decimal) string {
	digits := amount.Truncate(0).String()

	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
