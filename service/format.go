package service

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders amount as US dollars, e.g. $1,234.50 or -$12.00.
// Cents are rounded half away from zero. Negative amounts keep their sign
// even when they round to zero.
func FormatCurrency(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return "$NaN"
	case math.IsInf(amount, 1):
		return "$∞"
	case math.IsInf(amount, -1):
		return "-$∞"
	}

	sign := ""
	if math.Signbit(amount) {
		sign = "-"
	}

	fixed := decimal.NewFromFloat(math.Abs(amount)).Round(2).StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")

	return sign + "$" + groupThousands(whole) + "." + cents
}

// groupThousands inserts commas into a run of digits.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
