package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is appended when FormatPrice gets no currency
const DefaultCurrency = "đ"

// FormatPrice floors price to a whole currency unit and groups thousands with '.'
func FormatPrice(price decimal.Decimal, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return groupThousands(price.Floor().IntPart()) + currency
}

func groupThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return sign + b.String()
}

// FormatShortNumber abbreviates counts: 1.2k, 3.4Tr (millions), 1.0T (billions)
func FormatShortNumber(num int64) string {
	switch {
	case num >= 1_000_000_000:
		return fmt.Sprintf("%.1fT", float64(num)/1_000_000_000)
	case num >= 1_000_000:
		return fmt.Sprintf("%.1fTr", float64(num)/1_000_000)
	case num >= 1_000:
		return fmt.Sprintf("%.1fk", float64(num)/1_000)
	default:
		return strconv.FormatInt(num, 10)
	}
}
