// Package format renders numbers for display.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := groupThousands(math.Abs(amount), 2)
	if amount < 0 && formatted != "0.00" {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent returns a rate with two decimals and a percent sign (e.g., "7.50%").
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}

// Quantity returns a non-currency value with separators and the given number of decimals.
func Quantity(value float64, decimals int) string {
	formatted := groupThousands(math.Abs(value), decimals)
	if value < 0 {
		return "-" + formatted
	}
	return formatted
}

func groupThousands(value float64, decimals int) string {
	formatted := strconv.FormatFloat(value, 'f', decimals, 64)
	intPart, decPart, hasDec := strings.Cut(formatted, ".")

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	if !hasDec {
		return intPart
	}
	return intPart + "." + decPart
}
