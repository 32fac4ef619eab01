package validation

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount reads a numeric form field. Empty or unparsable text reads as 0,
// which the calculators treat as "not filled in yet".
func ParseAmount(text string) float64 {
	value, ok := ParseQuantity(text)
	if !ok {
		return 0
	}
	return value
}

// ParseQuantity reads a numeric form field and reports whether it held a finite number.
func ParseQuantity(text string) (float64, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// ParseCount reads a whole-number form field such as a tenure. Fractions are
// truncated; empty, unparsable or out-of-range text reads as 0.
func ParseCount(text string) int {
	value := ParseAmount(text)
	if value <= 0 || value > math.MaxInt32 {
		return 0
	}
	return int(math.Trunc(value))
}
