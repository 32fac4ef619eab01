package loans

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/estate-calc/pkg/constants"
)

// TenureUnit is the unit a loan tenure is expressed in.
type TenureUnit string

const (
	// TenureMonths expresses the tenure as a count of monthly periods.
	TenureMonths TenureUnit = "months"
	// TenureYears expresses the tenure in years of twelve periods each.
	TenureYears TenureUnit = "years"
)

// ErrInvalidTenureUnit is returned when a tenure unit is not months or years.
var ErrInvalidTenureUnit = errors.New("invalid tenure unit")

// ParseTenureUnit maps a form selector value onto a TenureUnit.
func ParseTenureUnit(value string) (TenureUnit, error) {
	switch TenureUnit(strings.ToLower(strings.TrimSpace(value))) {
	case TenureMonths:
		return TenureMonths, nil
	case TenureYears:
		return TenureYears, nil
	default:
		return "", fmt.Errorf("%w: expected %s or %s, got %q", ErrInvalidTenureUnit, TenureMonths, TenureYears, value)
	}
}

// Months converts a tenure in this unit into a number of monthly periods.
func (u TenureUnit) Months(tenure int) int {
	if u == TenureYears {
		return tenure * constants.MonthsPerYear
	}
	return tenure
}
