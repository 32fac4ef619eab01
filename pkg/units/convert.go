package units

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/iwvelando/estate-calc/pkg/constants"
	"github.com/iwvelando/estate-calc/pkg/mathutil"
	"github.com/iwvelando/estate-calc/pkg/validation"
)

// Convert converts value from one unit to another through the table's base unit.
// Both units must be present in the table.
func Convert(value float64, from, to Unit, table Table) (float64, error) {
	fromRatio, ok := table.Ratio(from)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a %s unit", ErrUnknownUnit, from, table.Family)
	}
	toRatio, ok := table.Ratio(to)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a %s unit", ErrUnknownUnit, to, table.Family)
	}
	converted := value * fromRatio / toRatio
	if !mathutil.IsFinite(converted) {
		// value*fromRatio may overflow even when the result itself fits.
		converted = value * (fromRatio / toRatio)
	}
	if !mathutil.IsFinite(converted) {
		return 0, fmt.Errorf("%w: %g %s in %s", ErrOutOfRange, value, from, to)
	}
	return converted, nil
}

// Result is the outcome of converting a text field. OK is false when the text
// did not hold a number, in which case there is nothing to show.
type Result struct {
	OK    bool
	Value float64
}

// Display renders the result with six fractional digits, or an empty string
// when there is no result.
func (r Result) Display() string {
	if !r.OK || !mathutil.IsFinite(r.Value) {
		return ""
	}
	return strconv.FormatFloat(mathutil.RoundTo(r.Value, constants.DisplayDigits), 'f', constants.DisplayDigits, 64)
}

// ConvertText parses text as a number and converts it. Empty or non-numeric text,
// or a value too large to convert, gives an empty Result; unknown units are
// still reported as errors.
func ConvertText(text string, from, to Unit, table Table) (Result, error) {
	// Check units first so a bad selector fails even while the field is empty.
	if _, err := Convert(0, from, to, table); err != nil {
		return Result{}, err
	}

	value, ok := validation.ParseQuantity(text)
	if !ok {
		return Result{}, nil
	}

	converted, err := Convert(value, from, to, table)
	if errors.Is(err, ErrOutOfRange) {
		return Result{}, nil
	}
	if err != nil {
		return Result{}, err
	}
	return Result{OK: true, Value: converted}, nil
}
