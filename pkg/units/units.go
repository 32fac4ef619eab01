// Package units converts quantities between area or length units through a
// per-family base-unit factor table.
package units

import (
	"errors"
	"fmt"
	"strings"
)

// Family groups units that can be converted into one another.
type Family string

const (
	// Area units, based on square feet.
	Area Family = "area"
	// Length units, based on feet.
	Length Family = "length"
)

// Unit is the key of a unit within its family's factor table.
type Unit string

// Area units.
const (
	SquareFeet  Unit = "sqft"
	SquareMeter Unit = "sqm"
	SquareYard  Unit = "sqyd"
	Acre        Unit = "acre"
	Hectare     Unit = "hectare"
)

// Length units.
const (
	Feet        Unit = "feet"
	Meters      Unit = "meters"
	Yards       Unit = "yards"
	Inches      Unit = "inches"
	Centimeters Unit = "centimeters"
)

var (
	// ErrUnknownUnit is returned when a unit is missing from the factor table in use.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrUnknownFamily is returned for a family other than area or length.
	ErrUnknownFamily = errors.New("unknown unit family")
	// ErrOutOfRange is returned when a conversion overflows float64.
	ErrOutOfRange = errors.New("conversion out of range")
)

// Factor is a unit together with its ratio to the family base unit.
type Factor struct {
	Unit  Unit
	Ratio float64
}

// Table is an ordered factor table for one family. The first entry is the base unit.
type Table struct {
	Family  Family
	Factors []Factor
}

var areaTable = Table{
	Family: Area,
	Factors: []Factor{
		{SquareFeet, 1},
		{SquareMeter, 10.764},
		{SquareYard, 9},
		{Acre, 43560},
		{Hectare, 107639},
	},
}

var lengthTable = Table{
	Family: Length,
	Factors: []Factor{
		{Feet, 1},
		{Meters, 3.28084},
		{Yards, 3},
		{Inches, 0.0833333},
		{Centimeters, 0.0328084},
	},
}

// Families returns the supported families in selector order.
func Families() []Family {
	return []Family{Area, Length}
}

// ParseFamily maps a selector value onto a Family.
func ParseFamily(value string) (Family, error) {
	switch Family(strings.ToLower(strings.TrimSpace(value))) {
	case Area:
		return Area, nil
	case Length:
		return Length, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFamily, value)
	}
}

// TableFor returns the factor table of a family.
func TableFor(family Family) (Table, error) {
	switch family {
	case Area:
		return areaTable, nil
	case Length:
		return lengthTable, nil
	default:
		return Table{}, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
}

// FamilyOf finds the family a unit belongs to.
func FamilyOf(unit Unit) (Family, error) {
	for _, family := range Families() {
		table, _ := TableFor(family)
		if _, ok := table.Ratio(unit); ok {
			return family, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
}

// Base returns the base unit of the table.
func (t Table) Base() Unit {
	if len(t.Factors) == 0 {
		return ""
	}
	return t.Factors[0].Unit
}

// Units returns the table's units in selector order.
func (t Table) Units() []Unit {
	result := make([]Unit, 0, len(t.Factors))
	for _, factor := range t.Factors {
		result = append(result, factor.Unit)
	}
	return result
}

// Ratio returns the ratio of unit to the base unit.
func (t Table) Ratio(unit Unit) (float64, bool) {
	for _, factor := range t.Factors {
		if factor.Unit == unit {
			return factor.Ratio, true
		}
	}
	return 0, false
}

// Validate checks that the base factor is exactly 1 and every ratio is positive.
func (t Table) Validate() error {
	if len(t.Factors) == 0 {
		return fmt.Errorf("%s table has no units", t.Family)
	}
	if t.Factors[0].Ratio != 1 {
		return fmt.Errorf("%s base unit %s has factor %v, expected 1", t.Family, t.Factors[0].Unit, t.Factors[0].Ratio)
	}
	seen := make(map[Unit]struct{}, len(t.Factors))
	for _, factor := range t.Factors {
		if factor.Ratio <= 0 {
			return fmt.Errorf("%s unit %s has non-positive factor %v", t.Family, factor.Unit, factor.Ratio)
		}
		if _, dup := seen[factor.Unit]; dup {
			return fmt.Errorf("%s unit %s listed twice", t.Family, factor.Unit)
		}
		seen[factor.Unit] = struct{}{}
	}
	return nil
}
