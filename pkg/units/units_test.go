package units

import (
	"errors"
	"testing"
)

func TestTablesValidate(t *testing.T) {
	for _, family := range Families() {
		table, err := TableFor(family)
		if err != nil {
			t.Fatalf("TableFor(%s) error = %v", family, err)
		}
		if err := table.Validate(); err != nil {
			t.Errorf("%s table invalid: %v", family, err)
		}
	}
}

func TestTableBaseUnits(t *testing.T) {
	area, _ := TableFor(Area)
	if area.Base() != SquareFeet {
		t.Errorf("area base = %s, expected sqft", area.Base())
	}
	length, _ := TableFor(Length)
	if length.Base() != Feet {
		t.Errorf("length base = %s, expected feet", length.Base())
	}
}

func TestTableUnitsOrder(t *testing.T) {
	area, _ := TableFor(Area)
	expected := []Unit{SquareFeet, SquareMeter, SquareYard, Acre, Hectare}
	got := area.Units()
	if len(got) != len(expected) {
		t.Fatalf("Units() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Units()[%d] = %s, expected %s", i, got[i], expected[i])
		}
	}
}

func TestValidateRejectsBadTables(t *testing.T) {
	tests := []struct {
		name  string
		table Table
	}{
		{"Empty", Table{Family: Area}},
		{"Base not one", Table{Family: Area, Factors: []Factor{{SquareMeter, 10.764}}}},
		{"Non-positive factor", Table{Family: Length, Factors: []Factor{{Feet, 1}, {Meters, 0}}}},
		{"Duplicate unit", Table{Family: Length, Factors: []Factor{{Feet, 1}, {Feet, 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.table.Validate(); err == nil {
				t.Error("Validate() expected error but got none")
			}
		})
	}
}

func TestParseFamily(t *testing.T) {
	if f, err := ParseFamily(" Area "); err != nil || f != Area {
		t.Errorf("ParseFamily(\" Area \") = (%s, %v)", f, err)
	}
	if f, err := ParseFamily("length"); err != nil || f != Length {
		t.Errorf("ParseFamily(\"length\") = (%s, %v)", f, err)
	}
	if _, err := ParseFamily("volume"); !errors.Is(err, ErrUnknownFamily) {
		t.Errorf("ParseFamily(\"volume\") error = %v, expected ErrUnknownFamily", err)
	}
	if _, err := TableFor("volume"); !errors.Is(err, ErrUnknownFamily) {
		t.Errorf("TableFor(\"volume\") error = %v, expected ErrUnknownFamily", err)
	}
}

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		unit     Unit
		expected Family
	}{
		{SquareYard, Area},
		{Hectare, Area},
		{Inches, Length},
		{Meters, Length},
	}

	for _, tt := range tests {
		got, err := FamilyOf(tt.unit)
		if err != nil || got != tt.expected {
			t.Errorf("FamilyOf(%s) = (%s, %v), expected %s", tt.unit, got, err, tt.expected)
		}
	}

	if _, err := FamilyOf("furlong"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("FamilyOf(\"furlong\") error = %v, expected ErrUnknownUnit", err)
	}
}
