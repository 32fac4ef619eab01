package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iwvelando/estate-calc/internal/calculator"
	"github.com/iwvelando/estate-calc/pkg/loans"
	"github.com/iwvelando/estate-calc/pkg/units"
)

func defaultPlan() loans.Plan {
	return loans.NewPlan(loans.LoanInput{Principal: 500000, AnnualRatePercent: 7.5, Tenure: 20, TenureUnit: loans.TenureYears}, false)
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	PrettyFormat(&buf, defaultPlan())
	output := buf.String()

	expected := []string{
		"--- Loan plan ---",
		"Loan amount    | $500,000.00",
		"Interest rate  | 7.50%",
		"Tenure         | 240 months",
		"Monthly EMI    | $4,027.97",
		"Total interest | $466,711.83",
		"Month | EMI | Principal | Interest | Balance",
		"1 | $4,027.97 | $902.97 | $3,125.00 | $499,097.03",
		"12 | $4,027.97 |",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("PrettyFormat output missing %q\n%s", want, output)
		}
	}
}

func TestPrettyFormatEmptyPlan(t *testing.T) {
	var buf bytes.Buffer
	PrettyFormat(&buf, loans.NewPlan(loans.LoanInput{TenureUnit: loans.TenureYears}, false))
	output := buf.String()

	if !strings.Contains(output, "Monthly EMI    | -") {
		t.Errorf("PrettyFormat missing empty payment marker\n%s", output)
	}
	if strings.Contains(output, "Month | EMI") {
		t.Errorf("PrettyFormat should not print a schedule for an empty plan\n%s", output)
	}
}

func TestCsvString(t *testing.T) {
	csv := CsvString(defaultPlan())
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

	if len(lines) != 13 {
		t.Fatalf("expected header plus 12 rows, got %d lines", len(lines))
	}
	if lines[0] != `"month","emi","principal","interest","balance"` {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != `"1","4027.97","902.97","3125.00","499097.03"` {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestCsvFormatMatchesCsvString(t *testing.T) {
	var buf bytes.Buffer
	CsvFormat(&buf, defaultPlan())
	if buf.String() != CsvString(defaultPlan()) {
		t.Error("CsvFormat output differs from CsvString")
	}
}

func TestConversions(t *testing.T) {
	conversions := []Conversion{
		{
			Form:   calculator.ConverterForm{Family: "area", Value: "1", From: "acre", To: "sqft"},
			Result: units.Result{OK: true, Value: 43560},
		},
		{
			Form:   calculator.ConverterForm{Family: "length", Value: "", From: "feet", To: "meters"},
			Result: units.Result{},
		},
	}

	var pretty bytes.Buffer
	PrettyConversions(&pretty, conversions)
	if !strings.Contains(pretty.String(), "1 acre = 43560.000000 sqft") {
		t.Errorf("PrettyConversions missing converted line\n%s", pretty.String())
	}
	if !strings.Contains(pretty.String(), " feet = - meters") {
		t.Errorf("PrettyConversions missing empty result marker\n%s", pretty.String())
	}

	var csv bytes.Buffer
	CsvConversions(&csv, conversions)
	if !strings.Contains(csv.String(), `"area","1","acre","sqft","43560.000000"`) {
		t.Errorf("CsvConversions missing converted row\n%s", csv.String())
	}
	if !strings.Contains(csv.String(), `"length","","feet","meters",""`) {
		t.Errorf("CsvConversions missing empty row\n%s", csv.String())
	}
}
