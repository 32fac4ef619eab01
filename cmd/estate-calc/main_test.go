package main

import (
	"flag"
	"testing"

	"github.com/iwvelando/estate-calc/internal/config"
)

func TestApplyLoanOverridesOnlySetFlags(t *testing.T) {
	fs := flag.NewFlagSet("estate-calc", flag.ContinueOnError)
	amount := fs.Float64("amount", 0, "")
	rate := fs.Float64("rate", 0, "")
	tenure := fs.Int("tenure", 0, "")
	unit := fs.String("tenure-unit", "", "")
	full := fs.Bool("full-schedule", false, "")

	if err := fs.Parse([]string{"-rate", "6.25", "-full-schedule"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	loan := config.LoanConfig{Amount: 500000, Rate: 7.5, Tenure: 20, TenureUnit: "years"}
	applyLoanOverrides(fs, &loan, *amount, *rate, *tenure, *unit, *full)

	expected := config.LoanConfig{Amount: 500000, Rate: 6.25, Tenure: 20, TenureUnit: "years", FullSchedule: true}
	if loan != expected {
		t.Fatalf("got %+v, expected %+v", loan, expected)
	}
}
