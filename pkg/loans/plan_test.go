package loans

import (
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewPlanUsesCurrentPayment(t *testing.T) {
	in := LoanInput{Principal: 500000, AnnualRatePercent: 7.5, Tenure: 20, TenureUnit: TenureYears}
	plan := NewPlan(in, false)

	if plan.TenureMonths != 240 {
		t.Fatalf("TenureMonths = %d, expected 240", plan.TenureMonths)
	}
	if len(plan.Schedule) != 12 {
		t.Fatalf("Schedule has %d rows, expected 12", len(plan.Schedule))
	}
	for _, row := range plan.Schedule {
		if row.Payment != plan.Result.MonthlyPayment {
			t.Fatalf("row %d payment %.6f differs from plan payment %.6f", row.Period, row.Payment, plan.Result.MonthlyPayment)
		}
	}

	// Changing the tenure unit must change both the payment and the schedule.
	in.TenureUnit = TenureMonths
	changed := NewPlan(in, false)
	if changed.Result.MonthlyPayment == plan.Result.MonthlyPayment {
		t.Fatal("payment did not change with tenure unit")
	}
	for _, row := range changed.Schedule {
		if row.Payment != changed.Result.MonthlyPayment {
			t.Fatalf("row %d built from stale payment", row.Period)
		}
	}
	if final := changed.Schedule[len(changed.Schedule)-1].Balance; final > 310000 {
		t.Errorf("balance after 12 of 20 months = %.2f, expected well under 310000", final)
	}
}

func TestNewPlanFull(t *testing.T) {
	plan := NewPlan(LoanInput{Principal: 36000, AnnualRatePercent: 9.9, Tenure: 3, TenureUnit: TenureYears}, true)

	if len(plan.Schedule) != 36 {
		t.Fatalf("Schedule has %d rows, expected 36", len(plan.Schedule))
	}
	if math.Abs(plan.Schedule[35].Balance) > 1e-6 {
		t.Errorf("final balance = %v, expected 0", plan.Schedule[35].Balance)
	}
}

func TestNewPlanEmpty(t *testing.T) {
	plan := NewPlan(LoanInput{Principal: 0, AnnualRatePercent: 7.5, Tenure: 20, TenureUnit: TenureYears}, false)

	if !plan.Empty() {
		t.Fatal("expected empty plan for zero principal")
	}
	if plan.Schedule != nil {
		t.Errorf("expected no schedule, got %d rows", len(plan.Schedule))
	}
}

func TestCalculatorPlan(t *testing.T) {
	calc := NewCalculator(zap.NewNop())
	plan := calc.Plan(LoanInput{Principal: 120000, Tenure: 12, TenureUnit: TenureMonths}, false)

	if plan.Result.MonthlyPayment != 10000 {
		t.Errorf("MonthlyPayment = %v, expected 10000", plan.Result.MonthlyPayment)
	}
	if plan.Result.TotalInterest != 0 {
		t.Errorf("TotalInterest = %v, expected 0", plan.Result.TotalInterest)
	}

	if NewCalculator(nil) == nil {
		t.Error("NewCalculator(nil) returned nil")
	}
	if empty := NewCalculator(nil).Plan(LoanInput{}, true); !empty.Empty() {
		t.Error("expected empty plan for empty input")
	}
}

func TestNewPlanVeryLongTenure(t *testing.T) {
	plan := NewPlan(LoanInput{Principal: 500000, AnnualRatePercent: 7.5, Tenure: 10000, TenureUnit: TenureYears}, false)

	if plan.Empty() {
		t.Fatal("expected a plan for a very long tenure")
	}
	if len(plan.Schedule) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(plan.Schedule))
	}
	for _, row := range plan.Schedule {
		if math.IsNaN(row.Balance) || math.IsInf(row.Balance, 0) {
			t.Fatalf("row %d has non-finite balance %v", row.Period, row.Balance)
		}
	}
}

func TestPlanEmptyRejectsNonFinitePayment(t *testing.T) {
	plan := Plan{Result: LoanResult{MonthlyPayment: math.NaN()}}
	if !plan.Empty() {
		t.Error("expected a NaN payment to read as empty")
	}
	plan.Result.MonthlyPayment = math.Inf(1)
	if !plan.Empty() {
		t.Error("expected an infinite payment to read as empty")
	}
}

func TestCalculatorPlanLogsStructuredFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	calc := NewCalculator(zap.New(core))

	plan := calc.Plan(LoanInput{Principal: 500000, AnnualRatePercent: 7.5, Tenure: 20, TenureUnit: TenureYears}, false)

	entries := logs.FilterMessage("computed loan plan").All()
	if len(entries) != 1 {
		t.Fatalf("expected one plan log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["payment"] != plan.Result.MonthlyPayment {
		t.Errorf("payment field = %v, expected %v", fields["payment"], plan.Result.MonthlyPayment)
	}
	if fields["tenureMonths"] != int64(240) {
		t.Errorf("tenureMonths field = %v, expected 240", fields["tenureMonths"])
	}
	if fields["op"] != "loans.Plan" {
		t.Errorf("op field = %v, expected loans.Plan", fields["op"])
	}
}
