package loans

import (
	"github.com/iwvelando/estate-calc/pkg/mathutil"
	"go.uber.org/zap"
)

// Plan is a loan summary together with the schedule derived from it.
type Plan struct {
	Input        LoanInput
	TenureMonths int
	Result       LoanResult
	Schedule     []AmortizationRow
}

// NewPlan computes the monthly payment and then builds the schedule from that
// same payment. When full is false only the display rows are produced.
func NewPlan(in LoanInput, full bool) Plan {
	months := in.TenureMonths()
	result := Compute(in)

	plan := Plan{Input: in, TenureMonths: months, Result: result}
	if result.MonthlyPayment <= 0 {
		return plan
	}

	if full {
		plan.Schedule = FullSchedule(in.Principal, in.AnnualRatePercent, months, result.MonthlyPayment)
	} else {
		plan.Schedule = Schedule(in.Principal, in.AnnualRatePercent, months, result.MonthlyPayment)
	}
	return plan
}

// Empty reports whether the plan carries no payment, i.e. the input was incomplete.
func (p Plan) Empty() bool {
	return !mathutil.IsFinite(p.Result.MonthlyPayment) || p.Result.MonthlyPayment <= 0
}

// Calculator produces loan plans and logs how they were derived.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator creates a new calculator instance
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// Plan computes a plan for the input.
func (c *Calculator) Plan(in LoanInput, full bool) Plan {
	plan := NewPlan(in, full)
	if plan.Empty() {
		c.logger.Debug("incomplete loan input, returning empty plan",
			zap.String("op", "loans.Plan"),
			zap.Float64("principal", in.Principal),
			zap.Float64("rate", in.AnnualRatePercent),
			zap.Int("tenureMonths", plan.TenureMonths),
		)
		return plan
	}

	c.logger.Debug("computed loan plan",
		zap.String("op", "loans.Plan"),
		zap.Float64("payment", plan.Result.MonthlyPayment),
		zap.Int("tenureMonths", plan.TenureMonths),
		zap.Int("rows", len(plan.Schedule)),
		zap.Bool("full", full),
	)
	return plan
}
