// Package loans provides the loan amortization engine behind the EMI calculator.
package loans

import (
	"math"

	"github.com/iwvelando/estate-calc/pkg/constants"
	"github.com/iwvelando/estate-calc/pkg/mathutil"
)

// LoanInput holds the parameters of a fully amortizing loan.
type LoanInput struct {
	Principal         float64
	AnnualRatePercent float64
	Tenure            int
	TenureUnit        TenureUnit
}

// TenureMonths returns the tenure expressed in months.
func (in LoanInput) TenureMonths() int {
	return in.TenureUnit.Months(in.Tenure)
}

// LoanResult holds the summary figures for a loan.
type LoanResult struct {
	MonthlyPayment float64
	TotalInterest  float64
	TotalAmount    float64
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using the
// standard amortization formula. Incomplete input (non-positive principal or
// tenure, negative rate, non-finite values) yields 0.
func CalculateMonthlyPayment(principal, annualRatePercent float64, tenureMonths int) float64 {
	if !validTerms(principal, annualRatePercent, tenureMonths) {
		return 0
	}

	periodicInterestRate := mathutil.MonthlyRate(annualRatePercent)
	if periodicInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(tenureMonths)
	}

	// Written with the negative power so very long tenures approach the
	// interest-only limit principal*r instead of Inf/Inf.
	discount := math.Pow(1.00+periodicInterestRate, -float64(tenureMonths))
	payment := principal * periodicInterestRate / (1.00 - discount)
	if !mathutil.IsFinite(payment) || payment <= 0 {
		return 0
	}
	return payment
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualRatePercent float64) float64 {
	return remainingPrincipal * mathutil.MonthlyRate(annualRatePercent)
}

// Compute returns the monthly payment together with the totals it implies.
func Compute(in LoanInput) LoanResult {
	months := in.TenureMonths()
	payment := CalculateMonthlyPayment(in.Principal, in.AnnualRatePercent, months)
	if payment <= 0 {
		return LoanResult{}
	}

	total := payment * float64(months)
	if !mathutil.IsFinite(total) {
		return LoanResult{}
	}
	return LoanResult{
		MonthlyPayment: payment,
		TotalInterest:  total - in.Principal,
		TotalAmount:    total,
	}
}

func validTerms(principal, annualRatePercent float64, tenureMonths int) bool {
	if !mathutil.IsFinite(principal) || !mathutil.IsFinite(annualRatePercent) {
		return false
	}
	return principal > 0 && annualRatePercent >= 0 && tenureMonths > 0
}

// DisplayMonths returns how many schedule rows are shown for a tenure.
func DisplayMonths(tenureMonths int) int {
	if tenureMonths < constants.ScheduleDisplayMonths {
		return tenureMonths
	}
	return constants.ScheduleDisplayMonths
}
