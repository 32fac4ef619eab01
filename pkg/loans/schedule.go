package loans

import (
	"github.com/iwvelando/estate-calc/pkg/mathutil"
)

// AmortizationRow holds the values for a given payment period.
type AmortizationRow struct {
	Period    int
	Payment   float64
	Interest  float64
	Principal float64
	Balance   float64
}

// Schedule builds the first rows of the amortization schedule, at most twelve.
// The schedule is always derived from the monthlyPayment it is given, so callers
// must pass the payment computed from the same inputs.
func Schedule(principal, annualRatePercent float64, tenureMonths int, monthlyPayment float64) []AmortizationRow {
	return buildSchedule(principal, annualRatePercent, monthlyPayment, DisplayMonths(tenureMonths))
}

// FullSchedule builds every period of the amortization schedule.
func FullSchedule(principal, annualRatePercent float64, tenureMonths int, monthlyPayment float64) []AmortizationRow {
	return buildSchedule(principal, annualRatePercent, monthlyPayment, tenureMonths)
}

func buildSchedule(principal, annualRatePercent, monthlyPayment float64, periods int) []AmortizationRow {
	if periods <= 0 || !mathutil.IsFinite(principal) || !mathutil.IsFinite(monthlyPayment) {
		return nil
	}

	rows := make([]AmortizationRow, 0, periods)
	balance := principal
	for period := 1; period <= periods; period++ {
		interest := CalculateInterestPayment(balance, annualRatePercent)
		principalPortion := monthlyPayment - interest
		balance -= principalPortion

		rows = append(rows, AmortizationRow{
			Period:    period,
			Payment:   monthlyPayment,
			Interest:  interest,
			Principal: principalPortion,
			Balance:   mathutil.Max(0, balance),
		})
	}
	return rows
}
