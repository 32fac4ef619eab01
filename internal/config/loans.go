package config

import (
	"fmt"

	"github.com/iwvelando/estate-calc/pkg/constants"
	"github.com/iwvelando/estate-calc/pkg/loans"
)

// LoanConfig holds the loan the CLI computes a plan for.
type LoanConfig struct {
	Amount       float64 `yaml:"amount"`
	Rate         float64 `yaml:"rate"` // annual percent
	Tenure       int     `yaml:"tenure"`
	TenureUnit   string  `yaml:"tenureUnit"` // months, years
	FullSchedule bool    `yaml:"fullSchedule"`
}

// ToLoanInput converts the configured loan into engine input.
func (l LoanConfig) ToLoanInput() (loans.LoanInput, error) {
	unit, err := loans.ParseTenureUnit(l.TenureUnit)
	if err != nil {
		return loans.LoanInput{}, err
	}
	return loans.LoanInput{
		Principal:         l.Amount,
		AnnualRatePercent: l.Rate,
		Tenure:            l.Tenure,
		TenureUnit:        unit,
	}, nil
}

// Validate returns warnings for a loan that would produce an empty or unusual plan.
func (l LoanConfig) Validate() []string {
	var warnings []string

	if l.Amount <= 0 {
		warnings = append(warnings, fmt.Sprintf("Loan amount %.2f is not positive - no payment will be computed", l.Amount))
	}
	if l.Rate < 0 {
		warnings = append(warnings, fmt.Sprintf("Loan rate %.2f%% is negative - no payment will be computed", l.Rate))
	}
	if l.Tenure <= 0 {
		warnings = append(warnings, fmt.Sprintf("Loan tenure %d is not positive - no payment will be computed", l.Tenure))
	}

	unit, err := loans.ParseTenureUnit(l.TenureUnit)
	if err != nil {
		warnings = append(warnings, err.Error())
		return warnings
	}
	if months := unit.Months(l.Tenure); months > constants.MaxReasonableTenureMonths {
		warnings = append(warnings, fmt.Sprintf("Loan tenure of %d months exceeds %d months", months, constants.MaxReasonableTenureMonths))
	}
	return warnings
}
