// Package calculator binds raw form field values to the loan and unit engines.
// Every Recompute call derives its result from the current field values only.
package calculator

import (
	"github.com/iwvelando/estate-calc/pkg/constants"
	"github.com/iwvelando/estate-calc/pkg/loans"
	"github.com/iwvelando/estate-calc/pkg/units"
	"github.com/iwvelando/estate-calc/pkg/validation"
)

// LoanForm holds the EMI calculator fields as typed by the user.
type LoanForm struct {
	LoanAmount   string `json:"loanAmount" yaml:"loanAmount" msgpack:"loanAmount"`
	InterestRate string `json:"interestRate" yaml:"interestRate" msgpack:"interestRate"`
	LoanTenure   string `json:"loanTenure" yaml:"loanTenure" msgpack:"loanTenure"`
	TenureType   string `json:"tenureType" yaml:"tenureType" msgpack:"tenureType"`
}

// DefaultLoanForm returns the values the calculator opens with.
func DefaultLoanForm() LoanForm {
	return LoanForm{
		LoanAmount:   constants.DefaultLoanAmount,
		InterestRate: constants.DefaultInterestRate,
		LoanTenure:   constants.DefaultLoanTenure,
		TenureType:   constants.DefaultTenureUnit,
	}
}

// Input parses the fields. Numeric fields that are empty or unparsable read as
// 0; only an unknown tenure type is an error.
func (f LoanForm) Input() (loans.LoanInput, error) {
	unit, err := loans.ParseTenureUnit(f.TenureType)
	if err != nil {
		return loans.LoanInput{}, err
	}
	return loans.LoanInput{
		Principal:         validation.ParseAmount(f.LoanAmount),
		AnnualRatePercent: validation.ParseAmount(f.InterestRate),
		Tenure:            validation.ParseCount(f.LoanTenure),
		TenureUnit:        unit,
	}, nil
}

// Recompute derives the payment and then the schedule from the current fields.
func (f LoanForm) Recompute(calc *loans.Calculator, full bool) (loans.Plan, error) {
	in, err := f.Input()
	if err != nil {
		return loans.Plan{}, err
	}
	if calc == nil {
		return loans.NewPlan(in, full), nil
	}
	return calc.Plan(in, full), nil
}

// ConverterForm holds the unit converter fields for one family tab.
type ConverterForm struct {
	Family string `json:"family" yaml:"family" msgpack:"family"`
	Value  string `json:"value" yaml:"value" msgpack:"value"`
	From   string `json:"from" yaml:"from" msgpack:"from"`
	To     string `json:"to" yaml:"to" msgpack:"to"`
}

// DefaultConverterForm returns the empty form a family tab opens with.
func DefaultConverterForm(family units.Family) ConverterForm {
	form := ConverterForm{Family: string(family)}
	switch family {
	case units.Area:
		form.From, form.To = string(units.SquareFeet), string(units.SquareMeter)
	case units.Length:
		form.From, form.To = string(units.Feet), string(units.Meters)
	}
	return form
}

// Recompute converts the current value. An empty or non-numeric value gives an
// empty result; an unknown family or unit is an error.
func (f ConverterForm) Recompute() (units.Result, error) {
	family, err := units.ParseFamily(f.Family)
	if err != nil {
		return units.Result{}, err
	}
	table, err := units.TableFor(family)
	if err != nil {
		return units.Result{}, err
	}
	return units.ConvertText(f.Value, units.Unit(f.From), units.Unit(f.To), table)
}
