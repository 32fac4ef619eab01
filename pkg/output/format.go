// Package output provides utilities for formatting and displaying calculator results.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/estate-calc/internal/calculator"
	"github.com/iwvelando/estate-calc/pkg/format"
	"github.com/iwvelando/estate-calc/pkg/loans"
	"github.com/iwvelando/estate-calc/pkg/units"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Conversion pairs a converter form with the result computed from it.
type Conversion struct {
	Form   calculator.ConverterForm
	Result units.Result
}

// PrettyFormat outputs a human-readable rather than machine-readable loan plan.
func PrettyFormat(w io.Writer, plan loans.Plan) {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "--- Loan plan ---\n")
	fmt.Fprintf(w, "Loan amount    | %s\n", format.Currency(plan.Input.Principal))
	fmt.Fprintf(w, "Interest rate  | %s\n", format.Percent(plan.Input.AnnualRatePercent))
	fmt.Fprintf(w, "Tenure         | %d months\n", plan.TenureMonths)
	if plan.Empty() {
		fmt.Fprintf(w, "Monthly EMI    | -\n")
		fmt.Fprintf(w, "(loan details incomplete)\n")
		return
	}
	fmt.Fprintf(w, "Monthly EMI    | %s\n", format.Currency(plan.Result.MonthlyPayment))
	fmt.Fprintf(w, "Total interest | %s\n", format.Currency(plan.Result.TotalInterest))
	fmt.Fprintf(w, "Total amount   | %s\n", format.Currency(plan.Result.TotalAmount))
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Month | EMI | Principal | Interest | Balance\n")
	fmt.Fprintf(w, "_____ | ___ | _________ | ________ | _______\n")
	for _, row := range plan.Schedule {
		_, _ = p.Fprintf(w, "%d | $%.2f | $%.2f | $%.2f | $%.2f\n",
			row.Period, row.Payment, row.Principal, row.Interest, row.Balance)
	}
}

// CsvFormat outputs the loan plan schedule in comma-separated value format.
func CsvFormat(w io.Writer, plan loans.Plan) {
	fmt.Fprint(w, CsvString(plan))
}

// CsvString renders the loan plan schedule as CSV.
func CsvString(plan loans.Plan) string {
	var b strings.Builder
	b.WriteString(`"month","emi","principal","interest","balance"`)
	b.WriteString("\n")
	for _, row := range plan.Schedule {
		fmt.Fprintf(&b, `"%d","%.2f","%.2f","%.2f","%.2f"`,
			row.Period, row.Payment, row.Principal, row.Interest, row.Balance)
		b.WriteString("\n")
	}
	return b.String()
}

// PrettyConversions outputs conversions as "value from = result to" lines.
func PrettyConversions(w io.Writer, conversions []Conversion) {
	fmt.Fprintf(w, "--- Conversions ---\n")
	for _, c := range conversions {
		result := c.Result.Display()
		if result == "" {
			result = "-"
		}
		fmt.Fprintf(w, "%s %s = %s %s\n", strings.TrimSpace(c.Form.Value), c.Form.From, result, c.Form.To)
	}
}

// CsvConversions outputs conversions in comma-separated value format.
func CsvConversions(w io.Writer, conversions []Conversion) {
	fmt.Fprintf(w, `"family","value","from","to","result"`)
	fmt.Fprintf(w, "\n")
	for _, c := range conversions {
		fmt.Fprintf(w, `"%s","%s","%s","%s","%s"`,
			c.Form.Family, strings.TrimSpace(c.Form.Value), c.Form.From, c.Form.To, c.Result.Display())
		fmt.Fprintf(w, "\n")
	}
}
