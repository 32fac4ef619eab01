// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/estate-calc/pkg/loans"
)

// FindRow finds the schedule row for a 1-based period.
// Returns a pointer to the row if found, nil otherwise.
func FindRow(schedule []loans.AmortizationRow, period int) *loans.AmortizationRow {
	for i := range schedule {
		if schedule[i].Period == period {
			return &schedule[i]
		}
	}
	return nil
}

// LastRow returns the final row of a schedule, or nil when it is empty.
func LastRow(schedule []loans.AmortizationRow) *loans.AmortizationRow {
	if len(schedule) == 0 {
		return nil
	}
	return &schedule[len(schedule)-1]
}
