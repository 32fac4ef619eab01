// Package cache stores computed calculator responses keyed by their canonical input.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/iwvelando/estate-calc/pkg/loans"
)

// Repository is a byte-oriented cache with per-entry expiry.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// PlanKey returns the cache key of a loan plan. Inputs that parse to the same
// numbers share a key regardless of how they were typed.
func PlanKey(in loans.LoanInput, full bool) string {
	return fmt.Sprintf("emi:%s:%s:%d:%t",
		strconv.FormatFloat(in.Principal, 'g', -1, 64),
		strconv.FormatFloat(in.AnnualRatePercent, 'g', -1, 64),
		in.TenureMonths(),
		full,
	)
}
