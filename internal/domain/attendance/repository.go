package attendance

import (
	"context"
	"time"
)

// Reader is the narrow read-only contract the calculation engine has with
// the attendance subsystem.
type Reader interface {
	// SummaryByPeriod returns per-employee day counts for a date range.
	// Employees with no rows are absent from the result.
	SummaryByPeriod(ctx context.Context, companyID string, from, to time.Time, employeeIDs []string) ([]Summary, error)

	// WorkingDaysSince counts days the employee was present between from
	// and to, for per-working-days leave accrual.
	WorkingDaysSince(ctx context.Context, employeeID string, from, to time.Time) (int, error)
}
