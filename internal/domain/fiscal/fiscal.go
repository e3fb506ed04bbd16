package fiscal

import (
	"context"
	"errors"
	"time"
)

var (
	ErrFiscalYearNotFound  = errors.New("fiscal year not found")
	ErrFiscalMonthNotFound = errors.New("fiscal month not found")
)

// Period is a dated slice of a fiscal year. The Label (e.g. "2082/83") is an
// opaque partition key for reference data; the engine never parses it.
type Period struct {
	Label string
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the period, inclusive of both ends.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Calendar resolves fiscal-year labels and month ranges. Implemented over the
// fiscal_years reference table; the rest of the engine treats it as an
// external collaborator.
type Calendar interface {
	// Current returns the fiscal period covering the given date.
	Current(ctx context.Context, at time.Time) (Period, error)

	// ByLabel returns the full period for a fiscal-year label.
	ByLabel(ctx context.Context, label string) (Period, error)

	// MonthPeriod returns the date range of the n-th month (1-12) of the
	// labelled fiscal year.
	MonthPeriod(ctx context.Context, label string, month int) (Period, error)
}
