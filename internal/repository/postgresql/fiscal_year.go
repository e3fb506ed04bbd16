package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/karobarhq/payroll-backend-go/internal/domain/fiscal"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/database"
)

// fiscalCalendar implements fiscal.Calendar over the fiscal_years and
// fiscal_months reference tables. Labels stay opaque to the engine; the
// mapping from label/month to Gregorian dates lives entirely in this data.
type fiscalCalendar struct {
	db *database.DB
}

func NewFiscalCalendar(db *database.DB) fiscal.Calendar {
	return &fiscalCalendar{db: db}
}

func (c *fiscalCalendar) Current(ctx context.Context, at time.Time) (fiscal.Period, error) {
	query := `
		SELECT label, start_date, end_date
		FROM fiscal_years
		WHERE start_date <= $1 AND end_date >= $1
	`

	var p fiscal.Period
	err := c.db.QueryRow(ctx, query, at).Scan(&p.Label, &p.Start, &p.End)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fiscal.Period{}, fiscal.ErrFiscalYearNotFound
		}
		return fiscal.Period{}, fmt.Errorf("failed to resolve current fiscal year: %w", err)
	}

	return p, nil
}

func (c *fiscalCalendar) ByLabel(ctx context.Context, label string) (fiscal.Period, error) {
	query := `
		SELECT label, start_date, end_date
		FROM fiscal_years
		WHERE label = $1
	`

	var p fiscal.Period
	err := c.db.QueryRow(ctx, query, label).Scan(&p.Label, &p.Start, &p.End)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fiscal.Period{}, fiscal.ErrFiscalYearNotFound
		}
		return fiscal.Period{}, fmt.Errorf("failed to resolve fiscal year %q: %w", label, err)
	}

	return p, nil
}

func (c *fiscalCalendar) MonthPeriod(ctx context.Context, label string, month int) (fiscal.Period, error) {
	query := `
		SELECT y.label, m.start_date, m.end_date
		FROM fiscal_months m
		JOIN fiscal_years y ON m.fiscal_year_label = y.label
		WHERE y.label = $1 AND m.month = $2
	`

	var p fiscal.Period
	err := c.db.QueryRow(ctx, query, label, month).Scan(&p.Label, &p.Start, &p.End)
	if err != nil {
		if err == pgx.ErrNoRows {
			return fiscal.Period{}, fiscal.ErrFiscalMonthNotFound
		}
		return fiscal.Period{}, fmt.Errorf("failed to resolve month %d of %q: %w", month, label, err)
	}

	return p, nil
}
