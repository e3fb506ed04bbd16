package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/karobarhq/payroll-backend-go/internal/domain/attendance"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/database"
)

// attendanceReader aggregates rows written by the external attendance
// subsystem. Read-only by contract.
type attendanceReader struct {
	db *database.DB
}

func NewAttendanceReader(db *database.DB) attendance.Reader {
	return &attendanceReader{db: db}
}

func (r *attendanceReader) SummaryByPeriod(ctx context.Context, companyID string, from, to time.Time, employeeIDs []string) ([]attendance.Summary, error) {
	query := `
		SELECT employee_id,
			   COUNT(*) FILTER (WHERE status IN ('present', 'leave')) AS working_days,
			   COUNT(*) FILTER (WHERE status = 'present') AS present_days,
			   COUNT(*) FILTER (WHERE status = 'leave') AS leave_days
		FROM attendances
		WHERE company_id = $1 AND date BETWEEN $2 AND $3 AND employee_id = ANY($4)
		GROUP BY employee_id
	`

	rows, err := r.db.Query(ctx, query, companyID, from, to, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance summary: %w", err)
	}
	defer rows.Close()

	var summaries []attendance.Summary
	for rows.Next() {
		var s attendance.Summary
		if err := rows.Scan(&s.EmployeeID, &s.WorkingDays, &s.PresentDays, &s.LeaveDays); err != nil {
			return nil, fmt.Errorf("failed to scan attendance summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

func (r *attendanceReader) WorkingDaysSince(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM attendances
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3 AND status = 'present'
	`

	var days int
	if err := r.db.QueryRow(ctx, query, employeeID, from, to).Scan(&days); err != nil {
		return 0, fmt.Errorf("failed to count working days: %w", err)
	}

	return days, nil
}
