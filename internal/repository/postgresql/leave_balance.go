package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/karobarhq/payroll-backend-go/internal/domain/leave"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/database"
)

type leaveBalanceRepository struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &leaveBalanceRepository{db: db}
}

// Upsert writes the re-derived figures. used is deliberately NOT in the
// update set: it belongs to the leave-request workflow, so recomputation
// can never double-count it.
func (r *leaveBalanceRepository) Upsert(ctx context.Context, balance leave.Balance) (leave.Balance, error) {
	query := `
		INSERT INTO leave_balances (
			id, employee_id, leave_type_id, fiscal_year,
			accrued, carry_forward, used, available
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id, leave_type_id, fiscal_year) DO UPDATE SET
			accrued = EXCLUDED.accrued,
			carry_forward = EXCLUDED.carry_forward,
			available = EXCLUDED.available,
			updated_at = NOW()
		RETURNING id, employee_id, leave_type_id, fiscal_year,
			accrued, carry_forward, used, available, created_at, updated_at
	`

	var b leave.Balance
	err := r.db.QueryRow(ctx, query,
		balance.ID, balance.EmployeeID, balance.LeaveTypeID, balance.FiscalYear,
		balance.Accrued, balance.CarryForward, balance.Used, balance.Available,
	).Scan(
		&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.FiscalYear,
		&b.Accrued, &b.CarryForward, &b.Used, &b.Available, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to upsert leave balance: %w", err)
	}

	return b, nil
}

func (r *leaveBalanceRepository) GetByEmployeeAndYear(ctx context.Context, employeeID, fiscalYear string) ([]leave.Balance, error) {
	query := `
		SELECT b.id, b.employee_id, b.leave_type_id, b.fiscal_year,
			   b.accrued, b.carry_forward, b.used, b.available, b.created_at, b.updated_at,
			   t.code, t.name
		FROM leave_balances b
		JOIN leave_types t ON b.leave_type_id = t.id
		WHERE b.employee_id = $1 AND b.fiscal_year = $2
		ORDER BY t.code
	`

	rows, err := r.db.Query(ctx, query, employeeID, fiscalYear)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave balances: %w", err)
	}
	defer rows.Close()

	var balances []leave.Balance
	for rows.Next() {
		var b leave.Balance
		if err := rows.Scan(
			&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.FiscalYear,
			&b.Accrued, &b.CarryForward, &b.Used, &b.Available, &b.CreatedAt, &b.UpdatedAt,
			&b.LeaveTypeCode, &b.LeaveTypeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave balance: %w", err)
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}

func (r *leaveBalanceRepository) GetByEmployeeTypeYear(ctx context.Context, employeeID, leaveTypeID, fiscalYear string) (leave.Balance, error) {
	query := `
		SELECT id, employee_id, leave_type_id, fiscal_year,
			   accrued, carry_forward, used, available, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND leave_type_id = $2 AND fiscal_year = $3
	`

	var b leave.Balance
	err := r.db.QueryRow(ctx, query, employeeID, leaveTypeID, fiscalYear).Scan(
		&b.ID, &b.EmployeeID, &b.LeaveTypeID, &b.FiscalYear,
		&b.Accrued, &b.CarryForward, &b.Used, &b.Available, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Balance{}, leave.ErrBalanceNotFound
		}
		return leave.Balance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return b, nil
}

func (r *leaveBalanceRepository) AddUsed(ctx context.Context, balanceID string, days float64) error {
	query := `
		UPDATE leave_balances
		SET used = used + $2, available = available - $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, balanceID, days)
	if err != nil {
		return fmt.Errorf("failed to add used leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}

	return nil
}

func (r *leaveBalanceRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM leave_balances WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete leave balances: %w", err)
	}

	return nil
}
