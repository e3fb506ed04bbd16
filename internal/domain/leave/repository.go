package leave

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// LeaveTypeRepository - interface for the leave_types table.
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	// CreateTx inserts within a caller-owned transaction; company
	// registration seeds the statutory defaults atomically with it.
	CreateTx(ctx context.Context, tx pgx.Tx, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string, companyID string) (LeaveType, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]LeaveType, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]LeaveType, error)
	Update(ctx context.Context, leaveType LeaveType) error
	Delete(ctx context.Context, id string, companyID string) error
}

// BalanceRepository - interface for the leave_balances table.
type BalanceRepository interface {
	// Upsert writes the re-derived accrual figures, keyed on
	// (employee_id, leave_type_id, fiscal_year). Used is never touched so
	// recomputation cannot double-count.
	Upsert(ctx context.Context, balance Balance) (Balance, error)
	GetByEmployeeAndYear(ctx context.Context, employeeID, fiscalYear string) ([]Balance, error)
	GetByEmployeeTypeYear(ctx context.Context, employeeID, leaveTypeID, fiscalYear string) (Balance, error)
	AddUsed(ctx context.Context, balanceID string, days float64) error
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
