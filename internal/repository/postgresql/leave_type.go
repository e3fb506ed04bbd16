package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/karobarhq/payroll-backend-go/internal/domain/leave"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/database"
)

type leaveTypeRepository struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepository{db: db}
}

const leaveTypeColumns = `
	id, company_id, code, name, annual_entitlement, max_accrual,
	max_carry_forward, accrual_type, accrual_rate, accrual_per_days,
	gender_restriction, is_paid, is_active, created_at, updated_at
`

func scanLeaveType(row pgx.Row) (leave.LeaveType, error) {
	var lt leave.LeaveType
	err := row.Scan(
		&lt.ID, &lt.CompanyID, &lt.Code, &lt.Name, &lt.AnnualEntitlement, &lt.MaxAccrual,
		&lt.MaxCarryForward, &lt.AccrualType, &lt.AccrualRate, &lt.AccrualPerDays,
		&lt.GenderRestriction, &lt.IsPaid, &lt.IsActive, &lt.CreatedAt, &lt.UpdatedAt,
	)
	return lt, err
}

func (r *leaveTypeRepository) Create(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	return r.create(ctx, r.db, leaveType)
}

func (r *leaveTypeRepository) CreateTx(ctx context.Context, tx pgx.Tx, leaveType leave.LeaveType) (leave.LeaveType, error) {
	return r.create(ctx, tx, leaveType)
}

func (r *leaveTypeRepository) create(ctx context.Context, q database.Querier, leaveType leave.LeaveType) (leave.LeaveType, error) {
	query := `
		INSERT INTO leave_types (
			id, company_id, code, name, annual_entitlement, max_accrual,
			max_carry_forward, accrual_type, accrual_rate, accrual_per_days,
			gender_restriction, is_paid, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + leaveTypeColumns

	created, err := scanLeaveType(q.QueryRow(ctx, query,
		leaveType.ID, leaveType.CompanyID, leaveType.Code, leaveType.Name,
		leaveType.AnnualEntitlement, leaveType.MaxAccrual,
		leaveType.MaxCarryForward, leaveType.AccrualType, leaveType.AccrualRate,
		leaveType.AccrualPerDays, leaveType.GenderRestriction, leaveType.IsPaid, leaveType.IsActive,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_leave_type_code") {
			return leave.LeaveType{}, leave.ErrLeaveTypeCodeExists
		}
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	return created, nil
}

func (r *leaveTypeRepository) GetByID(ctx context.Context, id string, companyID string) (leave.LeaveType, error) {
	query := `
		SELECT ` + leaveTypeColumns + `
		FROM leave_types
		WHERE id = $1 AND company_id = $2
	`

	lt, err := scanLeaveType(r.db.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, fmt.Errorf("failed to get leave type: %w", err)
	}

	return lt, nil
}

func (r *leaveTypeRepository) GetByCompanyID(ctx context.Context, companyID string) ([]leave.LeaveType, error) {
	return r.list(ctx, companyID, false)
}

func (r *leaveTypeRepository) GetActiveByCompanyID(ctx context.Context, companyID string) ([]leave.LeaveType, error) {
	return r.list(ctx, companyID, true)
}

func (r *leaveTypeRepository) list(ctx context.Context, companyID string, activeOnly bool) ([]leave.LeaveType, error) {
	query := `
		SELECT ` + leaveTypeColumns + `
		FROM leave_types
		WHERE company_id = $1
	`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY code`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	defer rows.Close()

	var leaveTypes []leave.LeaveType
	for rows.Next() {
		lt, err := scanLeaveType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave type: %w", err)
		}
		leaveTypes = append(leaveTypes, lt)
	}

	return leaveTypes, rows.Err()
}

func (r *leaveTypeRepository) Update(ctx context.Context, leaveType leave.LeaveType) error {
	query := `
		UPDATE leave_types SET
			name = $3, annual_entitlement = $4, max_accrual = $5,
			max_carry_forward = $6, is_paid = $7, is_active = $8, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := r.db.Exec(ctx, query,
		leaveType.ID, leaveType.CompanyID, leaveType.Name, leaveType.AnnualEntitlement,
		leaveType.MaxAccrual, leaveType.MaxCarryForward, leaveType.IsPaid, leaveType.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveTypeNotFound
	}

	return nil
}

func (r *leaveTypeRepository) Delete(ctx context.Context, id string, companyID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM leave_types WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete leave type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveTypeNotFound
	}

	return nil
}
