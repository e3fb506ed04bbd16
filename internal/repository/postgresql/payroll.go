package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/karobarhq/payroll-backend-go/internal/domain/payroll"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/database"
)

type payrollRunRepository struct {
	db *database.DB
}

func NewPayrollRunRepository(db *database.DB) payroll.RunRepository {
	return &payrollRunRepository{db: db}
}

// ========== RUNS ==========

func (r *payrollRunRepository) CreateRun(ctx context.Context, run payroll.Run) (payroll.Run, error) {
	query := `
		INSERT INTO payroll_runs (id, company_id, fiscal_year, month, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, company_id, fiscal_year, month, status, processed_at, finalized_at, created_at, updated_at
	`

	var created payroll.Run
	err := r.db.QueryRow(ctx, query,
		run.ID, run.CompanyID, run.FiscalYear, run.Month, run.Status,
	).Scan(
		&created.ID, &created.CompanyID, &created.FiscalYear, &created.Month, &created.Status,
		&created.ProcessedAt, &created.FinalizedAt, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		// Unique index on (company_id, fiscal_year, month) guards
		// concurrent creation.
		if strings.Contains(err.Error(), "uk_payroll_run_period") {
			return payroll.Run{}, payroll.ErrDuplicateRun
		}
		return payroll.Run{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	return created, nil
}

func (r *payrollRunRepository) GetRunByID(ctx context.Context, id string, companyID string) (payroll.Run, error) {
	query := `
		SELECT id, company_id, fiscal_year, month, status, processed_at, finalized_at, created_at, updated_at
		FROM payroll_runs
		WHERE id = $1 AND company_id = $2
	`

	var run payroll.Run
	err := r.db.QueryRow(ctx, query, id, companyID).Scan(
		&run.ID, &run.CompanyID, &run.FiscalYear, &run.Month, &run.Status,
		&run.ProcessedAt, &run.FinalizedAt, &run.CreatedAt, &run.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	return run, nil
}

func (r *payrollRunRepository) GetRunByPeriod(ctx context.Context, companyID, fiscalYear string, month int) (payroll.Run, error) {
	query := `
		SELECT id, company_id, fiscal_year, month, status, processed_at, finalized_at, created_at, updated_at
		FROM payroll_runs
		WHERE company_id = $1 AND fiscal_year = $2 AND month = $3
	`

	var run payroll.Run
	err := r.db.QueryRow(ctx, query, companyID, fiscalYear, month).Scan(
		&run.ID, &run.CompanyID, &run.FiscalYear, &run.Month, &run.Status,
		&run.ProcessedAt, &run.FinalizedAt, &run.CreatedAt, &run.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("failed to get payroll run by period: %w", err)
	}

	return run, nil
}

func (r *payrollRunRepository) ListRuns(ctx context.Context, companyID string, fiscalYear string) ([]payroll.Run, error) {
	query := `
		SELECT id, company_id, fiscal_year, month, status, processed_at, finalized_at, created_at, updated_at
		FROM payroll_runs
		WHERE company_id = $1
	`
	args := []interface{}{companyID}
	if fiscalYear != "" {
		query += ` AND fiscal_year = $2`
		args = append(args, fiscalYear)
	}
	query += ` ORDER BY fiscal_year DESC, month DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.Run
	for rows.Next() {
		var run payroll.Run
		if err := rows.Scan(
			&run.ID, &run.CompanyID, &run.FiscalYear, &run.Month, &run.Status,
			&run.ProcessedAt, &run.FinalizedAt, &run.CreatedAt, &run.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

func (r *payrollRunRepository) DeleteRun(ctx context.Context, id string, companyID string) error {
	// Status guard lives in the service; the predicate here keeps a racing
	// process transition from orphaning payslips.
	query := `DELETE FROM payroll_runs WHERE id = $1 AND company_id = $2 AND status = 'draft'`

	tag, err := r.db.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRunNotFound
	}

	return nil
}

func (r *payrollRunRepository) MarkProcessedTx(ctx context.Context, tx pgx.Tx, runID string) (payroll.Run, error) {
	query := `
		UPDATE payroll_runs
		SET status = 'processed', processed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'draft'
		RETURNING id, company_id, fiscal_year, month, status, processed_at, finalized_at, created_at, updated_at
	`

	var run payroll.Run
	err := tx.QueryRow(ctx, query, runID).Scan(
		&run.ID, &run.CompanyID, &run.FiscalYear, &run.Month, &run.Status,
		&run.ProcessedAt, &run.FinalizedAt, &run.CreatedAt, &run.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Run{}, payroll.ErrRunNotInDraft
		}
		return payroll.Run{}, fmt.Errorf("failed to mark run processed: %w", err)
	}

	return run, nil
}

func (r *payrollRunRepository) MarkFinalized(ctx context.Context, runID string, companyID string) (payroll.Run, error) {
	query := `
		UPDATE payroll_runs
		SET status = 'finalized', finalized_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = 'processed'
		RETURNING id, company_id, fiscal_year, month, status, processed_at, finalized_at, created_at, updated_at
	`

	var run payroll.Run
	err := r.db.QueryRow(ctx, query, runID, companyID).Scan(
		&run.ID, &run.CompanyID, &run.FiscalYear, &run.Month, &run.Status,
		&run.ProcessedAt, &run.FinalizedAt, &run.CreatedAt, &run.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Run{}, payroll.ErrRunNotProcessed
		}
		return payroll.Run{}, fmt.Errorf("failed to finalize run: %w", err)
	}

	return run, nil
}

// ========== PAYSLIPS ==========

func (r *payrollRunRepository) InsertPayslipsTx(ctx context.Context, tx pgx.Tx, payslips []payroll.Payslip) error {
	query := `
		INSERT INTO payslips (
			id, payroll_run_id, employee_id, basic_salary, dearness_allowance,
			overtime_hours, overtime_amount, festival_allowance, gross_salary,
			employee_contribution, employer_contribution, tax_amount, tax_breakdown,
			net_salary, working_days, present_days, leave_days
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	batch := &pgx.Batch{}
	for _, slip := range payslips {
		breakdown, err := json.Marshal(slip.TaxBreakdown)
		if err != nil {
			return fmt.Errorf("failed to marshal tax breakdown: %w", err)
		}
		batch.Queue(query,
			slip.ID, slip.PayrollRunID, slip.EmployeeID, slip.BasicSalary, slip.DearnessAllowance,
			slip.OvertimeHours, slip.OvertimeAmount, slip.FestivalAllowance, slip.GrossSalary,
			slip.EmployeeContribution, slip.EmployerContribution, slip.TaxAmount, breakdown,
			slip.NetSalary, slip.WorkingDays, slip.PresentDays, slip.LeaveDays,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range payslips {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert payslip: %w", err)
		}
	}

	return nil
}

const payslipSelect = `
	SELECT p.id, p.payroll_run_id, p.employee_id, p.basic_salary, p.dearness_allowance,
		   p.overtime_hours, p.overtime_amount, p.festival_allowance, p.gross_salary,
		   p.employee_contribution, p.employer_contribution, p.tax_amount, p.tax_breakdown,
		   p.net_salary, p.working_days, p.present_days, p.leave_days, p.created_at,
		   e.full_name, e.employee_code
	FROM payslips p
	JOIN payroll_runs r ON p.payroll_run_id = r.id
	JOIN employees e ON p.employee_id = e.id
`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var slip payroll.Payslip
	var breakdown []byte
	err := row.Scan(
		&slip.ID, &slip.PayrollRunID, &slip.EmployeeID, &slip.BasicSalary, &slip.DearnessAllowance,
		&slip.OvertimeHours, &slip.OvertimeAmount, &slip.FestivalAllowance, &slip.GrossSalary,
		&slip.EmployeeContribution, &slip.EmployerContribution, &slip.TaxAmount, &breakdown,
		&slip.NetSalary, &slip.WorkingDays, &slip.PresentDays, &slip.LeaveDays, &slip.CreatedAt,
		&slip.EmployeeName, &slip.EmployeeCode,
	)
	if err != nil {
		return payroll.Payslip{}, err
	}
	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &slip.TaxBreakdown); err != nil {
			return payroll.Payslip{}, fmt.Errorf("failed to unmarshal tax breakdown: %w", err)
		}
	}
	return slip, nil
}

func (r *payrollRunRepository) ListPayslipsByRun(ctx context.Context, runID string, companyID string) ([]payroll.Payslip, error) {
	query := payslipSelect + `
		WHERE p.payroll_run_id = $1 AND r.company_id = $2
		ORDER BY e.employee_code
	`

	rows, err := r.db.Query(ctx, query, runID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		slip, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, slip)
	}

	return payslips, rows.Err()
}

func (r *payrollRunRepository) GetPayslipByID(ctx context.Context, id string, companyID string) (payroll.Payslip, error) {
	query := payslipSelect + `
		WHERE p.id = $1 AND r.company_id = $2
	`

	slip, err := scanPayslip(r.db.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return slip, nil
}
