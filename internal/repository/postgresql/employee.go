package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, company_id, employee_code, full_name, gender, marital_status,
	employment_type, salary_type, basic_salary, rate, estimated_units,
	dearness_allowance, ssf_number, date_of_join, probation_months,
	probation_end_date, is_active, created_at, updated_at, deleted_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.EmployeeCode, &e.FullName, &e.Gender, &e.MaritalStatus,
		&e.EmploymentType, &e.SalaryType, &e.BasicSalary, &e.Rate, &e.EstimatedUnits,
		&e.DearnessAllowance, &e.SSFNumber, &e.DateOfJoin, &e.ProbationMonths,
		&e.ProbationEndDate, &e.IsActive, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (
			id, company_id, employee_code, full_name, gender, marital_status,
			employment_type, salary_type, basic_salary, rate, estimated_units,
			dearness_allowance, ssf_number, date_of_join, probation_months,
			probation_end_date, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(r.db.QueryRow(ctx, query,
		emp.ID, emp.CompanyID, emp.EmployeeCode, emp.FullName, emp.Gender, emp.MaritalStatus,
		emp.EmploymentType, emp.SalaryType, emp.BasicSalary, emp.Rate, emp.EstimatedUnits,
		emp.DearnessAllowance, emp.SSFNumber, emp.DateOfJoin, emp.ProbationMonths,
		emp.ProbationEndDate, emp.IsActive,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	emp, err := scanEmployee(r.db.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return r.list(ctx, companyID, false)
}

func (r *employeeRepository) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return r.list(ctx, companyID, true)
}

func (r *employeeRepository) list(ctx context.Context, companyID string, activeOnly bool) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND deleted_at IS NULL
	`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY employee_code`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	query := `
		UPDATE employees SET
			full_name = $3, marital_status = $4, salary_type = $5,
			basic_salary = $6, rate = $7, estimated_units = $8,
			dearness_allowance = $9, ssf_number = $10, probation_months = $11,
			probation_end_date = $12, is_active = $13, updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	tag, err := r.db.Exec(ctx, query,
		emp.ID, emp.CompanyID, emp.FullName, emp.MaritalStatus, emp.SalaryType,
		emp.BasicSalary, emp.Rate, emp.EstimatedUnits,
		emp.DearnessAllowance, emp.SSFNumber, emp.ProbationMonths,
		emp.ProbationEndDate, emp.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) SetActive(ctx context.Context, id string, companyID string, active bool) error {
	query := `
		UPDATE employees SET is_active = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	tag, err := r.db.Exec(ctx, query, id, companyID, active)
	if err != nil {
		return fmt.Errorf("failed to set employee active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string, companyID string) error {
	// Soft delete; leave balances cascade via FK when the row is purged.
	query := `
		UPDATE employees SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	tag, err := r.db.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
