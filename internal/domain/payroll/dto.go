package payroll

import (
	"github.com/karobarhq/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRunRequest struct {
	FiscalYear string `json:"fiscal_year"`
	Month      int    `json:"month"`
}

func (r *CreateRunRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FiscalYear) {
		errs = append(errs, validator.ValidationError{Field: "fiscal_year", Message: "is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessRunRequest struct {
	RunID string `json:"-"`
	// OvertimeHours maps employee ID to extra hours worked in the period.
	OvertimeHours map[string]decimal.Decimal `json:"overtime_hours,omitempty"`
	// IncludeFestivalAllowance adds one extra basic salary (Dashain allowance).
	IncludeFestivalAllowance bool `json:"include_festival_allowance"`
}

func (r *ProcessRunRequest) Validate() error {
	var errs validator.ValidationErrors

	for employeeID, hours := range r.OvertimeHours {
		if hours.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "overtime_hours." + employeeID, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RunResponse struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	FiscalYear  string  `json:"fiscal_year"`
	Month       int     `json:"month"`
	Status      string  `json:"status"`
	ProcessedAt *string `json:"processed_at,omitempty"`
	FinalizedAt *string `json:"finalized_at,omitempty"`
}

type PayslipResponse struct {
	ID                   string          `json:"id"`
	PayrollRunID         string          `json:"payroll_run_id"`
	EmployeeID           string          `json:"employee_id"`
	EmployeeName         string          `json:"employee_name,omitempty"`
	EmployeeCode         string          `json:"employee_code,omitempty"`
	BasicSalary          decimal.Decimal `json:"basic_salary"`
	DearnessAllowance    decimal.Decimal `json:"dearness_allowance"`
	OvertimeHours        decimal.Decimal `json:"overtime_hours"`
	OvertimeAmount       decimal.Decimal `json:"overtime_amount"`
	FestivalAllowance    decimal.Decimal `json:"festival_allowance"`
	GrossSalary          decimal.Decimal `json:"gross_salary"`
	EmployeeContribution decimal.Decimal `json:"employee_contribution"`
	EmployerContribution decimal.Decimal `json:"employer_contribution"`
	TaxAmount            decimal.Decimal `json:"tax_amount"`
	TaxBreakdown         []TaxLine       `json:"tax_breakdown,omitempty"`
	NetSalary            decimal.Decimal `json:"net_salary"`
	WorkingDays          int             `json:"working_days"`
	PresentDays          int             `json:"present_days"`
	LeaveDays            int             `json:"leave_days"`
}

type RunSummaryResponse struct {
	RunID         string          `json:"run_id"`
	EmployeeCount int             `json:"employee_count"`
	TotalGross    decimal.Decimal `json:"total_gross"`
	TotalTax      decimal.Decimal `json:"total_tax"`
	TotalSSF      decimal.Decimal `json:"total_ssf"`
	TotalNet      decimal.Decimal `json:"total_net"`
}
