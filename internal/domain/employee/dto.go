package employee

import (
	"github.com/karobarhq/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeCode      string           `json:"employee_code"`
	FullName          string           `json:"full_name"`
	Gender            string           `json:"gender"`
	MaritalStatus     string           `json:"marital_status"`
	EmploymentType    string           `json:"employment_type"`
	SalaryType        *string          `json:"salary_type,omitempty"`
	BasicSalary       *decimal.Decimal `json:"basic_salary,omitempty"`
	Rate              *decimal.Decimal `json:"rate,omitempty"`
	EstimatedUnits    *int             `json:"estimated_units,omitempty"`
	DearnessAllowance *decimal.Decimal `json:"dearness_allowance,omitempty"`
	SSFNumber         *string          `json:"ssf_number,omitempty"`
	DateOfJoin        string           `json:"date_of_join"`
	ProbationMonths   *int             `json:"probation_months,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsInSlice(r.Gender, []string{string(GenderMale), string(GenderFemale), string(GenderOther)}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "must be male, female or other"})
	}
	if !validator.IsInSlice(r.MaritalStatus, []string{string(MaritalStatusSingle), string(MaritalStatusMarried)}) {
		errs = append(errs, validator.ValidationError{Field: "marital_status", Message: "must be single or married"})
	}
	if !validator.IsInSlice(r.EmploymentType, ValidEmploymentTypes()) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "is not a recognized employment type"})
	}
	if r.SalaryType != nil && !validator.IsInSlice(*r.SalaryType, ValidSalaryTypes()) {
		errs = append(errs, validator.ValidationError{Field: "salary_type", Message: "is not a recognized salary type"})
	}
	if _, ok := validator.IsValidDate(r.DateOfJoin); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_join", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if r.Rate != nil && r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be non-negative"})
	}
	if r.EstimatedUnits != nil && *r.EstimatedUnits < 0 {
		errs = append(errs, validator.ValidationError{Field: "estimated_units", Message: "must be non-negative"})
	}
	if r.ProbationMonths != nil && *r.ProbationMonths < 0 {
		errs = append(errs, validator.ValidationError{Field: "probation_months", Message: "must be non-negative"})
	}

	// Non-monthly bases need their rate (and units) up front, or the
	// employee would only fail at payroll-run time and abort the batch.
	if validator.IsInSlice(r.EmploymentType, ValidEmploymentTypes()) {
		salaryType := DefaultSalaryType(EmploymentType(r.EmploymentType))
		if r.SalaryType != nil && validator.IsInSlice(*r.SalaryType, ValidSalaryTypes()) {
			salaryType = SalaryType(*r.SalaryType)
		}
		switch salaryType {
		case SalaryTypeDaily, SalaryTypeHourly:
			if r.Rate == nil || !r.Rate.IsPositive() {
				errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be positive for " + string(salaryType) + " salary"})
			}
		case SalaryTypePerTask:
			if r.Rate == nil || !r.Rate.IsPositive() {
				errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be positive for per-task salary"})
			}
			if r.EstimatedUnits == nil || *r.EstimatedUnits <= 0 {
				errs = append(errs, validator.ValidationError{Field: "estimated_units", Message: "must be positive for per-task salary"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                string           `json:"-"`
	FullName          *string          `json:"full_name,omitempty"`
	MaritalStatus     *string          `json:"marital_status,omitempty"`
	SalaryType        *string          `json:"salary_type,omitempty"`
	BasicSalary       *decimal.Decimal `json:"basic_salary,omitempty"`
	Rate              *decimal.Decimal `json:"rate,omitempty"`
	EstimatedUnits    *int             `json:"estimated_units,omitempty"`
	DearnessAllowance *decimal.Decimal `json:"dearness_allowance,omitempty"`
	SSFNumber         *string          `json:"ssf_number,omitempty"`
	ProbationMonths   *int             `json:"probation_months,omitempty"`
	IsActive          *bool            `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MaritalStatus != nil && !validator.IsInSlice(*r.MaritalStatus, []string{string(MaritalStatusSingle), string(MaritalStatusMarried)}) {
		errs = append(errs, validator.ValidationError{Field: "marital_status", Message: "must be single or married"})
	}
	if r.SalaryType != nil && !validator.IsInSlice(*r.SalaryType, ValidSalaryTypes()) {
		errs = append(errs, validator.ValidationError{Field: "salary_type", Message: "is not a recognized salary type"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if r.Rate != nil && r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be non-negative"})
	}
	if r.ProbationMonths != nil && *r.ProbationMonths < 0 {
		errs = append(errs, validator.ValidationError{Field: "probation_months", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                  string          `json:"id"`
	CompanyID           string          `json:"company_id"`
	EmployeeCode        string          `json:"employee_code"`
	FullName            string          `json:"full_name"`
	Gender              string          `json:"gender"`
	MaritalStatus       string          `json:"marital_status"`
	EmploymentType      string          `json:"employment_type"`
	SalaryType          string          `json:"salary_type"`
	BasicSalary         decimal.Decimal `json:"basic_salary"`
	Rate                decimal.Decimal `json:"rate"`
	EstimatedUnits      int             `json:"estimated_units"`
	DearnessAllowance   decimal.Decimal `json:"dearness_allowance"`
	HasContributionFund bool            `json:"has_contribution_fund"`
	DateOfJoin          string          `json:"date_of_join"`
	ProbationMonths     int             `json:"probation_months"`
	ProbationEndDate    *string         `json:"probation_end_date,omitempty"`
	OnProbation         bool            `json:"on_probation"`
	IsActive            bool            `json:"is_active"`
}
