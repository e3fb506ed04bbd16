package leave

import (
	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/validator"
)

type CreateLeaveTypeRequest struct {
	Code              string   `json:"code"`
	Name              string   `json:"name"`
	AnnualEntitlement float64  `json:"annual_entitlement"`
	MaxAccrual        *float64 `json:"max_accrual,omitempty"`
	MaxCarryForward   *float64 `json:"max_carry_forward,omitempty"`
	AccrualType       string   `json:"accrual_type"`
	AccrualRate       *float64 `json:"accrual_rate,omitempty"`
	AccrualPerDays    *int     `json:"accrual_per_days,omitempty"`
	GenderRestriction *string  `json:"gender_restriction,omitempty"`
	IsPaid            *bool    `json:"is_paid,omitempty"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.AnnualEntitlement < 0 {
		errs = append(errs, validator.ValidationError{Field: "annual_entitlement", Message: "must be non-negative"})
	}
	if r.MaxAccrual != nil && *r.MaxAccrual < 0 {
		errs = append(errs, validator.ValidationError{Field: "max_accrual", Message: "must be non-negative"})
	}
	if r.MaxCarryForward != nil && *r.MaxCarryForward < 0 {
		errs = append(errs, validator.ValidationError{Field: "max_carry_forward", Message: "must be non-negative"})
	}

	switch AccrualType(r.AccrualType) {
	case AccrualTypeAnnual, AccrualTypeMonthly:
	case AccrualTypePerWorkingDays:
		if r.AccrualRate == nil || *r.AccrualRate <= 0 {
			errs = append(errs, validator.ValidationError{Field: "accrual_rate", Message: "must be positive for per-working-days accrual"})
		}
		if r.AccrualPerDays == nil || *r.AccrualPerDays <= 0 {
			errs = append(errs, validator.ValidationError{Field: "accrual_per_days", Message: "must be positive for per-working-days accrual"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "accrual_type", Message: "must be annual, monthly or per_working_days"})
	}

	if r.GenderRestriction != nil {
		valid := []string{string(employee.GenderMale), string(employee.GenderFemale), string(employee.GenderOther)}
		if !validator.IsInSlice(*r.GenderRestriction, valid) {
			errs = append(errs, validator.ValidationError{Field: "gender_restriction", Message: "must be male, female or other"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveTypeRequest struct {
	ID                string   `json:"-"`
	Name              *string  `json:"name,omitempty"`
	AnnualEntitlement *float64 `json:"annual_entitlement,omitempty"`
	MaxAccrual        *float64 `json:"max_accrual,omitempty"`
	MaxCarryForward   *float64 `json:"max_carry_forward,omitempty"`
	IsPaid            *bool    `json:"is_paid,omitempty"`
	IsActive          *bool    `json:"is_active,omitempty"`
}

type LeaveTypeResponse struct {
	ID                string   `json:"id"`
	CompanyID         string   `json:"company_id"`
	Code              string   `json:"code"`
	Name              string   `json:"name"`
	AnnualEntitlement float64  `json:"annual_entitlement"`
	MaxAccrual        *float64 `json:"max_accrual,omitempty"`
	MaxCarryForward   float64  `json:"max_carry_forward"`
	AccrualType       string   `json:"accrual_type"`
	AccrualRate       float64  `json:"accrual_rate,omitempty"`
	AccrualPerDays    int      `json:"accrual_per_days,omitempty"`
	GenderRestriction *string  `json:"gender_restriction,omitempty"`
	IsPaid            bool     `json:"is_paid"`
	IsActive          bool     `json:"is_active"`
}

type BalanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeCode string  `json:"leave_type_code,omitempty"`
	LeaveTypeName string  `json:"leave_type_name,omitempty"`
	FiscalYear    string  `json:"fiscal_year"`
	Accrued       float64 `json:"accrued"`
	CarryForward  float64 `json:"carry_forward"`
	Used          float64 `json:"used"`
	Available     float64 `json:"available"`
}
