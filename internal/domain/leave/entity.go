package leave

import (
	"time"

	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
)

// AccrualType is the policy governing how a leave type's days become
// available over time.
type AccrualType string

const (
	// AccrualTypeAnnual grants the full entitlement as soon as the fiscal
	// year is active for the employee.
	AccrualTypeAnnual AccrualType = "annual"
	// AccrualTypeMonthly grants entitlement/12 per completed month.
	AccrualTypeMonthly AccrualType = "monthly"
	// AccrualTypePerWorkingDays grants AccrualRate days per AccrualPerDays
	// days actually worked.
	AccrualTypePerWorkingDays AccrualType = "per_working_days"
)

// LeaveType is a company-scoped leave policy.
//
// AccrualRate and AccrualPerDays are required (and positive) only when
// AccrualType is per_working_days.
type LeaveType struct {
	ID                string
	CompanyID         string
	Code              string
	Name              string
	AnnualEntitlement float64
	MaxAccrual        *float64 // nil = unbounded
	MaxCarryForward   float64
	AccrualType       AccrualType
	AccrualRate       float64
	AccrualPerDays    int
	GenderRestriction *employee.Gender
	IsPaid            bool
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AppliesTo reports whether the leave type is open to the employee's gender.
func (lt LeaveType) AppliesTo(g employee.Gender) bool {
	return lt.GenderRestriction == nil || *lt.GenderRestriction == g
}

// Balance is the per-(employee, leaveType, fiscalYear) accrual state.
// Accrued and Available are re-derived by the accrual engine; Used is owned
// by the leave-request approval workflow.
type Balance struct {
	ID           string
	EmployeeID   string
	LeaveTypeID  string
	FiscalYear   string
	Accrued      float64
	CarryForward float64
	Used         float64
	Available    float64
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	LeaveTypeCode *string
	LeaveTypeName *string
}
