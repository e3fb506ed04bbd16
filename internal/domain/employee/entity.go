package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string
	CompanyID         string
	EmployeeCode      string
	FullName          string
	Gender            Gender
	MaritalStatus     MaritalStatus
	EmploymentType    EmploymentType
	SalaryType        SalaryType
	BasicSalary       decimal.Decimal
	Rate              decimal.Decimal
	EstimatedUnits    int
	DearnessAllowance decimal.Decimal
	SSFNumber         *string
	DateOfJoin        time.Time
	ProbationMonths   int
	ProbationEndDate  *time.Time
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

// HasContributionFund reports whether the employee is enrolled in the social
// security fund, derived from the presence of a fund registration number.
func (e Employee) HasContributionFund() bool {
	return e.SSFNumber != nil && *e.SSFNumber != ""
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type MaritalStatus string

const (
	MaritalStatusSingle  MaritalStatus = "single"
	MaritalStatusMarried MaritalStatus = "married"
)

type EmploymentType string

const (
	EmploymentTypeRegular   EmploymentType = "regular"
	EmploymentTypeWorkBased EmploymentType = "work_based"
	EmploymentTypeTimeBound EmploymentType = "time_bound"
	EmploymentTypeCasual    EmploymentType = "casual"
	EmploymentTypePartTime  EmploymentType = "part_time"
)

// SalaryType is the basis the employee's pay is quoted in. Exactly one of
// {BasicSalary, Rate+EstimatedUnits} is authoritative per type.
type SalaryType string

const (
	SalaryTypeMonthly SalaryType = "monthly"
	SalaryTypeDaily   SalaryType = "daily"
	SalaryTypeHourly  SalaryType = "hourly"
	SalaryTypePerTask SalaryType = "per_task"
)

// DefaultSalaryType returns the salary basis implied by an employment type.
// It is only a default; the stored SalaryType wins when set explicitly.
func DefaultSalaryType(et EmploymentType) SalaryType {
	switch et {
	case EmploymentTypeWorkBased:
		return SalaryTypePerTask
	case EmploymentTypeCasual:
		return SalaryTypeDaily
	case EmploymentTypePartTime:
		return SalaryTypeHourly
	default:
		return SalaryTypeMonthly
	}
}

func ValidEmploymentTypes() []string {
	return []string{
		string(EmploymentTypeRegular),
		string(EmploymentTypeWorkBased),
		string(EmploymentTypeTimeBound),
		string(EmploymentTypeCasual),
		string(EmploymentTypePartTime),
	}
}

func ValidSalaryTypes() []string {
	return []string{
		string(SalaryTypeMonthly),
		string(SalaryTypeDaily),
		string(SalaryTypeHourly),
		string(SalaryTypePerTask),
	}
}
