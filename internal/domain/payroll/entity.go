package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// RunStatus enum; transitions are forward-only.
type RunStatus string

const (
	RunStatusDraft     RunStatus = "draft"
	RunStatusProcessed RunStatus = "processed"
	RunStatusFinalized RunStatus = "finalized"
)

// Run is one payroll batch for a (company, fiscal year, month) key.
type Run struct {
	ID          string
	CompanyID   string
	FiscalYear  string
	Month       int
	Status      RunStatus
	ProcessedAt *time.Time
	FinalizedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaxLine is one slab of the per-payslip tax breakdown, kept for audit.
// A waived social contribution slab still produces a zero line.
type TaxLine struct {
	MinAmount decimal.Decimal  `json:"min_amount"`
	MaxAmount *decimal.Decimal `json:"max_amount,omitempty"`
	Rate      decimal.Decimal  `json:"rate"`
	Taxable   decimal.Decimal  `json:"taxable"`
	TaxAmount decimal.Decimal  `json:"tax_amount"`
}

// Payslip holds every computed monetary component for one employee in one
// run. Created only during the draft -> processed transition, immutable
// afterward.
type Payslip struct {
	ID                   string
	PayrollRunID         string
	EmployeeID           string
	BasicSalary          decimal.Decimal
	DearnessAllowance    decimal.Decimal
	OvertimeHours        decimal.Decimal
	OvertimeAmount       decimal.Decimal
	FestivalAllowance    decimal.Decimal
	GrossSalary          decimal.Decimal
	EmployeeContribution decimal.Decimal
	EmployerContribution decimal.Decimal
	TaxAmount            decimal.Decimal
	TaxBreakdown         []TaxLine
	NetSalary            decimal.Decimal
	WorkingDays          int
	PresentDays          int
	LeaveDays            int
	CreatedAt            time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// Contribution is the statutory social-security-fund split on basic salary.
type Contribution struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
}

// StatutoryConfig carries the jurisdiction-specific constants every
// calculation receives explicitly, so nothing statutory is compiled in.
type StatutoryConfig struct {
	WorkingDaysPerMonth    int64
	WorkingHoursPerDay     int64
	EmployeeSSFRate        decimal.Decimal
	EmployerSSFRate        decimal.Decimal
	SocialSecurityTaxRate  decimal.Decimal
	OvertimeMultiplier     decimal.Decimal
	DefaultProbationMonths int
}

// DefaultStatutoryConfig returns the rates and constants of the Nepali
// Labour Act and SSF scheme: 26 working days, 8-hour days, 11%/20% fund
// split, 1% social security tax and 1.5x overtime.
func DefaultStatutoryConfig() StatutoryConfig {
	return StatutoryConfig{
		WorkingDaysPerMonth:    26,
		WorkingHoursPerDay:     8,
		EmployeeSSFRate:        decimal.NewFromFloat(0.11),
		EmployerSSFRate:        decimal.NewFromFloat(0.20),
		SocialSecurityTaxRate:  decimal.NewFromFloat(0.01),
		OvertimeMultiplier:     decimal.NewFromFloat(1.5),
		DefaultProbationMonths: 6,
	}
}

// HoursPerMonth is the normalization divisor for hourly math (26 x 8 = 208).
func (c StatutoryConfig) HoursPerMonth() decimal.Decimal {
	return decimal.NewFromInt(c.WorkingDaysPerMonth * c.WorkingHoursPerDay)
}
