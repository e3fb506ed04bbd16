package fixtures

import (
	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	"github.com/karobarhq/payroll-backend-go/internal/domain/leave"
	"github.com/karobarhq/payroll-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
)

func float64Ptr(f float64) *float64 { return &f }

func genderPtr(g employee.Gender) *employee.Gender { return &g }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// DefaultLeaveTypes returns the statutory leave entitlements of the Nepal
// Labour Act for a new company. Companies can edit or deactivate them
// afterwards; codes stay stable so payroll exports can rely on them.
func DefaultLeaveTypes(companyID string) []leave.LeaveType {
	return []leave.LeaveType{
		// Home leave: 1 day per 20 days worked, accumulable up to 90 days.
		{
			CompanyID:         companyID,
			Code:              "HOME",
			Name:              "Home Leave",
			AnnualEntitlement: 18,
			MaxAccrual:        float64Ptr(90),
			MaxCarryForward:   90,
			AccrualType:       leave.AccrualTypePerWorkingDays,
			AccrualRate:       1,
			AccrualPerDays:    20,
			IsPaid:            true,
			IsActive:          true,
		},
		// Sick leave: 12 days per year, accumulable up to 45 days.
		{
			CompanyID:         companyID,
			Code:              "SICK",
			Name:              "Sick Leave",
			AnnualEntitlement: 12,
			MaxAccrual:        float64Ptr(45),
			MaxCarryForward:   45,
			AccrualType:       leave.AccrualTypeMonthly,
			IsPaid:            true,
			IsActive:          true,
		},
		// Maternity leave: 98 days, female employees only, no carry forward.
		{
			CompanyID:         companyID,
			Code:              "MATERNITY",
			Name:              "Maternity Leave",
			AnnualEntitlement: 98,
			MaxCarryForward:   0,
			AccrualType:       leave.AccrualTypeAnnual,
			GenderRestriction: genderPtr(employee.GenderFemale),
			IsPaid:            true,
			IsActive:          true,
		},
		// Paternity leave: 15 days, male employees only, no carry forward.
		{
			CompanyID:         companyID,
			Code:              "PATERNITY",
			Name:              "Paternity Leave",
			AnnualEntitlement: 15,
			MaxCarryForward:   0,
			AccrualType:       leave.AccrualTypeAnnual,
			GenderRestriction: genderPtr(employee.GenderMale),
			IsPaid:            true,
			IsActive:          true,
		},
		// Mourning leave: 13 days for the kriya period.
		{
			CompanyID:         companyID,
			Code:              "MOURNING",
			Name:              "Mourning Leave",
			AnnualEntitlement: 13,
			MaxCarryForward:   0,
			AccrualType:       leave.AccrualTypeAnnual,
			IsPaid:            true,
			IsActive:          true,
		},
		// Unpaid leave for personal matters.
		{
			CompanyID:         companyID,
			Code:              "UNPAID",
			Name:              "Unpaid Leave",
			AnnualEntitlement: 30,
			MaxCarryForward:   0,
			AccrualType:       leave.AccrualTypeAnnual,
			IsPaid:            false,
			IsActive:          true,
		},
	}
}

// DefaultTaxBrackets returns the progressive income tax tables for a fiscal
// year as published in the Finance Act. The lowest slab is the 1% social
// security tax, waived at assessment time for SSF-enrolled employees.
func DefaultTaxBrackets(fiscalYear string) []tax.Bracket {
	rate := func(pct int64) decimal.Decimal { return decimal.New(pct, -2) }
	amount := func(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

	single := []tax.Bracket{
		{FiscalYear: fiscalYear, MaritalStatus: employee.MaritalStatusSingle, MinAmount: amount(0), MaxAmount: decPtr(amount(500_000)), Rate: rate(1)},
		{FiscalYear: fiscalYear, MaritalStatus: employee.MaritalStatusSingle, MinAmount: amount(500_000), MaxAmount: decPtr(amount(700_000)), Rate: rate(10)},
		{FiscalYear: fiscalYear, MaritalStatus: employee.MaritalStatusSingle, MinAmount: amount(700_000), MaxAmount: decPtr(amount(1_000_000)), Rate: rate(20)},
		{FiscalYear: fiscalYear, MaritalStatus: employee.MaritalStatusSingle, MinAmount: amount(1_000_000), MaxAmount: decPtr(amount(2_000_000)), Rate: rate(30)},
		{FiscalYear: fiscalYear, MaritalStatus: employee.MaritalStatusSingle, MinAmount: amount(2_000_000), MaxAmount: nil, Rate: rate(36)},
	}

	married := []tax.Bracket{
		{FiscalYear: fiscalYear, MaritalStatus: employee.MaritalStatusMarried, MinAmount: amount(0), MaxAmount: decPtr(amount(600_000)), Rate: rate(1)},
		{FiscalYear: fiscalYear, MaritalStatus: employee.MaritalStatusMarried, MinAmount: amount(600_000), MaxAmount: decPtr(amount(800_000)), Rate: rate(10)},
		{FiscalYear: fiscalYear, MaritalStatus: employee.MaritalStatusMarried, MinAmount: amount(800_000), MaxAmount: decPtr(amount(1_100_000)), Rate: rate(20)},
		{FiscalYear: fiscalYear, MaritalStatus: employee.MaritalStatusMarried, MinAmount: amount(1_100_000), MaxAmount: decPtr(amount(2_000_000)), Rate: rate(30)},
		{FiscalYear: fiscalYear, MaritalStatus: employee.MaritalStatusMarried, MinAmount: amount(2_000_000), MaxAmount: nil, Rate: rate(36)},
	}

	return append(single, married...)
}
