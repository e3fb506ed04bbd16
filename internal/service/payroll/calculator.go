package payroll

import (
	"fmt"

	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	"github.com/karobarhq/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Calculator bundles the pure statutory computations: salary normalization,
// SSF contributions and overtime. Everything jurisdiction-specific comes
// from the StatutoryConfig, never from constants.
type Calculator struct {
	cfg payroll.StatutoryConfig
}

func NewCalculator(cfg payroll.StatutoryConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// NormalizeMonthlySalary converts any salary basis into a monthly-equivalent
// figure: daily x working days, hourly x working hours, per-task x estimated
// units. Monthly passes through unchanged.
func (c *Calculator) NormalizeMonthlySalary(emp employee.Employee) (decimal.Decimal, error) {
	switch emp.SalaryType {
	case employee.SalaryTypeMonthly:
		return emp.BasicSalary, nil
	case employee.SalaryTypeDaily:
		if !emp.Rate.IsPositive() {
			return decimal.Zero, fmt.Errorf("employee %s: daily rate missing: %w", emp.ID, payroll.ErrInvalidSalaryConfiguration)
		}
		return emp.Rate.Mul(decimal.NewFromInt(c.cfg.WorkingDaysPerMonth)), nil
	case employee.SalaryTypeHourly:
		if !emp.Rate.IsPositive() {
			return decimal.Zero, fmt.Errorf("employee %s: hourly rate missing: %w", emp.ID, payroll.ErrInvalidSalaryConfiguration)
		}
		return emp.Rate.Mul(c.cfg.HoursPerMonth()), nil
	case employee.SalaryTypePerTask:
		if !emp.Rate.IsPositive() || emp.EstimatedUnits <= 0 {
			return decimal.Zero, fmt.Errorf("employee %s: per-task rate or estimated units missing: %w", emp.ID, payroll.ErrInvalidSalaryConfiguration)
		}
		return emp.Rate.Mul(decimal.NewFromInt(int64(emp.EstimatedUnits))), nil
	default:
		return decimal.Zero, fmt.Errorf("employee %s: salary type %q: %w", emp.ID, emp.SalaryType, payroll.ErrInvalidSalaryConfiguration)
	}
}

// Contribution computes the mandatory SSF split on basic salary. Both sides
// are zero when the employee has no registered fund; the tax calculator then
// applies the social contribution bracket instead.
func (c *Calculator) Contribution(basicSalary decimal.Decimal, enrolled bool) payroll.Contribution {
	if !enrolled {
		return payroll.Contribution{Employee: decimal.Zero, Employer: decimal.Zero}
	}
	return payroll.Contribution{
		Employee: basicSalary.Mul(c.cfg.EmployeeSSFRate).Round(2),
		Employer: basicSalary.Mul(c.cfg.EmployerSSFRate).Round(2),
	}
}

// Overtime converts extra hours into extra pay: monthly salary derives an
// hourly rate, multiplied by hours and the statutory multiplier.
func (c *Calculator) Overtime(monthlySalary, hours decimal.Decimal) decimal.Decimal {
	if !hours.IsPositive() {
		return decimal.Zero
	}
	hourlyRate := monthlySalary.Div(c.cfg.HoursPerMonth())
	return hourlyRate.Mul(hours).Mul(c.cfg.OvertimeMultiplier).Round(2)
}
