package payroll

import (
	"testing"

	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	domain "github.com/karobarhq/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCalculator() *Calculator {
	return NewCalculator(domain.DefaultStatutoryConfig())
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNormalizeMonthlySalary(t *testing.T) {
	calc := testCalculator()

	tests := []struct {
		name     string
		emp      employee.Employee
		expected string
	}{
		{
			name: "monthly passes through",
			emp: employee.Employee{
				SalaryType:  employee.SalaryTypeMonthly,
				BasicSalary: dec("50000"),
			},
			expected: "50000",
		},
		{
			name: "daily rate times 26 working days",
			emp: employee.Employee{
				SalaryType: employee.SalaryTypeDaily,
				Rate:       dec("1000"),
			},
			expected: "26000",
		},
		{
			name: "hourly rate times 208 hours",
			emp: employee.Employee{
				SalaryType: employee.SalaryTypeHourly,
				Rate:       dec("250"),
			},
			expected: "52000",
		},
		{
			name: "per-task rate times estimated units",
			emp: employee.Employee{
				SalaryType:     employee.SalaryTypePerTask,
				Rate:           dec("1500"),
				EstimatedUnits: 20,
			},
			expected: "30000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.NormalizeMonthlySalary(tt.emp)
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tt.expected)), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestNormalizeMonthlySalary_InvalidConfiguration(t *testing.T) {
	calc := testCalculator()

	tests := []struct {
		name string
		emp  employee.Employee
	}{
		{
			name: "daily without rate",
			emp:  employee.Employee{ID: "e1", SalaryType: employee.SalaryTypeDaily},
		},
		{
			name: "hourly without rate",
			emp:  employee.Employee{ID: "e2", SalaryType: employee.SalaryTypeHourly},
		},
		{
			name: "per-task without units",
			emp:  employee.Employee{ID: "e3", SalaryType: employee.SalaryTypePerTask, Rate: dec("100")},
		},
		{
			name: "unknown salary type",
			emp:  employee.Employee{ID: "e4", SalaryType: employee.SalaryType("weekly")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.NormalizeMonthlySalary(tt.emp)
			assert.ErrorIs(t, err, domain.ErrInvalidSalaryConfiguration)
		})
	}
}

func TestContribution(t *testing.T) {
	calc := testCalculator()

	t.Run("enrolled employee gets 11/20 split", func(t *testing.T) {
		c := calc.Contribution(dec("50000"), true)
		assert.True(t, c.Employee.Equal(dec("5500")), "employee share: %s", c.Employee)
		assert.True(t, c.Employer.Equal(dec("10000")), "employer share: %s", c.Employer)
	})

	t.Run("total funding is 31 percent of basic", func(t *testing.T) {
		c := calc.Contribution(dec("37419"), true)
		total := c.Employee.Add(c.Employer)
		expected := dec("37419").Mul(dec("0.31")).Round(2)
		assert.True(t, total.Equal(expected), "total %s, expected %s", total, expected)
	})

	t.Run("unenrolled employee contributes nothing", func(t *testing.T) {
		c := calc.Contribution(dec("50000"), false)
		assert.True(t, c.Employee.IsZero())
		assert.True(t, c.Employer.IsZero())
	})
}

func TestOvertime(t *testing.T) {
	calc := testCalculator()

	t.Run("hourly rate times hours times multiplier", func(t *testing.T) {
		// 41600/208 = 200/hr, 10h x 1.5 = 3000
		got := calc.Overtime(dec("41600"), dec("10"))
		assert.True(t, got.Equal(dec("3000")), "got %s", got)
	})

	t.Run("zero hours means zero pay", func(t *testing.T) {
		assert.True(t, calc.Overtime(dec("41600"), decimal.Zero).IsZero())
	})

	t.Run("negative hours means zero pay", func(t *testing.T) {
		assert.True(t, calc.Overtime(dec("41600"), dec("-5")).IsZero())
	})
}
