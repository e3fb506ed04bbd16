package leave

import (
	"testing"
	"time"

	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	"github.com/karobarhq/payroll-backend-go/internal/domain/fiscal"
	"github.com/karobarhq/payroll-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fiscalYear2082 runs mid-July to mid-July, Nepali style.
func fiscalYear2082() fiscal.Period {
	return fiscal.Period{
		Label: "2082/83",
		Start: date(2025, time.July, 17),
		End:   date(2026, time.July, 16),
	}
}

func monthlyType(entitlement float64) leave.LeaveType {
	return leave.LeaveType{
		Code:              "SICK",
		AnnualEntitlement: entitlement,
		AccrualType:       leave.AccrualTypeMonthly,
	}
}

func TestComputeBalance_Annual(t *testing.T) {
	calc := NewAccrualCalculator()

	got, err := calc.ComputeBalance(BalanceInput{
		LeaveType: leave.LeaveType{AnnualEntitlement: 98, AccrualType: leave.AccrualTypeAnnual},
		Employee:  employee.Employee{DateOfJoin: date(2020, time.January, 1)},
		Year:      fiscalYear2082(),
		AsOf:      date(2025, time.August, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, 98.0, got.Accrued, "full entitlement lands on year start")
}

func TestComputeBalance_Monthly(t *testing.T) {
	calc := NewAccrualCalculator()
	year := fiscalYear2082()

	t.Run("employee joined three months into the year", func(t *testing.T) {
		join := date(2025, time.October, 17)
		got, err := calc.ComputeBalance(BalanceInput{
			LeaveType: monthlyType(12),
			Employee:  employee.Employee{DateOfJoin: join},
			Year:      year,
			AsOf:      join.AddDate(0, 5, 0),
		})
		require.NoError(t, err)
		assert.Equal(t, 5.0, got.Accrued, "accrual starts at join, not year start")
	})

	t.Run("partial month does not count", func(t *testing.T) {
		got, err := calc.ComputeBalance(BalanceInput{
			LeaveType: monthlyType(12),
			Employee:  employee.Employee{DateOfJoin: date(2020, time.January, 1)},
			Year:      year,
			AsOf:      date(2025, time.September, 16), // one day short of two months
		})
		require.NoError(t, err)
		assert.Equal(t, 1.0, got.Accrued)
	})

	t.Run("evaluation before join yields zero", func(t *testing.T) {
		got, err := calc.ComputeBalance(BalanceInput{
			LeaveType: monthlyType(12),
			Employee:  employee.Employee{DateOfJoin: date(2026, time.January, 1)},
			Year:      year,
			AsOf:      date(2025, time.August, 1),
		})
		require.NoError(t, err)
		assert.Zero(t, got.Accrued)
	})

	t.Run("idempotent for the same inputs", func(t *testing.T) {
		in := BalanceInput{
			LeaveType: monthlyType(12),
			Employee:  employee.Employee{DateOfJoin: date(2020, time.January, 1)},
			Year:      year,
			AsOf:      date(2026, time.February, 20),
			Used:      3,
		}
		first, err := calc.ComputeBalance(in)
		require.NoError(t, err)
		second, err := calc.ComputeBalance(in)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestComputeBalance_PerWorkingDays(t *testing.T) {
	calc := NewAccrualCalculator()

	homeLeave := leave.LeaveType{
		Code:           "HOME",
		AccrualType:    leave.AccrualTypePerWorkingDays,
		AccrualRate:    1,
		AccrualPerDays: 20,
	}

	t.Run("one day per twenty worked, floored", func(t *testing.T) {
		got, err := calc.ComputeBalance(BalanceInput{
			LeaveType:   homeLeave,
			Employee:    employee.Employee{DateOfJoin: date(2020, time.January, 1)},
			Year:        fiscalYear2082(),
			AsOf:        date(2025, time.December, 1),
			WorkingDays: 59,
		})
		require.NoError(t, err)
		assert.Equal(t, 2.0, got.Accrued, "59 worked days earn 2 full periods")
	})

	t.Run("missing rule is rejected", func(t *testing.T) {
		broken := homeLeave
		broken.AccrualPerDays = 0
		_, err := calc.ComputeBalance(BalanceInput{
			LeaveType: broken,
			Employee:  employee.Employee{DateOfJoin: date(2020, time.January, 1)},
			Year:      fiscalYear2082(),
			AsOf:      date(2025, time.December, 1),
		})
		assert.ErrorIs(t, err, leave.ErrInvalidAccrualRule)
	})
}

func TestComputeBalance_Caps(t *testing.T) {
	calc := NewAccrualCalculator()
	year := fiscalYear2082()
	maxAccrual := 10.0

	t.Run("accrued capped at max accrual", func(t *testing.T) {
		lt := leave.LeaveType{AnnualEntitlement: 98, AccrualType: leave.AccrualTypeAnnual, MaxAccrual: &maxAccrual}
		got, err := calc.ComputeBalance(BalanceInput{
			LeaveType: lt,
			Employee:  employee.Employee{DateOfJoin: date(2020, time.January, 1)},
			Year:      year,
			AsOf:      date(2025, time.August, 1),
		})
		require.NoError(t, err)
		assert.Equal(t, 10.0, got.Accrued)
	})

	t.Run("carry forward clamped to max carry forward", func(t *testing.T) {
		lt := leave.LeaveType{AnnualEntitlement: 12, AccrualType: leave.AccrualTypeAnnual, MaxCarryForward: 5}
		got, err := calc.ComputeBalance(BalanceInput{
			LeaveType:    lt,
			Employee:     employee.Employee{DateOfJoin: date(2020, time.January, 1)},
			Year:         year,
			AsOf:         date(2025, time.August, 1),
			CarryForward: 30,
		})
		require.NoError(t, err)
		assert.Equal(t, 12.0+5, got.Available)
	})

	t.Run("used reduces availability", func(t *testing.T) {
		lt := leave.LeaveType{AnnualEntitlement: 12, AccrualType: leave.AccrualTypeAnnual}
		got, err := calc.ComputeBalance(BalanceInput{
			LeaveType: lt,
			Employee:  employee.Employee{DateOfJoin: date(2020, time.January, 1)},
			Year:      year,
			AsOf:      date(2025, time.August, 1),
			Used:      4,
		})
		require.NoError(t, err)
		assert.Equal(t, 8.0, got.Available)
	})
}

func TestComputeBalance_UnsupportedAccrualType(t *testing.T) {
	calc := NewAccrualCalculator()

	_, err := calc.ComputeBalance(BalanceInput{
		LeaveType: leave.LeaveType{AccrualType: leave.AccrualType("weekly")},
		Employee:  employee.Employee{DateOfJoin: date(2020, time.January, 1)},
		Year:      fiscalYear2082(),
		AsOf:      date(2025, time.August, 1),
	})
	assert.ErrorIs(t, err, leave.ErrUnsupportedAccrualType)
}

func TestLeaveTypeAppliesTo(t *testing.T) {
	female := employee.GenderFemale
	maternity := leave.LeaveType{GenderRestriction: &female}

	assert.True(t, maternity.AppliesTo(employee.GenderFemale))
	assert.False(t, maternity.AppliesTo(employee.GenderMale))

	unrestricted := leave.LeaveType{}
	assert.True(t, unrestricted.AppliesTo(employee.GenderMale))
}

func TestCompletedMonths(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		asOf     time.Time
		expected int
	}{
		{"same day", date(2025, time.July, 17), date(2025, time.July, 17), 0},
		{"one month exactly", date(2025, time.July, 17), date(2025, time.August, 17), 1},
		{"one day short", date(2025, time.July, 17), date(2025, time.August, 16), 0},
		{"across year boundary", date(2025, time.October, 17), date(2026, time.March, 17), 5},
		{"asOf before start", date(2025, time.July, 17), date(2025, time.June, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, completedMonths(tt.start, tt.asOf))
		})
	}
}
