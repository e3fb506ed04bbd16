package leave

import (
	"fmt"
	"math"
	"time"

	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	"github.com/karobarhq/payroll-backend-go/internal/domain/fiscal"
	"github.com/karobarhq/payroll-backend-go/internal/domain/leave"
)

// AccrualCalculator re-derives leave balances from first principles. It
// holds no state, so recomputation is idempotent: the same inputs always
// yield the same accrued/available figures, and Used is never touched here.
type AccrualCalculator struct {
}

func NewAccrualCalculator() *AccrualCalculator {
	return &AccrualCalculator{}
}

// BalanceInput is everything ComputeBalance needs; callers own fetching it.
type BalanceInput struct {
	LeaveType leave.LeaveType
	Employee  employee.Employee
	Year      fiscal.Period
	AsOf      time.Time
	// WorkingDays counts days actually worked since the accrual start,
	// supplied by the attendance subsystem. Only read for per-working-days
	// accrual.
	WorkingDays  int
	CarryForward float64
	Used         float64
}

// Computed is the derived portion of a leave balance.
type Computed struct {
	Accrued   float64
	Available float64
}

// ComputeBalance dispatches on the accrual type, caps the result at the
// type's max accrual and derives availability. Accrual never starts before
// the later of the fiscal-year start and the employee's join date.
func (c *AccrualCalculator) ComputeBalance(in BalanceInput) (Computed, error) {
	accrued, err := c.computeAccrued(in)
	if err != nil {
		return Computed{}, err
	}

	if accrued < 0 {
		accrued = 0
	}
	if in.LeaveType.MaxAccrual != nil && accrued > *in.LeaveType.MaxAccrual {
		accrued = *in.LeaveType.MaxAccrual
	}

	carried := in.CarryForward
	if carried > in.LeaveType.MaxCarryForward {
		carried = in.LeaveType.MaxCarryForward
	}

	return Computed{
		Accrued:   accrued,
		Available: accrued + carried - in.Used,
	}, nil
}

func (c *AccrualCalculator) computeAccrued(in BalanceInput) (float64, error) {
	start := accrualStart(in.Year, in.Employee.DateOfJoin)
	if in.AsOf.Before(start) {
		// Not yet employed (or year not yet started) as of the
		// evaluation date.
		return 0, nil
	}

	switch in.LeaveType.AccrualType {
	case leave.AccrualTypeAnnual:
		return in.LeaveType.AnnualEntitlement, nil

	case leave.AccrualTypeMonthly:
		months := completedMonths(start, in.AsOf)
		return in.LeaveType.AnnualEntitlement / 12 * float64(months), nil

	case leave.AccrualTypePerWorkingDays:
		if in.LeaveType.AccrualPerDays <= 0 || in.LeaveType.AccrualRate <= 0 {
			return 0, leave.ErrInvalidAccrualRule
		}
		periods := math.Floor(float64(in.WorkingDays) / float64(in.LeaveType.AccrualPerDays))
		return periods * in.LeaveType.AccrualRate, nil

	default:
		return 0, fmt.Errorf("accrual type %q: %w", in.LeaveType.AccrualType, leave.ErrUnsupportedAccrualType)
	}
}

// accrualStart is the later of the fiscal-year start and the join date.
func accrualStart(year fiscal.Period, dateOfJoin time.Time) time.Time {
	if dateOfJoin.After(year.Start) {
		return dateOfJoin
	}
	return year.Start
}

// completedMonths counts whole calendar months from start through asOf,
// floored. A month only counts once its day-of-month has passed.
func completedMonths(start, asOf time.Time) int {
	years := asOf.Year() - start.Year()
	months := int(asOf.Month()) - int(start.Month())

	total := years*12 + months
	if asOf.Day() < start.Day() {
		total--
	}
	if total < 0 {
		total = 0
	}
	return total
}
