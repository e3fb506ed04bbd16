package leave

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/karobarhq/payroll-backend-go/internal/domain/attendance"
	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	"github.com/karobarhq/payroll-backend-go/internal/domain/fiscal"
	"github.com/karobarhq/payroll-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCompanyID = "company-1"

func authedContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"company_id": testCompanyID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// ========== FAKES ==========

type fakeLeaveTypeRepo struct {
	leaveTypes []leave.LeaveType
}

func (f *fakeLeaveTypeRepo) Create(_ context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	for _, existing := range f.leaveTypes {
		if existing.CompanyID == lt.CompanyID && existing.Code == lt.Code {
			return leave.LeaveType{}, leave.ErrLeaveTypeCodeExists
		}
	}
	f.leaveTypes = append(f.leaveTypes, lt)
	return lt, nil
}

func (f *fakeLeaveTypeRepo) CreateTx(ctx context.Context, _ pgx.Tx, lt leave.LeaveType) (leave.LeaveType, error) {
	return f.Create(ctx, lt)
}

func (f *fakeLeaveTypeRepo) GetByID(_ context.Context, id string, companyID string) (leave.LeaveType, error) {
	for _, lt := range f.leaveTypes {
		if lt.ID == id && lt.CompanyID == companyID {
			return lt, nil
		}
	}
	return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
}

func (f *fakeLeaveTypeRepo) GetByCompanyID(_ context.Context, companyID string) ([]leave.LeaveType, error) {
	var result []leave.LeaveType
	for _, lt := range f.leaveTypes {
		if lt.CompanyID == companyID {
			result = append(result, lt)
		}
	}
	return result, nil
}

func (f *fakeLeaveTypeRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]leave.LeaveType, error) {
	all, _ := f.GetByCompanyID(ctx, companyID)
	var result []leave.LeaveType
	for _, lt := range all {
		if lt.IsActive {
			result = append(result, lt)
		}
	}
	return result, nil
}

func (f *fakeLeaveTypeRepo) Update(_ context.Context, lt leave.LeaveType) error {
	for i, existing := range f.leaveTypes {
		if existing.ID == lt.ID && existing.CompanyID == lt.CompanyID {
			f.leaveTypes[i] = lt
			return nil
		}
	}
	return leave.ErrLeaveTypeNotFound
}

func (f *fakeLeaveTypeRepo) Delete(_ context.Context, id string, companyID string) error {
	for i, existing := range f.leaveTypes {
		if existing.ID == id && existing.CompanyID == companyID {
			f.leaveTypes = append(f.leaveTypes[:i], f.leaveTypes[i+1:]...)
			return nil
		}
	}
	return leave.ErrLeaveTypeNotFound
}

type fakeBalanceRepo struct {
	balances map[string]leave.Balance // keyed employee|type|year
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[string]leave.Balance)}
}

func balanceKey(employeeID, leaveTypeID, fiscalYear string) string {
	return employeeID + "|" + leaveTypeID + "|" + fiscalYear
}

func (f *fakeBalanceRepo) Upsert(_ context.Context, balance leave.Balance) (leave.Balance, error) {
	key := balanceKey(balance.EmployeeID, balance.LeaveTypeID, balance.FiscalYear)
	if existing, ok := f.balances[key]; ok {
		// Mirrors the SQL upsert: used is never overwritten.
		balance.Used = existing.Used
		balance.ID = existing.ID
	}
	f.balances[key] = balance
	return balance, nil
}

func (f *fakeBalanceRepo) GetByEmployeeAndYear(_ context.Context, employeeID, fiscalYear string) ([]leave.Balance, error) {
	var result []leave.Balance
	for _, b := range f.balances {
		if b.EmployeeID == employeeID && b.FiscalYear == fiscalYear {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBalanceRepo) GetByEmployeeTypeYear(_ context.Context, employeeID, leaveTypeID, fiscalYear string) (leave.Balance, error) {
	if b, ok := f.balances[balanceKey(employeeID, leaveTypeID, fiscalYear)]; ok {
		return b, nil
	}
	return leave.Balance{}, leave.ErrBalanceNotFound
}

func (f *fakeBalanceRepo) AddUsed(_ context.Context, balanceID string, days float64) error {
	for key, b := range f.balances {
		if b.ID == balanceID {
			b.Used += days
			b.Available -= days
			f.balances[key] = b
			return nil
		}
	}
	return leave.ErrBalanceNotFound
}

func (f *fakeBalanceRepo) DeleteByEmployee(_ context.Context, employeeID string) error {
	for key, b := range f.balances {
		if b.EmployeeID == employeeID {
			delete(f.balances, key)
		}
	}
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok || emp.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByCompanyID(_ context.Context, companyID string) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range f.employees {
		if emp.CompanyID == companyID {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (f *fakeEmployeeRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	all, _ := f.GetByCompanyID(ctx, companyID)
	var result []employee.Employee
	for _, emp := range all {
		if emp.IsActive {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) SetActive(_ context.Context, id string, _ string, active bool) error {
	emp := f.employees[id]
	emp.IsActive = active
	f.employees[id] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string, _ string) error {
	delete(f.employees, id)
	return nil
}

type stubCalendar struct {
	period fiscal.Period
}

func (s *stubCalendar) Current(_ context.Context, _ time.Time) (fiscal.Period, error) {
	return s.period, nil
}

func (s *stubCalendar) ByLabel(_ context.Context, _ string) (fiscal.Period, error) {
	return s.period, nil
}

func (s *stubCalendar) MonthPeriod(_ context.Context, _ string, _ int) (fiscal.Period, error) {
	return s.period, nil
}

type stubAttendance struct {
	workingDays int
}

func (s *stubAttendance) SummaryByPeriod(_ context.Context, _ string, _, _ time.Time, _ []string) ([]attendance.Summary, error) {
	return nil, nil
}

func (s *stubAttendance) WorkingDaysSince(_ context.Context, _ string, _, _ time.Time) (int, error) {
	return s.workingDays, nil
}

// ========== TESTS ==========

func newTestService(t *testing.T) (*LeaveServiceImpl, *fakeLeaveTypeRepo, *fakeBalanceRepo, *fakeEmployeeRepo) {
	t.Helper()

	now := time.Now()
	year := fiscal.Period{
		Label: "2082/83",
		Start: now.AddDate(0, -4, 0),
		End:   now.AddDate(0, 8, 0),
	}

	leaveTypeRepo := &fakeLeaveTypeRepo{}
	balanceRepo := newFakeBalanceRepo()
	employeeRepo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}

	svc := &LeaveServiceImpl{
		leaveTypeRepo:  leaveTypeRepo,
		balanceRepo:    balanceRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: &stubAttendance{workingDays: 40},
		calendar:       &stubCalendar{period: year},
		calculator:     NewAccrualCalculator(),
	}
	return svc, leaveTypeRepo, balanceRepo, employeeRepo
}

func TestRecomputeBalances(t *testing.T) {
	ctx := authedContext(t)
	svc, leaveTypeRepo, balanceRepo, employeeRepo := newTestService(t)

	female := employee.GenderFemale
	leaveTypeRepo.leaveTypes = []leave.LeaveType{
		{ID: "lt-annual", CompanyID: testCompanyID, Code: "MOURNING", AnnualEntitlement: 13, AccrualType: leave.AccrualTypeAnnual, IsActive: true},
		{ID: "lt-home", CompanyID: testCompanyID, Code: "HOME", AccrualType: leave.AccrualTypePerWorkingDays, AccrualRate: 1, AccrualPerDays: 20, IsActive: true},
		{ID: "lt-maternity", CompanyID: testCompanyID, Code: "MATERNITY", AnnualEntitlement: 98, AccrualType: leave.AccrualTypeAnnual, GenderRestriction: &female, IsActive: true},
		{ID: "lt-inactive", CompanyID: testCompanyID, Code: "OLD", AccrualType: leave.AccrualTypeAnnual, IsActive: false},
	}

	employeeRepo.employees["emp-1"] = employee.Employee{
		ID:         "emp-1",
		CompanyID:  testCompanyID,
		Gender:     employee.GenderMale,
		DateOfJoin: time.Now().AddDate(-2, 0, 0),
		IsActive:   true,
	}

	balances, err := svc.RecomputeBalances(ctx, "emp-1")
	require.NoError(t, err)

	// Maternity (gender-restricted) and inactive types are skipped.
	require.Len(t, balances, 2)

	byCode := make(map[string]leave.BalanceResponse)
	for _, b := range balances {
		byCode[b.LeaveTypeCode] = b
	}

	assert.Equal(t, 13.0, byCode["MOURNING"].Accrued)
	// 40 worked days / 20 = 2 accrued
	assert.Equal(t, 2.0, byCode["HOME"].Accrued)

	t.Run("recompute preserves used days", func(t *testing.T) {
		key := balanceKey("emp-1", "lt-annual", "2082/83")
		stored := balanceRepo.balances[key]
		stored.Used = 3
		stored.Available = stored.Accrued - 3
		balanceRepo.balances[key] = stored

		again, err := svc.RecomputeBalances(ctx, "emp-1")
		require.NoError(t, err)

		for _, b := range again {
			if b.LeaveTypeCode == "MOURNING" {
				assert.Equal(t, 3.0, b.Used)
				assert.Equal(t, 10.0, b.Available)
			}
		}
	})

	t.Run("unknown employee is rejected", func(t *testing.T) {
		_, err := svc.RecomputeBalances(ctx, "ghost")
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestCreateLeaveType(t *testing.T) {
	ctx := authedContext(t)
	svc, _, _, _ := newTestService(t)

	rate := 1.0
	perDays := 20
	created, err := svc.CreateLeaveType(ctx, leave.CreateLeaveTypeRequest{
		Code:           "HOME",
		Name:           "Home Leave",
		AccrualType:    string(leave.AccrualTypePerWorkingDays),
		AccrualRate:    &rate,
		AccrualPerDays: &perDays,
	})
	require.NoError(t, err)
	assert.Equal(t, testCompanyID, created.CompanyID)
	assert.True(t, created.IsActive)
	assert.True(t, created.IsPaid, "paid by default")

	t.Run("duplicate code rejected", func(t *testing.T) {
		_, err := svc.CreateLeaveType(ctx, leave.CreateLeaveTypeRequest{
			Code:           "HOME",
			Name:           "Duplicate",
			AccrualType:    string(leave.AccrualTypePerWorkingDays),
			AccrualRate:    &rate,
			AccrualPerDays: &perDays,
		})
		assert.ErrorIs(t, err, leave.ErrLeaveTypeCodeExists)
	})

	t.Run("per-working-days without a rate fails validation", func(t *testing.T) {
		_, err := svc.CreateLeaveType(ctx, leave.CreateLeaveTypeRequest{
			Code:        "BROKEN",
			Name:        "Broken",
			AccrualType: string(leave.AccrualTypePerWorkingDays),
		})
		assert.Error(t, err)
	})
}
