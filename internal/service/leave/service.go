package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/karobarhq/payroll-backend-go/internal/domain/attendance"
	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	"github.com/karobarhq/payroll-backend-go/internal/domain/fiscal"
	"github.com/karobarhq/payroll-backend-go/internal/domain/leave"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	db             *database.DB
	leaveTypeRepo  leave.LeaveTypeRepository
	balanceRepo    leave.BalanceRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.Reader
	calendar       fiscal.Calendar
	calculator     *AccrualCalculator
}

func NewLeaveService(
	db *database.DB,
	leaveTypeRepo leave.LeaveTypeRepository,
	balanceRepo leave.BalanceRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.Reader,
	calendar fiscal.Calendar,
	calculator *AccrualCalculator,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:             db,
		leaveTypeRepo:  leaveTypeRepo,
		balanceRepo:    balanceRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		calendar:       calendar,
		calculator:     calculator,
	}
}

func getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// ========== LEAVE TYPE ADMIN ==========

func (s *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	isPaid := true
	if req.IsPaid != nil {
		isPaid = *req.IsPaid
	}

	maxCarryForward := 0.0
	if req.MaxCarryForward != nil {
		maxCarryForward = *req.MaxCarryForward
	}

	var genderRestriction *employee.Gender
	if req.GenderRestriction != nil {
		g := employee.Gender(*req.GenderRestriction)
		genderRestriction = &g
	}

	leaveType := leave.LeaveType{
		ID:                uuid.NewString(),
		CompanyID:         companyID,
		Code:              req.Code,
		Name:              req.Name,
		AnnualEntitlement: req.AnnualEntitlement,
		MaxAccrual:        req.MaxAccrual,
		MaxCarryForward:   maxCarryForward,
		AccrualType:       leave.AccrualType(req.AccrualType),
		GenderRestriction: genderRestriction,
		IsPaid:            isPaid,
		IsActive:          true,
	}
	if req.AccrualRate != nil {
		leaveType.AccrualRate = *req.AccrualRate
	}
	if req.AccrualPerDays != nil {
		leaveType.AccrualPerDays = *req.AccrualPerDays
	}

	created, err := s.leaveTypeRepo.Create(ctx, leaveType)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	return mapToLeaveTypeResponse(created), nil
}

func (s *LeaveServiceImpl) ListLeaveTypes(ctx context.Context, activeOnly bool) ([]leave.LeaveTypeResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var leaveTypes []leave.LeaveType
	if activeOnly {
		leaveTypes, err = s.leaveTypeRepo.GetActiveByCompanyID(ctx, companyID)
	} else {
		leaveTypes, err = s.leaveTypeRepo.GetByCompanyID(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}

	result := make([]leave.LeaveTypeResponse, 0, len(leaveTypes))
	for _, lt := range leaveTypes {
		result = append(result, mapToLeaveTypeResponse(lt))
	}
	return result, nil
}

func (s *LeaveServiceImpl) UpdateLeaveType(ctx context.Context, req leave.UpdateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	current, err := s.leaveTypeRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.AnnualEntitlement != nil {
		current.AnnualEntitlement = *req.AnnualEntitlement
	}
	if req.MaxAccrual != nil {
		current.MaxAccrual = req.MaxAccrual
	}
	if req.MaxCarryForward != nil {
		current.MaxCarryForward = *req.MaxCarryForward
	}
	if req.IsPaid != nil {
		current.IsPaid = *req.IsPaid
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}

	if err := s.leaveTypeRepo.Update(ctx, current); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	return mapToLeaveTypeResponse(current), nil
}

// ========== BALANCES ==========

// RecomputeBalances re-derives accrued/available for every active,
// gender-eligible leave type of the employee as of today. Used is owned by
// the leave-request approval workflow and passes through untouched, so
// repeated recomputation never double-counts.
func (s *LeaveServiceImpl) RecomputeBalances(ctx context.Context, employeeID string) ([]leave.BalanceResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	now := time.Now()
	year, err := s.calendar.Current(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve fiscal year: %w", err)
	}

	leaveTypes, err := s.leaveTypeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave types: %w", err)
	}

	result := make([]leave.BalanceResponse, 0, len(leaveTypes))
	for _, leaveType := range leaveTypes {
		if !leaveType.AppliesTo(emp.Gender) {
			slog.Debug("leave type not applicable",
				"employee_id", emp.ID,
				"leave_type", leaveType.Code,
				"gender", emp.Gender,
			)
			continue
		}

		balance, err := s.recomputeOne(ctx, emp, leaveType, year, now)
		if err != nil {
			return nil, err
		}
		result = append(result, mapToBalanceResponse(balance))
	}

	return result, nil
}

func (s *LeaveServiceImpl) recomputeOne(
	ctx context.Context,
	emp employee.Employee,
	leaveType leave.LeaveType,
	year fiscal.Period,
	asOf time.Time,
) (leave.Balance, error) {
	// Existing row keeps carry-forward and used; first recompute of the
	// year starts both at zero.
	existing, err := s.balanceRepo.GetByEmployeeTypeYear(ctx, emp.ID, leaveType.ID, year.Label)
	if err != nil && !errors.Is(err, leave.ErrBalanceNotFound) {
		return leave.Balance{}, fmt.Errorf("failed to get balance: %w", err)
	}

	input := BalanceInput{
		LeaveType:    leaveType,
		Employee:     emp,
		Year:         year,
		AsOf:         asOf,
		CarryForward: existing.CarryForward,
		Used:         existing.Used,
	}

	if leaveType.AccrualType == leave.AccrualTypePerWorkingDays {
		start := accrualStart(year, emp.DateOfJoin)
		workingDays, err := s.attendanceRepo.WorkingDaysSince(ctx, emp.ID, start, asOf)
		if err != nil {
			return leave.Balance{}, fmt.Errorf("failed to count working days: %w", err)
		}
		input.WorkingDays = workingDays
	}

	computed, err := s.calculator.ComputeBalance(input)
	if err != nil {
		return leave.Balance{}, err
	}

	balance := leave.Balance{
		ID:           existing.ID,
		EmployeeID:   emp.ID,
		LeaveTypeID:  leaveType.ID,
		FiscalYear:   year.Label,
		Accrued:      computed.Accrued,
		CarryForward: existing.CarryForward,
		Used:         existing.Used,
		Available:    computed.Available,
	}
	if balance.ID == "" {
		balance.ID = uuid.NewString()
	}

	upserted, err := s.balanceRepo.Upsert(ctx, balance)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to upsert balance: %w", err)
	}
	upserted.LeaveTypeCode = &leaveType.Code
	upserted.LeaveTypeName = &leaveType.Name
	return upserted, nil
}

func (s *LeaveServiceImpl) GetBalances(ctx context.Context, employeeID string) ([]leave.BalanceResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Scope check before reading balances.
	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return nil, err
	}

	year, err := s.calendar.Current(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve fiscal year: %w", err)
	}

	balances, err := s.balanceRepo.GetByEmployeeAndYear(ctx, emp.ID, year.Label)
	if err != nil {
		return nil, err
	}

	result := make([]leave.BalanceResponse, 0, len(balances))
	for _, balance := range balances {
		result = append(result, mapToBalanceResponse(balance))
	}
	return result, nil
}

// ========== HELPERS ==========

func mapToLeaveTypeResponse(lt leave.LeaveType) leave.LeaveTypeResponse {
	var genderRestriction *string
	if lt.GenderRestriction != nil {
		str := string(*lt.GenderRestriction)
		genderRestriction = &str
	}

	return leave.LeaveTypeResponse{
		ID:                lt.ID,
		CompanyID:         lt.CompanyID,
		Code:              lt.Code,
		Name:              lt.Name,
		AnnualEntitlement: lt.AnnualEntitlement,
		MaxAccrual:        lt.MaxAccrual,
		MaxCarryForward:   lt.MaxCarryForward,
		AccrualType:       string(lt.AccrualType),
		AccrualRate:       lt.AccrualRate,
		AccrualPerDays:    lt.AccrualPerDays,
		GenderRestriction: genderRestriction,
		IsPaid:            lt.IsPaid,
		IsActive:          lt.IsActive,
	}
}

func mapToBalanceResponse(b leave.Balance) leave.BalanceResponse {
	code := ""
	name := ""
	if b.LeaveTypeCode != nil {
		code = *b.LeaveTypeCode
	}
	if b.LeaveTypeName != nil {
		name = *b.LeaveTypeName
	}

	return leave.BalanceResponse{
		ID:            b.ID,
		EmployeeID:    b.EmployeeID,
		LeaveTypeID:   b.LeaveTypeID,
		LeaveTypeCode: code,
		LeaveTypeName: name,
		FiscalYear:    b.FiscalYear,
		Accrued:       b.Accrued,
		CarryForward:  b.CarryForward,
		Used:          b.Used,
		Available:     b.Available,
	}
}
