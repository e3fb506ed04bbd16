package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	"github.com/karobarhq/payroll-backend-go/internal/domain/payroll"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	statutory    payroll.StatutoryConfig
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository, statutory payroll.StatutoryConfig) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		statutory:    statutory,
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

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	dateOfJoin, _ := time.Parse("2006-01-02", req.DateOfJoin)
	if dateOfJoin.After(time.Now()) {
		return employee.EmployeeResponse{}, employee.ErrFutureJoinDateNotAllowed
	}

	employmentType := employee.EmploymentType(req.EmploymentType)
	salaryType := employee.DefaultSalaryType(employmentType)
	if req.SalaryType != nil {
		salaryType = employee.SalaryType(*req.SalaryType)
	}

	probationMonths := s.statutory.DefaultProbationMonths
	if req.ProbationMonths != nil {
		probationMonths = *req.ProbationMonths
	}
	probationEnd := ProbationEnd(dateOfJoin, probationMonths)

	emp := employee.Employee{
		ID:               uuid.NewString(),
		CompanyID:        companyID,
		EmployeeCode:     req.EmployeeCode,
		FullName:         req.FullName,
		Gender:           employee.Gender(req.Gender),
		MaritalStatus:    employee.MaritalStatus(req.MaritalStatus),
		EmploymentType:   employmentType,
		SalaryType:       salaryType,
		BasicSalary:      decimal.Zero,
		Rate:             decimal.Zero,
		SSFNumber:        req.SSFNumber,
		DateOfJoin:       dateOfJoin,
		ProbationMonths:  probationMonths,
		ProbationEndDate: &probationEnd,
		IsActive:         true,
	}
	if req.BasicSalary != nil {
		emp.BasicSalary = *req.BasicSalary
	}
	if req.Rate != nil {
		emp.Rate = *req.Rate
	}
	if req.EstimatedUnits != nil {
		emp.EstimatedUnits = *req.EstimatedUnits
	}
	if req.DearnessAllowance != nil {
		emp.DearnessAllowance = *req.DearnessAllowance
	} else {
		emp.DearnessAllowance = decimal.Zero
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var employees []employee.Employee
	if activeOnly {
		employees, err = s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	} else {
		employees, err = s.employeeRepo.GetByCompanyID(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToEmployeeResponse(emp))
	}
	return result, nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		current.FullName = *req.FullName
	}
	if req.MaritalStatus != nil {
		current.MaritalStatus = employee.MaritalStatus(*req.MaritalStatus)
	}
	if req.SalaryType != nil {
		current.SalaryType = employee.SalaryType(*req.SalaryType)
	}
	if req.BasicSalary != nil {
		current.BasicSalary = *req.BasicSalary
	}
	if req.Rate != nil {
		current.Rate = *req.Rate
	}
	if req.EstimatedUnits != nil {
		current.EstimatedUnits = *req.EstimatedUnits
	}
	if req.DearnessAllowance != nil {
		current.DearnessAllowance = *req.DearnessAllowance
	}
	if req.SSFNumber != nil {
		current.SSFNumber = req.SSFNumber
	}
	if req.ProbationMonths != nil {
		current.ProbationMonths = *req.ProbationMonths
		probationEnd := ProbationEnd(current.DateOfJoin, current.ProbationMonths)
		current.ProbationEndDate = &probationEnd
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}

	if err := s.employeeRepo.Update(ctx, current); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(current), nil
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.employeeRepo.Delete(ctx, id, companyID)
}

// ========== HELPERS ==========

func mapToEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	var probationEnd *string
	if emp.ProbationEndDate != nil {
		str := emp.ProbationEndDate.Format("2006-01-02")
		probationEnd = &str
	}

	return employee.EmployeeResponse{
		ID:                  emp.ID,
		CompanyID:           emp.CompanyID,
		EmployeeCode:        emp.EmployeeCode,
		FullName:            emp.FullName,
		Gender:              string(emp.Gender),
		MaritalStatus:       string(emp.MaritalStatus),
		EmploymentType:      string(emp.EmploymentType),
		SalaryType:          string(emp.SalaryType),
		BasicSalary:         emp.BasicSalary,
		Rate:                emp.Rate,
		EstimatedUnits:      emp.EstimatedUnits,
		DearnessAllowance:   emp.DearnessAllowance,
		HasContributionFund: emp.HasContributionFund(),
		DateOfJoin:          emp.DateOfJoin.Format("2006-01-02"),
		ProbationMonths:     emp.ProbationMonths,
		ProbationEndDate:    probationEnd,
		OnProbation:         OnProbation(time.Now(), emp.ProbationEndDate),
		IsActive:            emp.IsActive,
	}
}
