package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/karobarhq/payroll-backend-go/internal/domain/attendance"
	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	"github.com/karobarhq/payroll-backend-go/internal/domain/fiscal"
	"github.com/karobarhq/payroll-backend-go/internal/domain/payroll"
	"github.com/karobarhq/payroll-backend-go/internal/domain/tax"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/database"
	"github.com/karobarhq/payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type RunServiceImpl struct {
	db             *database.DB
	runRepo        payroll.RunRepository
	employeeRepo   employee.EmployeeRepository
	bracketRepo    tax.BracketRepository
	attendanceRepo attendance.Reader
	calendar       fiscal.Calendar
	calculator     *Calculator
	// withTx wraps the payslip batch insert and the status transition in one
	// transaction; postgresql.WithTransaction in production.
	withTx func(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error
}

func NewRunService(
	db *database.DB,
	runRepo payroll.RunRepository,
	employeeRepo employee.EmployeeRepository,
	bracketRepo tax.BracketRepository,
	attendanceRepo attendance.Reader,
	calendar fiscal.Calendar,
	calculator *Calculator,
) payroll.RunService {
	return &RunServiceImpl{
		db:             db,
		runRepo:        runRepo,
		employeeRepo:   employeeRepo,
		bracketRepo:    bracketRepo,
		attendanceRepo: attendanceRepo,
		calendar:       calendar,
		calculator:     calculator,
		withTx:         postgresql.WithTransaction,
	}
}

// Helper to get company_id from JWT context
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

func (s *RunServiceImpl) CreateRun(ctx context.Context, req payroll.CreateRunRequest) (payroll.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunResponse{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	// Reject duplicates up front; the unique index on
	// (company_id, fiscal_year, month) backstops concurrent creation.
	_, err = s.runRepo.GetRunByPeriod(ctx, companyID, req.FiscalYear, req.Month)
	if err == nil {
		return payroll.RunResponse{}, payroll.ErrDuplicateRun
	}
	if !errors.Is(err, payroll.ErrRunNotFound) {
		return payroll.RunResponse{}, fmt.Errorf("failed to check existing run: %w", err)
	}

	run := payroll.Run{
		ID:         uuid.NewString(),
		CompanyID:  companyID,
		FiscalYear: req.FiscalYear,
		Month:      req.Month,
		Status:     payroll.RunStatusDraft,
	}

	created, err := s.runRepo.CreateRun(ctx, run)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	return mapToRunResponse(created), nil
}

func (s *RunServiceImpl) GetRun(ctx context.Context, id string) (payroll.RunResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	run, err := s.runRepo.GetRunByID(ctx, id, companyID)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	return mapToRunResponse(run), nil
}

func (s *RunServiceImpl) ListRuns(ctx context.Context, fiscalYear string) ([]payroll.RunResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	runs, err := s.runRepo.ListRuns(ctx, companyID, fiscalYear)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.RunResponse, 0, len(runs))
	for _, run := range runs {
		result = append(result, mapToRunResponse(run))
	}
	return result, nil
}

// ProcessRun composes salary normalization, SSF contributions, overtime and
// progressive tax into one payslip per active employee, then advances the
// run to processed. The payslip batch insert and the status transition share
// one transaction: a failure for any employee leaves the run in draft with
// no payslips written.
func (s *RunServiceImpl) ProcessRun(ctx context.Context, req payroll.ProcessRunRequest) ([]payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	run, err := s.runRepo.GetRunByID(ctx, req.RunID, companyID)
	if err != nil {
		return nil, err
	}
	if run.Status != payroll.RunStatusDraft {
		return nil, payroll.ErrRunNotInDraft
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	brackets, err := s.bracketsByStatus(ctx, run.FiscalYear)
	if err != nil {
		return nil, err
	}

	attendanceMap, err := s.attendanceForRun(ctx, companyID, run, employees)
	if err != nil {
		return nil, err
	}

	payslips := make([]payroll.Payslip, 0, len(employees))
	for _, emp := range employees {
		slip, err := s.buildPayslip(run, emp, brackets[emp.MaritalStatus], attendanceMap[emp.ID], req)
		if err != nil {
			return nil, err
		}
		payslips = append(payslips, slip)
	}

	var processed payroll.Run
	err = s.withTx(ctx, s.db, func(tx pgx.Tx) error {
		if err := s.runRepo.InsertPayslipsTx(ctx, tx, payslips); err != nil {
			return fmt.Errorf("insert payslips: %w", err)
		}
		marked, err := s.runRepo.MarkProcessedTx(ctx, tx, run.ID)
		if err != nil {
			return fmt.Errorf("mark run processed: %w", err)
		}
		processed = marked
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("payroll run processed",
		"run_id", processed.ID,
		"fiscal_year", processed.FiscalYear,
		"month", processed.Month,
		"payslip_count", len(payslips),
	)

	result := make([]payroll.PayslipResponse, 0, len(payslips))
	for _, slip := range payslips {
		result = append(result, mapToPayslipResponse(slip))
	}
	return result, nil
}

// buildPayslip runs the full calculation chain for one employee.
func (s *RunServiceImpl) buildPayslip(
	run payroll.Run,
	emp employee.Employee,
	brackets []tax.Bracket,
	att attendance.Summary,
	req payroll.ProcessRunRequest,
) (payroll.Payslip, error) {
	basic, err := s.calculator.NormalizeMonthlySalary(emp)
	if err != nil {
		return payroll.Payslip{}, err
	}

	overtimeHours := req.OvertimeHours[emp.ID]
	overtimeAmount := s.calculator.Overtime(basic, overtimeHours)

	festival := decimal.Zero
	if req.IncludeFestivalAllowance {
		festival = basic
	}

	gross := basic.Add(emp.DearnessAllowance).Add(overtimeAmount).Add(festival)

	enrolled := emp.HasContributionFund()
	contribution := s.calculator.Contribution(basic, enrolled)

	taxResult, err := s.calculator.MonthlyTax(gross, brackets, enrolled)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("employee %s: %w", emp.ID, err)
	}

	net := gross.Sub(contribution.Employee).Sub(taxResult.MonthlyTax)

	return payroll.Payslip{
		ID:                   uuid.NewString(),
		PayrollRunID:         run.ID,
		EmployeeID:           emp.ID,
		BasicSalary:          basic.Round(2),
		DearnessAllowance:    emp.DearnessAllowance.Round(2),
		OvertimeHours:        overtimeHours,
		OvertimeAmount:       overtimeAmount,
		FestivalAllowance:    festival.Round(2),
		GrossSalary:          gross.Round(2),
		EmployeeContribution: contribution.Employee,
		EmployerContribution: contribution.Employer,
		TaxAmount:            taxResult.MonthlyTax,
		TaxBreakdown:         taxResult.Breakdown,
		NetSalary:            net.Round(2),
		WorkingDays:          att.WorkingDays,
		PresentDays:          att.PresentDays,
		LeaveDays:            att.LeaveDays,
	}, nil
}

// bracketsByStatus loads the fiscal year's tables once per marital status
// instead of per employee.
func (s *RunServiceImpl) bracketsByStatus(ctx context.Context, fiscalYear string) (map[employee.MaritalStatus][]tax.Bracket, error) {
	result := make(map[employee.MaritalStatus][]tax.Bracket, 2)
	for _, status := range []employee.MaritalStatus{employee.MaritalStatusSingle, employee.MaritalStatusMarried} {
		brackets, err := s.bracketRepo.GetByFiscalYear(ctx, fiscalYear, status)
		if err != nil {
			return nil, fmt.Errorf("failed to load tax brackets for %s/%s: %w", fiscalYear, status, err)
		}
		result[status] = brackets
	}
	return result, nil
}

func (s *RunServiceImpl) attendanceForRun(ctx context.Context, companyID string, run payroll.Run, employees []employee.Employee) (map[string]attendance.Summary, error) {
	period, err := s.calendar.MonthPeriod(ctx, run.FiscalYear, run.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve month period: %w", err)
	}

	ids := make([]string, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
	}

	summaries, err := s.attendanceRepo.SummaryByPeriod(ctx, companyID, period.Start, period.End, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance summary: %w", err)
	}

	result := make(map[string]attendance.Summary, len(summaries))
	for _, summary := range summaries {
		result[summary.EmployeeID] = summary
	}
	return result, nil
}

func (s *RunServiceImpl) FinalizeRun(ctx context.Context, id string) (payroll.RunResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	run, err := s.runRepo.GetRunByID(ctx, id, companyID)
	if err != nil {
		return payroll.RunResponse{}, err
	}
	if run.Status != payroll.RunStatusProcessed {
		return payroll.RunResponse{}, payroll.ErrRunNotProcessed
	}

	finalized, err := s.runRepo.MarkFinalized(ctx, id, companyID)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	return mapToRunResponse(finalized), nil
}

func (s *RunServiceImpl) DeleteRun(ctx context.Context, id string) error {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return err
	}

	run, err := s.runRepo.GetRunByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if run.Status != payroll.RunStatusDraft {
		return payroll.ErrRunNotInDraft
	}

	return s.runRepo.DeleteRun(ctx, id, companyID)
}

func (s *RunServiceImpl) ListPayslips(ctx context.Context, runID string) ([]payroll.PayslipResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	payslips, err := s.runRepo.ListPayslipsByRun(ctx, runID, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayslipResponse, 0, len(payslips))
	for _, slip := range payslips {
		result = append(result, mapToPayslipResponse(slip))
	}
	return result, nil
}

func (s *RunServiceImpl) GetRunSummary(ctx context.Context, runID string) (payroll.RunSummaryResponse, error) {
	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.RunSummaryResponse{}, err
	}

	payslips, err := s.runRepo.ListPayslipsByRun(ctx, runID, companyID)
	if err != nil {
		return payroll.RunSummaryResponse{}, err
	}

	summary := payroll.RunSummaryResponse{
		RunID:         runID,
		EmployeeCount: len(payslips),
		TotalGross:    decimal.Zero,
		TotalTax:      decimal.Zero,
		TotalSSF:      decimal.Zero,
		TotalNet:      decimal.Zero,
	}
	for _, slip := range payslips {
		summary.TotalGross = summary.TotalGross.Add(slip.GrossSalary)
		summary.TotalTax = summary.TotalTax.Add(slip.TaxAmount)
		summary.TotalSSF = summary.TotalSSF.Add(slip.EmployeeContribution)
		summary.TotalNet = summary.TotalNet.Add(slip.NetSalary)
	}
	return summary, nil
}

// ========== HELPERS ==========

func mapToRunResponse(run payroll.Run) payroll.RunResponse {
	var processedAt, finalizedAt *string
	if run.ProcessedAt != nil {
		str := run.ProcessedAt.Format(time.RFC3339)
		processedAt = &str
	}
	if run.FinalizedAt != nil {
		str := run.FinalizedAt.Format(time.RFC3339)
		finalizedAt = &str
	}

	return payroll.RunResponse{
		ID:          run.ID,
		CompanyID:   run.CompanyID,
		FiscalYear:  run.FiscalYear,
		Month:       run.Month,
		Status:      string(run.Status),
		ProcessedAt: processedAt,
		FinalizedAt: finalizedAt,
	}
}

func mapToPayslipResponse(slip payroll.Payslip) payroll.PayslipResponse {
	employeeName := ""
	employeeCode := ""
	if slip.EmployeeName != nil {
		employeeName = *slip.EmployeeName
	}
	if slip.EmployeeCode != nil {
		employeeCode = *slip.EmployeeCode
	}

	return payroll.PayslipResponse{
		ID:                   slip.ID,
		PayrollRunID:         slip.PayrollRunID,
		EmployeeID:           slip.EmployeeID,
		EmployeeName:         employeeName,
		EmployeeCode:         employeeCode,
		BasicSalary:          slip.BasicSalary,
		DearnessAllowance:    slip.DearnessAllowance,
		OvertimeHours:        slip.OvertimeHours,
		OvertimeAmount:       slip.OvertimeAmount,
		FestivalAllowance:    slip.FestivalAllowance,
		GrossSalary:          slip.GrossSalary,
		EmployeeContribution: slip.EmployeeContribution,
		EmployerContribution: slip.EmployerContribution,
		TaxAmount:            slip.TaxAmount,
		TaxBreakdown:         slip.TaxBreakdown,
		NetSalary:            slip.NetSalary,
		WorkingDays:          slip.WorkingDays,
		PresentDays:          slip.PresentDays,
		LeaveDays:            slip.LeaveDays,
	}
}
