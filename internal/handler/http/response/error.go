package response

import (
	"errors"
	"net/http"

	"github.com/karobarhq/payroll-backend-go/internal/domain/company"
	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	"github.com/karobarhq/payroll-backend-go/internal/domain/fiscal"
	"github.com/karobarhq/payroll-backend-go/internal/domain/leave"
	"github.com/karobarhq/payroll-backend-go/internal/domain/payroll"
	"github.com/karobarhq/payroll-backend-go/internal/domain/tax"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrFutureJoinDateNotAllowed),
		errors.Is(err, employee.ErrInvalidGender),
		errors.Is(err, employee.ErrInvalidMaritalStatus),
		errors.Is(err, employee.ErrInvalidEmploymentType),
		errors.Is(err, employee.ErrInvalidSalaryType),
		errors.Is(err, employee.ErrNegativeProbation):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrDuplicateRun):
		Conflict(w, "A payroll run already exists for this period")
	case errors.Is(err, payroll.ErrRunNotInDraft):
		Conflict(w, "Payroll run is not in draft status")
	case errors.Is(err, payroll.ErrRunNotProcessed):
		Conflict(w, "Payroll run is not in processed status")
	case errors.Is(err, payroll.ErrInvalidSalaryConfiguration),
		errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeCodeExists):
		Conflict(w, "Leave type code already exists")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrUnsupportedAccrualType),
		errors.Is(err, leave.ErrInvalidAccrualRule):
		BadRequest(w, err.Error(), nil)

	// Tax domain errors
	case errors.Is(err, tax.ErrBracketNotFound):
		NotFound(w, "Tax bracket not found")
	case errors.Is(err, tax.ErrOverlappingBracket):
		Conflict(w, "Tax bracket overlaps an existing bracket")
	case errors.Is(err, tax.ErrNoTaxBrackets):
		BadRequest(w, err.Error(), nil)

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyNameExists):
		Conflict(w, "Company name already exists")

	// Fiscal calendar errors
	case errors.Is(err, fiscal.ErrFiscalYearNotFound):
		NotFound(w, "Fiscal year not found")
	case errors.Is(err, fiscal.ErrFiscalMonthNotFound):
		NotFound(w, "Fiscal month not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
