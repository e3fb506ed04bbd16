package payroll

import "errors"

var (
	ErrInvalidSalaryConfiguration = errors.New("invalid salary configuration for salary type")
	ErrDuplicateRun               = errors.New("payroll run already exists for this period")
	ErrRunNotFound                = errors.New("payroll run not found")
	ErrRunNotInDraft              = errors.New("payroll run is not in draft status")
	ErrRunNotProcessed            = errors.New("payroll run is not in processed status")
	ErrPayslipNotFound            = errors.New("payslip not found")
	ErrInvalidMonth               = errors.New("month must be between 1 and 12")
)
