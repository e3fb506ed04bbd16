package employee

import "errors"

var (
	ErrEmployeeNotFound         = errors.New("employee not found")
	ErrEmployeeCodeExists       = errors.New("employee code already exists")
	ErrInvalidGender            = errors.New("gender must be male, female or other")
	ErrInvalidMaritalStatus     = errors.New("marital status must be single or married")
	ErrInvalidEmploymentType    = errors.New("invalid employment type")
	ErrInvalidSalaryType        = errors.New("invalid salary type")
	ErrFutureJoinDateNotAllowed = errors.New("date of join cannot be in the future")
	ErrEmployeeAlreadyActive    = errors.New("employee is already active")
	ErrEmployeeAlreadyInactive  = errors.New("employee is already inactive")
	ErrUnauthorized             = errors.New("unauthorized to access this employee")
	ErrNegativeProbation        = errors.New("probation months cannot be negative")
)
