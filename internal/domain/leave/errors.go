package leave

import "errors"

var (
	ErrUnsupportedAccrualType = errors.New("unsupported accrual type")
	ErrLeaveTypeNotFound      = errors.New("leave type not found")
	ErrLeaveTypeCodeExists    = errors.New("leave type code already exists")
	ErrBalanceNotFound        = errors.New("leave balance not found")
	ErrInvalidAccrualRule     = errors.New("accrual rate and per-days are required for per-working-days accrual")
)
