package leave

import "context"

// LeaveService covers leave type administration and balance recomputation.
type LeaveService interface {
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	ListLeaveTypes(ctx context.Context, activeOnly bool) ([]LeaveTypeResponse, error)
	UpdateLeaveType(ctx context.Context, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)

	// RecomputeBalances re-derives accrued/available for every applicable
	// leave type of the employee as of the given date. Idempotent: repeated
	// calls with unchanged inputs yield identical balances.
	RecomputeBalances(ctx context.Context, employeeID string) ([]BalanceResponse, error)
	GetBalances(ctx context.Context, employeeID string) ([]BalanceResponse, error)
}
