package payroll

import "context"

// RunService drives the payroll run lifecycle: draft -> processed -> finalized.
type RunService interface {
	CreateRun(ctx context.Context, req CreateRunRequest) (RunResponse, error)
	GetRun(ctx context.Context, id string) (RunResponse, error)
	ListRuns(ctx context.Context, fiscalYear string) ([]RunResponse, error)
	// ProcessRun computes one payslip per active employee and advances the
	// run to processed. All-or-nothing: a failure for any employee leaves
	// the run in draft with no payslips written.
	ProcessRun(ctx context.Context, req ProcessRunRequest) ([]PayslipResponse, error)
	FinalizeRun(ctx context.Context, id string) (RunResponse, error)
	DeleteRun(ctx context.Context, id string) error
	ListPayslips(ctx context.Context, runID string) ([]PayslipResponse, error)
	GetRunSummary(ctx context.Context, runID string) (RunSummaryResponse, error)
}
