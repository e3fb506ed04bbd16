package payroll

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// RunRepository defines data access for payroll runs and their payslips.
// All methods take companyID to prevent cross-company data access.
type RunRepository interface {
	CreateRun(ctx context.Context, run Run) (Run, error)
	GetRunByID(ctx context.Context, id string, companyID string) (Run, error)
	GetRunByPeriod(ctx context.Context, companyID, fiscalYear string, month int) (Run, error)
	ListRuns(ctx context.Context, companyID string, fiscalYear string) ([]Run, error)
	DeleteRun(ctx context.Context, id string, companyID string) error

	// MarkProcessedTx advances a draft run to processed inside tx; it must
	// share the transaction with InsertPayslipsTx so a partial batch never
	// survives.
	MarkProcessedTx(ctx context.Context, tx pgx.Tx, runID string) (Run, error)
	InsertPayslipsTx(ctx context.Context, tx pgx.Tx, payslips []Payslip) error

	MarkFinalized(ctx context.Context, runID string, companyID string) (Run, error)

	ListPayslipsByRun(ctx context.Context, runID string, companyID string) ([]Payslip, error)
	GetPayslipByID(ctx context.Context, id string, companyID string) (Payslip, error)
}
