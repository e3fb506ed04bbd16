package tax

import (
	"context"

	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
)

// BracketRepository provides access to the tax_brackets reference table.
type BracketRepository interface {
	Create(ctx context.Context, bracket Bracket) (Bracket, error)
	// GetByFiscalYear returns the brackets for (fiscalYear, maritalStatus)
	// ordered ascending by min_amount.
	GetByFiscalYear(ctx context.Context, fiscalYear string, status employee.MaritalStatus) ([]Bracket, error)
	ListByFiscalYear(ctx context.Context, fiscalYear string) ([]Bracket, error)
	Delete(ctx context.Context, id string) error
}
