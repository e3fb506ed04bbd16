package tax

import (
	"time"

	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// Bracket is one slab of the progressive income tax table for a fiscal year
// and marital status. Brackets are shared read-only reference data.
//
// MaxAmount nil means the unbounded top bracket. Brackets for a given
// (fiscal year, marital status) pair are contiguous, ordered ascending by
// MinAmount and non-overlapping; the lowest slab carries the social
// contribution tax, which is waived for SSF-enrolled employees.
type Bracket struct {
	ID            string
	FiscalYear    string
	MaritalStatus employee.MaritalStatus
	MinAmount     decimal.Decimal
	MaxAmount     *decimal.Decimal
	Rate          decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Width returns the taxable span of the bracket, or nil for the top bracket.
func (b Bracket) Width() *decimal.Decimal {
	if b.MaxAmount == nil {
		return nil
	}
	w := b.MaxAmount.Sub(b.MinAmount)
	return &w
}
