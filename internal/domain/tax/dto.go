package tax

import (
	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	"github.com/karobarhq/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateBracketRequest struct {
	FiscalYear    string           `json:"fiscal_year"`
	MaritalStatus string           `json:"marital_status"`
	MinAmount     decimal.Decimal  `json:"min_amount"`
	MaxAmount     *decimal.Decimal `json:"max_amount,omitempty"`
	Rate          decimal.Decimal  `json:"rate"`
}

func (r *CreateBracketRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidFiscalYearLabel(r.FiscalYear) {
		errs = append(errs, validator.ValidationError{Field: "fiscal_year", Message: "must look like 2082/83"})
	}
	valid := []string{string(employee.MaritalStatusSingle), string(employee.MaritalStatusMarried)}
	if !validator.IsInSlice(r.MaritalStatus, valid) {
		errs = append(errs, validator.ValidationError{Field: "marital_status", Message: "must be single or married"})
	}
	if r.MinAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "min_amount", Message: "must be non-negative"})
	}
	if r.MaxAmount != nil && !r.MaxAmount.GreaterThan(r.MinAmount) {
		errs = append(errs, validator.ValidationError{Field: "max_amount", Message: "must be greater than min_amount"})
	}
	if r.Rate.IsNegative() || r.Rate.GreaterThan(decimal.NewFromInt(1)) {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be a fraction between 0 and 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BracketResponse struct {
	ID            string           `json:"id"`
	FiscalYear    string           `json:"fiscal_year"`
	MaritalStatus string           `json:"marital_status"`
	MinAmount     decimal.Decimal  `json:"min_amount"`
	MaxAmount     *decimal.Decimal `json:"max_amount,omitempty"`
	Rate          decimal.Decimal  `json:"rate"`
}
