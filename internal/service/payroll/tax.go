package payroll

import (
	"fmt"

	"github.com/karobarhq/payroll-backend-go/internal/domain/payroll"
	"github.com/karobarhq/payroll-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// TaxResult is the outcome of walking the bracket table for one employee.
type TaxResult struct {
	AnnualTax  decimal.Decimal
	MonthlyTax decimal.Decimal
	Breakdown  []payroll.TaxLine
}

// AnnualTax walks the ordered bracket list and taxes the portion of income
// falling inside each slab. The slab whose rate equals the social security
// tax rate is forced to a zero line for SSF-enrolled employees; the
// obligation is already met through the fund contribution. The line is still
// emitted so the payslip breakdown stays complete.
func (c *Calculator) AnnualTax(annualIncome decimal.Decimal, brackets []tax.Bracket, hasContributionFund bool) (TaxResult, error) {
	if len(brackets) == 0 {
		return TaxResult{}, tax.ErrNoTaxBrackets
	}

	total := decimal.Zero
	breakdown := make([]payroll.TaxLine, 0, len(brackets))

	for _, b := range brackets {
		taxable := decimal.Zero
		if annualIncome.GreaterThan(b.MinAmount) {
			taxable = annualIncome.Sub(b.MinAmount)
			if width := b.Width(); width != nil && taxable.GreaterThan(*width) {
				taxable = *width
			}
		}

		amount := taxable.Mul(b.Rate)
		if hasContributionFund && b.Rate.Equal(c.cfg.SocialSecurityTaxRate) {
			amount = decimal.Zero
		}

		total = total.Add(amount)
		breakdown = append(breakdown, payroll.TaxLine{
			MinAmount: b.MinAmount,
			MaxAmount: b.MaxAmount,
			Rate:      b.Rate,
			Taxable:   taxable,
			TaxAmount: amount.Round(2),
		})
	}

	return TaxResult{
		AnnualTax:  total.Round(2),
		MonthlyTax: total.Div(monthsPerYear).Round(2),
		Breakdown:  breakdown,
	}, nil
}

// MonthlyTax annualizes a monthly gross (x12) and returns the tax due per
// month for that income level.
func (c *Calculator) MonthlyTax(monthlyGross decimal.Decimal, brackets []tax.Bracket, hasContributionFund bool) (TaxResult, error) {
	result, err := c.AnnualTax(monthlyGross.Mul(monthsPerYear), brackets, hasContributionFund)
	if err != nil {
		return TaxResult{}, fmt.Errorf("compute monthly tax: %w", err)
	}
	return result, nil
}
