package payroll

import (
	"testing"

	"github.com/karobarhq/payroll-backend-go/internal/domain/employee"
	"github.com/karobarhq/payroll-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoSlabBrackets is the minimal progressive table: a 1% social contribution
// slab up to 25,000 and 10% above it.
func twoSlabBrackets() []tax.Bracket {
	upper := dec("25000")
	return []tax.Bracket{
		{FiscalYear: "2082/83", MaritalStatus: employee.MaritalStatusSingle, MinAmount: decimal.Zero, MaxAmount: &upper, Rate: dec("0.01")},
		{FiscalYear: "2082/83", MaritalStatus: employee.MaritalStatusSingle, MinAmount: upper, MaxAmount: nil, Rate: dec("0.10")},
	}
}

func singleBrackets2082() []tax.Bracket {
	bound := func(s string) *decimal.Decimal {
		d := dec(s)
		return &d
	}
	return []tax.Bracket{
		{MinAmount: dec("0"), MaxAmount: bound("500000"), Rate: dec("0.01")},
		{MinAmount: dec("500000"), MaxAmount: bound("700000"), Rate: dec("0.10")},
		{MinAmount: dec("700000"), MaxAmount: bound("1000000"), Rate: dec("0.20")},
		{MinAmount: dec("1000000"), MaxAmount: bound("2000000"), Rate: dec("0.30")},
		{MinAmount: dec("2000000"), MaxAmount: nil, Rate: dec("0.36")},
	}
}

func TestAnnualTax_ProgressiveWalk(t *testing.T) {
	calc := testCalculator()

	// 600,000 across [0, 25k]@1% and [25k, inf)@10%:
	// 25,000 x 0.01 + 575,000 x 0.10 = 250 + 57,500 = 57,750
	result, err := calc.AnnualTax(dec("600000"), twoSlabBrackets(), false)
	require.NoError(t, err)

	assert.True(t, result.AnnualTax.Equal(dec("57750")), "annual: %s", result.AnnualTax)
	assert.True(t, result.MonthlyTax.Equal(dec("4812.50")), "monthly: %s", result.MonthlyTax)
	require.Len(t, result.Breakdown, 2)
	assert.True(t, result.Breakdown[0].TaxAmount.Equal(dec("250")))
	assert.True(t, result.Breakdown[1].TaxAmount.Equal(dec("57500")))
}

func TestAnnualTax_SSFWaivesLowestSlab(t *testing.T) {
	calc := testCalculator()

	result, err := calc.AnnualTax(dec("600000"), twoSlabBrackets(), true)
	require.NoError(t, err)

	// The 1% slab is waived but its line stays in the breakdown.
	assert.True(t, result.AnnualTax.Equal(dec("57500")), "annual: %s", result.AnnualTax)
	require.Len(t, result.Breakdown, 2)
	assert.True(t, result.Breakdown[0].TaxAmount.IsZero())
	assert.True(t, result.Breakdown[0].Taxable.Equal(dec("25000")), "waived slab keeps its taxable span")
}

func TestAnnualTax_StatutoryTable(t *testing.T) {
	calc := testCalculator()
	brackets := singleBrackets2082()

	tests := []struct {
		name     string
		income   string
		expected string
	}{
		// 500k x 1% = 5,000
		{"income inside first slab boundary", "500000", "5000"},
		// 5,000 + 200k x 10% = 25,000
		{"income at second slab boundary", "700000", "25000"},
		// 5,000 + 20,000 + 300k x 20% + 1M x 30% + 1M x 36% = 745,000
		{"income in top slab", "3000000", "745000"},
		{"zero income owes nothing", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.AnnualTax(dec(tt.income), brackets, false)
			require.NoError(t, err)
			assert.True(t, result.AnnualTax.Equal(dec(tt.expected)),
				"income %s: expected %s, got %s", tt.income, tt.expected, result.AnnualTax)
		})
	}
}

func TestAnnualTax_Monotonicity(t *testing.T) {
	calc := testCalculator()
	brackets := singleBrackets2082()

	previous := decimal.Zero
	for _, income := range []string{"100000", "500000", "500001", "700000", "1000000", "2000000", "2500000"} {
		result, err := calc.AnnualTax(dec(income), brackets, false)
		require.NoError(t, err)
		assert.True(t, result.AnnualTax.GreaterThanOrEqual(previous),
			"tax decreased at income %s: %s < %s", income, result.AnnualTax, previous)
		previous = result.AnnualTax
	}
}

func TestAnnualTax_NoBrackets(t *testing.T) {
	calc := testCalculator()

	_, err := calc.AnnualTax(dec("600000"), nil, false)
	assert.ErrorIs(t, err, tax.ErrNoTaxBrackets)
}

func TestMonthlyTax_Annualizes(t *testing.T) {
	calc := testCalculator()

	// 50,000/month = 600,000/year, same table as the annual walk above.
	result, err := calc.MonthlyTax(dec("50000"), twoSlabBrackets(), false)
	require.NoError(t, err)
	assert.True(t, result.MonthlyTax.Equal(dec("4812.50")), "monthly: %s", result.MonthlyTax)
}
