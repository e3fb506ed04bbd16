package employee

import (
	"testing"

	"github.com/karobarhq/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeRequestValidate_SalaryConfiguration(t *testing.T) {
	salary := decimal.NewFromInt(50000)
	rate := decimal.NewFromInt(1000)
	zero := decimal.Zero
	units := 20
	perTask := string(SalaryTypePerTask)

	base := CreateEmployeeRequest{
		EmployeeCode:  "EMP-001",
		FullName:      "Sita Sharma",
		Gender:        "female",
		MaritalStatus: "single",
		DateOfJoin:    "2025-07-17",
	}

	t.Run("monthly regular needs no rate", func(t *testing.T) {
		req := base
		req.EmploymentType = string(EmploymentTypeRegular)
		req.BasicSalary = &salary
		assert.NoError(t, req.Validate())
	})

	t.Run("casual defaults to daily and requires a rate", func(t *testing.T) {
		req := base
		req.EmploymentType = string(EmploymentTypeCasual)

		err := req.Validate()
		require.Error(t, err)
		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "rate")
	})

	t.Run("zero rate is as bad as no rate", func(t *testing.T) {
		req := base
		req.EmploymentType = string(EmploymentTypePartTime)
		req.Rate = &zero
		assert.Error(t, req.Validate())
	})

	t.Run("daily with a positive rate passes", func(t *testing.T) {
		req := base
		req.EmploymentType = string(EmploymentTypeCasual)
		req.Rate = &rate
		assert.NoError(t, req.Validate())
	})

	t.Run("explicit salary type overrides the employment-type default", func(t *testing.T) {
		monthly := string(SalaryTypeMonthly)
		req := base
		req.EmploymentType = string(EmploymentTypeCasual)
		req.SalaryType = &monthly
		req.BasicSalary = &salary
		assert.NoError(t, req.Validate())
	})

	t.Run("per-task requires rate and estimated units", func(t *testing.T) {
		req := base
		req.EmploymentType = string(EmploymentTypeRegular)
		req.SalaryType = &perTask
		req.Rate = &rate

		err := req.Validate()
		require.Error(t, err)
		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "estimated_units")

		req.EstimatedUnits = &units
		assert.NoError(t, req.Validate())
	})
}
