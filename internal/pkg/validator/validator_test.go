package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidFiscalYearLabel(t *testing.T) {
	assert.True(t, IsValidFiscalYearLabel("2082/83"))
	assert.True(t, IsValidFiscalYearLabel("2099/00"))

	assert.False(t, IsValidFiscalYearLabel("2082"))
	assert.False(t, IsValidFiscalYearLabel("2082/083"))
	assert.False(t, IsValidFiscalYearLabel("82/83"))
	assert.False(t, IsValidFiscalYearLabel("2082-83"))
	assert.False(t, IsValidFiscalYearLabel(""))
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP-001"))
	assert.True(t, IsValidEmployeeCode("A1"))

	assert.False(t, IsValidEmployeeCode("e-001"), "lowercase rejected")
	assert.False(t, IsValidEmployeeCode("-001"), "must start alphanumeric")
	assert.False(t, IsValidEmployeeCode("E"), "too short")
}

func TestIsValidSSFNumber(t *testing.T) {
	assert.True(t, IsValidSSFNumber("123456789"))
	assert.True(t, IsValidSSFNumber("123456789012"))

	assert.False(t, IsValidSSFNumber("12345678"), "too short")
	assert.False(t, IsValidSSFNumber("1234567890123"), "too long")
	assert.False(t, IsValidSSFNumber("12345678X"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "code", Message: "is required"},
		{Field: "month", Message: "must be between 1 and 12"},
	}

	assert.Equal(t, "code: is required; month: must be between 1 and 12", errs.Error())
	assert.Equal(t, map[string]string{
		"code":  "is required",
		"month": "must be between 1 and 12",
	}, errs.ToMap())
}
