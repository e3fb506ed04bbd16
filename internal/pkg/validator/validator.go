package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Fiscal-year labels look like "2082/83". The engine never computes with
// the label, this only guards obvious typos on input.
var fiscalYearRegex = regexp.MustCompile(`^\d{4}/\d{2}$`)

func IsValidFiscalYearLabel(label string) bool {
	return fiscalYearRegex.MatchString(label)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

var employeeCodeRegex = regexp.MustCompile(`^[A-Z0-9][A-Z0-9-]{1,19}$`)

func IsValidEmployeeCode(code string) bool {
	return employeeCodeRegex.MatchString(code)
}

var ssfNumberRegex = regexp.MustCompile(`^[0-9]{9,12}$`)

// SSF registration numbers are 9-12 digit fund identifiers.
func IsValidSSFNumber(ssf string) bool {
	return ssfNumberRegex.MatchString(ssf)
}
