package company

import "time"

// Company is the payroll tenant. Every employee, leave type and payroll run
// is scoped to one company; the company_id claim in the access token selects
// the tenant for a request.
type Company struct {
	ID        string
	Name      string
	PANNumber *string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
