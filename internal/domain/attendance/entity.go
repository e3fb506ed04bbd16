package attendance

// Summary aggregates attendance rows for one employee over a date range.
// Supplied by the attendance subsystem, consumed read-only by payroll and
// leave accrual.
type Summary struct {
	EmployeeID  string
	WorkingDays int
	PresentDays int
	LeaveDays   int
}
