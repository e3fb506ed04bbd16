package employee

import "time"

// ProbationEnd adds whole calendar months to the join date, clamping the
// day-of-month to the target month's length (Jan 31 + 1 month = Feb 28/29).
// time.AddDate would roll Jan 31 + 1 month into March, so the date is built
// by hand.
func ProbationEnd(dateOfJoin time.Time, months int) time.Time {
	year := dateOfJoin.Year()
	month := int(dateOfJoin.Month()) + months

	year += (month - 1) / 12
	month = (month-1)%12 + 1

	day := dateOfJoin.Day()
	if last := daysInMonth(year, time.Month(month)); day > last {
		day = last
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, dateOfJoin.Location())
}

// OnProbation reports whether the employee is still inside the probation
// window at the given instant. A nil end date means no probation applies.
func OnProbation(now time.Time, probationEnd *time.Time) bool {
	return probationEnd != nil && now.Before(*probationEnd)
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
