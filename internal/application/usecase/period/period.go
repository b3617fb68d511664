// Package period provides shared calendar-range helpers for the aggregation
// use cases. All bounds are computed in UTC.
package period

import "time"

// MonthRange returns the first and last instants of the given month.
// The end bound is inclusive (last nanosecond of the month).
func MonthRange(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// DayRange returns the first and last instants of the calendar day
// containing t. The end bound is inclusive.
func DayRange(t time.Time) (start, end time.Time) {
	u := t.UTC()
	start = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// ValidYearMonth reports whether the pair denotes a real calendar month.
// Years outside [1970, 9999] are rejected as obviously malformed input.
func ValidYearMonth(year, month int) bool {
	return year >= 1970 && year <= 9999 && month >= 1 && month <= 12
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}
