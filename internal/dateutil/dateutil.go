// Package dateutil normalizes dates for range filtering and bucketing.
//
// Transactions carry calendar-day semantics: a purchase made at 23:00 local
// time belongs to that calendar day no matter which timezone the server runs
// in. All range bounds and stored dates go through ToUTCDate before they are
// compared or grouped.
package dateutil

import "time"

// ToUTCDate strips time-of-day and timezone offset, anchoring the value at
// UTC midnight of the same calendar day. Idempotent.
func ToUTCDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NormalizeRange maps both bounds of an inclusive date range to UTC calendar
// days.
func NormalizeRange(from, to time.Time) (time.Time, time.Time) {
	return ToUTCDate(from), ToUTCDate(to)
}

// DaysInMonth returns the number of days in the given month, accounting for
// leap years.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
