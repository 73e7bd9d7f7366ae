package models

import "time"

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

// DateOnly truncates a timestamp to UTC midnight. All calendar and booking
// dates are stored in this form so that equality and range comparisons work
// regardless of the caller's timezone.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Nights returns the number of nights in the half-open range [checkIn,
// checkOut). A one-night stay has checkOut = checkIn + 1 day.
func Nights(checkIn, checkOut time.Time) int {
	return int(DateOnly(checkOut).Sub(DateOnly(checkIn)) / (24 * time.Hour))
}

// EachDay calls fn for every date in the half-open range [from, to). The
// check-out date itself is excluded.
func EachDay(from, to time.Time, fn func(d time.Time)) {
	for d := DateOnly(from); d.Before(DateOnly(to)); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

// RangesOverlap reports whether two half-open date ranges intersect.
func RangesOverlap(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// ISOWeekday returns the weekday with Monday = 0 .. Sunday = 6, matching the
// convention used by pricing rule weekday filters.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday()) // Sunday = 0
	return (wd + 6) % 7
}
