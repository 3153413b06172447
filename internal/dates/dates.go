package dates

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidDays is returned when a negative day count is requested.
var ErrInvalidDays = errors.New("number of days must not be negative")

// BucketsForLastNDays returns one calendar date per day for the n days ending
// at anchor, oldest first. The last element is anchor's calendar day. A zero n
// yields an empty slice.
func BucketsForLastNDays(n int, anchor time.Time) ([]time.Time, error) {
	if n < 0 {
		return nil, ErrInvalidDays
	}
	buckets := make([]time.Time, 0, n)
	day := Midnight(anchor)
	for i := n - 1; i >= 0; i-- {
		buckets = append(buckets, day.AddDate(0, 0, -i))
	}
	return buckets, nil
}

// SameDay reports whether two instants fall on the same calendar day.
// Time-of-day is ignored; date2 is evaluated in date1's location.
func SameDay(date1, date2 time.Time) bool {
	year1, month1, day1 := date1.Date()
	year2, month2, day2 := date2.In(date1.Location()).Date()
	return year1 == year2 && month1 == month2 && day1 == day2
}

// IsInMonth reports whether date falls within the given month and year.
func IsInMonth(date time.Time, month time.Month, year int) bool {
	return date.Month() == month && date.Year() == year
}

// DaysBetween returns the number of calendar days from 'from' until 'to',
// negative when 'to' is in the past. Partial days do not count: two instants
// on the same calendar day are zero days apart.
func DaysBetween(from, to time.Time) int {
	fromDay := Midnight(from)
	toDay := Midnight(to.In(from.Location()))
	// Rounding absorbs the 23h/25h days around DST transitions.
	return int(math.Round(toDay.Sub(fromDay).Hours() / 24))
}

// Midnight truncates an instant to the start of its calendar day, keeping the
// location.
func Midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
