// Package util provides date helpers and identifiers shared across numberourdays.
package util

import (
	"fmt"
	"time"
)

const (
	// DateFormat is the date format used in log records and the debug echo.
	DateFormat = "2006-01-02"

	// BirthDateFormat is the format users type their birth date in (MM/DD/YYYY).
	// Single-digit months and days are accepted as well.
	BirthDateFormat = "1/2/2006"

	// BirthDateHint is the format shown to users.
	BirthDateHint = "MM/DD/YYYY"

	// LongDateFormat is the format printed on the poster subtitle.
	LongDateFormat = "January 02, 2006"

	// DaysPerWeek is the number of days in a calendar week.
	DaysPerWeek = 7

	// MeanGregorianYearDays is the mean length of a Gregorian year in days.
	MeanGregorianYearDays = 365.2425

	secondsPerDay = 24 * 60 * 60
)

// Clock supplies the current time. Tests pin it with FixedClock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time {
	return c.T
}

// Today returns midnight UTC of the clock's current calendar day.
func Today(c Clock) time.Time {
	return Date(c.Now())
}

// Date strips the time of day, keeping the calendar date in UTC.
// All date arithmetic in this module runs on UTC midnights so that
// day differences are exact multiples of 24h.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsLeapYear reports whether year has a Feb 29.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// AddYears shifts d by whole years. A Feb 29 that lands in a year
// without one becomes Feb 28 instead of rolling into March.
func AddYears(d time.Time, years int) time.Time {
	y, m, day := d.Date()
	target := y + years
	if m == time.February && day == 29 && !IsLeapYear(target) {
		day = 28
	}
	return time.Date(target, m, day, 0, 0, 0, 0, time.UTC)
}

// ISOWeekday returns the ISO weekday of t: Monday = 1 ... Sunday = 7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ISOWeekStart returns the Monday that begins t's calendar week.
func ISOWeekStart(t time.Time) time.Time {
	d := Date(t)
	return d.AddDate(0, 0, -(ISOWeekday(d) - 1))
}

// DaysBetween returns the number of whole calendar days from one date to another.
// The result is negative when to precedes from. Unix seconds are used
// because time.Duration saturates at about 292 years.
func DaysBetween(from, to time.Time) int {
	return int((Date(to).Unix() - Date(from).Unix()) / secondsPerDay)
}

// CompletedYears returns the age in completed years at asOf,
// using leap-safe anniversaries.
func CompletedYears(birth, asOf time.Time) int {
	years := asOf.Year() - birth.Year()
	if Date(asOf).Before(AddYears(birth, years)) {
		years--
	}
	return years
}

// FormatDate formats a time as a date string.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// FormatLongDate formats a time the way the poster subtitle prints it.
func FormatLongDate(t time.Time) string {
	return t.Format(LongDateFormat)
}

// ParseBirthDate parses a MM/DD/YYYY string into a UTC date.
// Year 0000 parses in Go but is not a calendar year, so it is rejected.
func ParseBirthDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(BirthDateFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	if t.Year() < 1 {
		return time.Time{}, fmt.Errorf("parsing time %q: year out of range", s)
	}
	return t, nil
}
