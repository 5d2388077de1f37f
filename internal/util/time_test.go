package util

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddYears(t *testing.T) {
	tests := []struct {
		name  string
		from  time.Time
		years int
		want  time.Time
	}{
		{"ordinary date forward", date(1990, time.June, 15), 10, date(2000, time.June, 15)},
		{"ordinary date backward", date(2026, time.October, 19), -20, date(2006, time.October, 19)},
		{"leap day to non-leap year", date(2024, time.February, 29), 1, date(2025, time.February, 28)},
		{"leap day to leap year", date(2024, time.February, 29), 4, date(2028, time.February, 29)},
		{"leap day to century non-leap", date(2096, time.February, 29), 4, date(2100, time.February, 28)},
		{"leap day to 400-year leap", date(1996, time.February, 29), 4, date(2000, time.February, 29)},
		{"leap day backward", date(2000, time.February, 29), -1, date(1999, time.February, 28)},
		{"zero years", date(2024, time.February, 29), 0, date(2024, time.February, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddYears(tt.from, tt.years); !got.Equal(tt.want) {
				t.Errorf("AddYears(%s, %d) = %s, want %s",
					FormatDate(tt.from), tt.years, FormatDate(got), FormatDate(tt.want))
			}
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2024, true},
		{2025, false},
		{1900, false},
		{2000, true},
		{2100, false},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestISOWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday is its own start", date(2026, time.October, 19), date(2026, time.October, 19)},
		{"wednesday", date(2026, time.October, 21), date(2026, time.October, 19)},
		{"sunday belongs to previous monday", date(2026, time.October, 25), date(2026, time.October, 19)},
		{"crosses month boundary", date(2026, time.November, 1), date(2026, time.October, 26)},
		{"crosses year boundary", date(2027, time.January, 1), date(2026, time.December, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ISOWeekStart(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("ISOWeekStart(%s) = %s, want %s", FormatDate(tt.in), FormatDate(got), FormatDate(tt.want))
			}
			if got.Weekday() != time.Monday {
				t.Errorf("ISOWeekStart(%s) weekday = %s, want Monday", FormatDate(tt.in), got.Weekday())
			}
		})
	}
}

func TestISOWeekday(t *testing.T) {
	if got := ISOWeekday(date(2026, time.October, 19)); got != 1 {
		t.Errorf("Monday = %d, want 1", got)
	}
	if got := ISOWeekday(date(2026, time.October, 25)); got != 7 {
		t.Errorf("Sunday = %d, want 7", got)
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween(date(2024, time.February, 28), date(2024, time.March, 1)); got != 2 {
		t.Errorf("DaysBetween across leap day = %d, want 2", got)
	}
	if got := DaysBetween(date(2024, time.March, 1), date(2024, time.February, 28)); got != -2 {
		t.Errorf("DaysBetween reversed = %d, want -2", got)
	}

	// Time of day and zone must not leak into the count.
	from := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 2, 0, 1, 0, 0, time.UTC)
	if got := DaysBetween(from, to); got != 1 {
		t.Errorf("DaysBetween with clock times = %d, want 1", got)
	}

	// Spans longer than time.Duration can hold.
	if got := DaysBetween(date(1700, time.January, 1), date(2026, time.October, 19)); got != 119360 {
		t.Errorf("DaysBetween over three centuries = %d, want 119360", got)
	}
	if got := DaysBetween(date(1, time.January, 1), date(2001, time.January, 1)); got != 730485 {
		t.Errorf("DaysBetween over two millennia = %d, want 730485", got)
	}
}

func TestCompletedYears(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		asOf  time.Time
		want  int
	}{
		{"on birthday", date(2000, time.May, 10), date(2026, time.May, 10), 26},
		{"day before birthday", date(2000, time.May, 10), date(2026, time.May, 9), 25},
		{"leap birthday on feb 28 of non-leap year", date(2004, time.February, 29), date(2025, time.February, 28), 21},
		{"leap birthday on feb 27 of non-leap year", date(2004, time.February, 29), date(2025, time.February, 27), 20},
		{"same day of birth", date(2026, time.October, 19), date(2026, time.October, 19), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletedYears(tt.birth, tt.asOf); got != tt.want {
				t.Errorf("CompletedYears() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseBirthDate(t *testing.T) {
	got, err := ParseBirthDate("07/04/1976")
	if err != nil {
		t.Fatalf("ParseBirthDate() error = %v", err)
	}
	if !got.Equal(date(1976, time.July, 4)) {
		t.Errorf("ParseBirthDate() = %s, want 1976-07-04", FormatDate(got))
	}

	if _, err := ParseBirthDate("7/4/1976"); err != nil {
		t.Errorf("single-digit month/day should parse: %v", err)
	}
	if got, err := ParseBirthDate("01/01/0001"); err != nil || got.Year() != 1 {
		t.Errorf("ParseBirthDate(year 1) = %v, %v", got, err)
	}

	for _, bad := range []string{"", "1976-07-04", "02/30/2021", "13/01/2000", "02/29/2023", "abc", "01/01/0000", "12/31/0000"} {
		if _, err := ParseBirthDate(bad); err == nil {
			t.Errorf("ParseBirthDate(%q) expected error", bad)
		}
	}
}

func TestClocks(t *testing.T) {
	pinned := time.Date(2026, time.October, 19, 15, 30, 0, 0, time.FixedZone("X", 3600))
	c := FixedClock{T: pinned}
	if !c.Now().Equal(pinned) {
		t.Error("FixedClock should return the pinned time")
	}
	if got := Today(c); !got.Equal(date(2026, time.October, 19)) {
		t.Errorf("Today() = %s, want 2026-10-19", got)
	}
	if (SystemClock{}).Now().IsZero() {
		t.Error("SystemClock returned zero time")
	}
}

func TestFormatLongDate(t *testing.T) {
	if got := FormatLongDate(date(2026, time.October, 9)); got != "October 09, 2026" {
		t.Errorf("FormatLongDate() = %q", got)
	}
}
