package calendar

import (
	"math"
	"time"

	"github.com/numberourdays/numberourdays/internal/util"
)

// Progress locates "today" on the grid.
type Progress struct {
	// AgeYears is the age in completed years; it is the current row.
	AgeYears int

	// LifeYearStart is the most recent birthday (leap-safe).
	LifeYearStart time.Time

	// WeeksIntoYear is the number of completed weeks since LifeYearStart;
	// it is the current column.
	WeeksIntoYear int

	// LivedIndex counts the cells shaded as lived. The current week sits
	// at exactly this index.
	LivedIndex int

	// DaysLived is the number of calendar days since birth.
	DaysLived int
}

// ProgressAt places today on the grid for someone born on birth.
func ProgressAt(birth, today time.Time, params Params) Progress {
	age := util.CompletedYears(birth, today)
	yearStart := util.AddYears(birth, age)

	weeks := util.DaysBetween(yearStart, today) / util.DaysPerWeek
	if weeks < 0 {
		weeks = 0
	}

	return Progress{
		AgeYears:      age,
		LifeYearStart: yearStart,
		WeeksIntoYear: weeks,
		LivedIndex:    age*params.WeeksPerYear + weeks,
		DaysLived:     util.DaysBetween(birth, today),
	}
}

// CurrentIndex is the flat index of the current-week marker. It is the
// cell at (AgeYears, WeeksIntoYear); in the last day or two of a life
// year WeeksIntoYear reaches WeeksPerYear and the marker moves to the
// first cell of the next row, directly after the last lived cell.
func (p Progress) CurrentIndex() int {
	return p.LivedIndex
}

// Summary holds the figures printed under the grid.
type Summary struct {
	WeeksLived     int
	WeeksRemaining int
	PercentLived   float64
	AgeExact       float64
}

// Summarize computes the summary block from the grid position.
func Summarize(stats DerivedStats, progress Progress) Summary {
	lived := progress.LivedIndex
	if lived < 0 {
		lived = 0
	}

	remaining := stats.ExpectancyWeeks - lived
	if remaining < 0 {
		remaining = 0
	}

	var percent float64
	if stats.ExpectancyWeeks > 0 {
		percent = math.Min(math.Max(float64(lived)/float64(stats.ExpectancyWeeks)*100, 0), 100)
	}

	return Summary{
		WeeksLived:     lived,
		WeeksRemaining: remaining,
		PercentLived:   percent,
		AgeExact:       float64(progress.DaysLived) / util.MeanGregorianYearDays,
	}
}
