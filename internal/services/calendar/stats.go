package calendar

import (
	"math"
	"time"

	"github.com/numberourdays/numberourdays/internal/models"
	"github.com/numberourdays/numberourdays/internal/util"
)

// DerivedStats is computed once per profile and never changes afterwards.
type DerivedStats struct {
	// BirthWeekStart is the Monday of the week the user was born in.
	BirthWeekStart time.Time

	// ExpectancyYears is the table value the index was derived from.
	ExpectancyYears float64

	// ExpectancyIndex is the flat grid index of the expectancy milestone.
	ExpectancyIndex int

	// ExpectancyWeeks is the denominator for percent-of-life figures.
	// It equals ExpectancyIndex.
	ExpectancyWeeks int

	// Only the slot matching the profile's gender is set.
	ExpectancyIndexMale   *int
	ExpectancyIndexFemale *int
}

// Compute derives the grid statistics for a validated profile.
func Compute(profile models.UserProfile, params Params) DerivedStats {
	years := params.ExpectancyYears(profile.Gender)
	index := ExpectancyIndex(years, params)

	stats := DerivedStats{
		BirthWeekStart:  util.ISOWeekStart(profile.BirthDate),
		ExpectancyYears: years,
		ExpectancyIndex: index,
		ExpectancyWeeks: index,
	}

	switch profile.Gender {
	case models.GenderMale:
		stats.ExpectancyIndexMale = &index
	case models.GenderFemale:
		stats.ExpectancyIndexFemale = &index
	}

	return stats
}

// ExpectancyIndex converts fractional years into a grid index: whole years
// times WeeksPerYear plus the truncated weeks of the fraction. The result is
// clamped into the grid.
func ExpectancyIndex(years float64, params Params) int {
	if years <= 0 || params.TotalWeeks() == 0 {
		return 0
	}
	whole, frac := math.Modf(years)
	index := int(whole)*params.WeeksPerYear + int(frac*float64(params.WeeksPerYear))
	return clamp(index, 0, params.TotalWeeks()-1)
}

// IsExpectancy reports whether index is the marked milestone cell.
func (s DerivedStats) IsExpectancy(index int) bool {
	return (s.ExpectancyIndexMale != nil && *s.ExpectancyIndexMale == index) ||
		(s.ExpectancyIndexFemale != nil && *s.ExpectancyIndexFemale == index)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
