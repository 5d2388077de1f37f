// Package calendar derives the week-grid statistics a life calendar is drawn from.
//
// Everything here is pure date arithmetic. The grid uses a fixed
// 52-week year so that a cell's row is always a year of age and its
// column a week within that year; the resulting drift from true
// calendar weeks over decades is intentional.
package calendar

import (
	"errors"
	"fmt"

	"github.com/numberourdays/numberourdays/internal/models"
)

const (
	// DisplayYears is the number of grid rows.
	DisplayYears = 90

	// WeeksPerYear is the number of grid columns.
	WeeksPerYear = 52

	// DecadeRows is the number of rows grouped between decade gaps.
	DecadeRows = 10

	// MaleLifeExpectancyYears and FemaleLifeExpectancyYears come from
	// CDC life expectancy summaries, circa 2023.
	MaleLifeExpectancyYears   = 75.8
	FemaleLifeExpectancyYears = 81.1
)

// Params fixes the grid dimensions and the life-expectancy table.
// It is passed explicitly to every calculation.
type Params struct {
	DisplayYears int
	WeeksPerYear int
	Expectancy   map[models.Gender]float64
}

// DefaultParams returns the 90x52 grid with the built-in expectancy table.
func DefaultParams() Params {
	return Params{
		DisplayYears: DisplayYears,
		WeeksPerYear: WeeksPerYear,
		Expectancy: map[models.Gender]float64{
			models.GenderMale:   MaleLifeExpectancyYears,
			models.GenderFemale: FemaleLifeExpectancyYears,
		},
	}
}

// TotalWeeks is the number of cells in the grid.
func (p Params) TotalWeeks() int {
	return p.DisplayYears * p.WeeksPerYear
}

// ExpectancyYears returns the life expectancy for g, or 0 if the table has none.
func (p Params) ExpectancyYears(g models.Gender) float64 {
	return p.Expectancy[g]
}

// Validate checks that the parameters describe a drawable grid.
func (p Params) Validate() error {
	var errs []error

	if p.DisplayYears < 1 {
		errs = append(errs, errors.New("display_years must be positive"))
	}
	if p.WeeksPerYear < 1 {
		errs = append(errs, errors.New("weeks_per_year must be positive"))
	}
	for _, g := range []models.Gender{models.GenderMale, models.GenderFemale} {
		years, ok := p.Expectancy[g]
		if !ok {
			errs = append(errs, fmt.Errorf("missing life expectancy for %s", g))
			continue
		}
		if years < 0 {
			errs = append(errs, fmt.Errorf("life expectancy for %s must be non-negative", g))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
