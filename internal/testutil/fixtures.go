// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"time"

	"github.com/numberourdays/numberourdays/internal/models"
	"github.com/numberourdays/numberourdays/internal/util"
)

// Today is the fixed calendar day tests run against (a Monday).
var Today = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

// Clock returns a clock stopped at Today.
func Clock() util.FixedClock {
	return util.FixedClock{T: Today}
}

// FixtureProfile creates a test profile with sensible defaults: a man
// who turned twenty on Today.
func FixtureProfile(overrides ...func(*models.UserProfile)) models.UserProfile {
	profile := models.UserProfile{
		FirstName: "Debug",
		BirthDate: util.AddYears(Today, -20),
		Gender:    models.GenderMale,
	}

	for _, override := range overrides {
		override(&profile)
	}

	return profile
}

// FixtureFemaleProfile creates a female test profile.
func FixtureFemaleProfile(overrides ...func(*models.UserProfile)) models.UserProfile {
	return FixtureProfile(append([]func(*models.UserProfile){
		func(p *models.UserProfile) {
			p.Gender = models.GenderFemale
			p.FirstName = "Eve"
		},
	}, overrides...)...)
}

// BornOn overrides the birth date.
func BornOn(y int, m time.Month, d int) func(*models.UserProfile) {
	return func(p *models.UserProfile) {
		p.BirthDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
}
