// Package models defines the domain models for numberourdays.
package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/numberourdays/numberourdays/internal/util"
)

// MinNameLength is the shortest first name accepted.
const MinNameLength = 2

// Gender selects a life-expectancy constant.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Valid returns true if the gender is a valid value.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// String returns the display string for the gender.
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	default:
		return "Unknown"
	}
}

// Validation failure reasons. These are the exact messages shown to users.
const (
	ReasonInvalidName   = "invalid name"
	ReasonInvalidDate   = "invalid date"
	ReasonDateNotInPast = "date not in past"
	ReasonInvalidGender = "invalid gender"
)

// ValidationError reports user input that cannot be used.
type ValidationError struct {
	Field  string
	Reason string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
	}
	return e.Reason
}

// UserProfile is the input the poster is built from.
// It is created once per run and never mutated.
type UserProfile struct {
	FirstName string    `json:"first_name"`
	BirthDate time.Time `json:"birth_date"`
	Gender    Gender    `json:"gender"`
}

// ParseName trims and validates a first name.
func ParseName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}

// ValidateName checks that name is alphabetic and long enough.
func ValidateName(name string) error {
	if utf8.RuneCountInString(name) < MinNameLength {
		return &ValidationError{
			Field:  "first_name",
			Reason: ReasonInvalidName,
			Detail: fmt.Sprintf("must be at least %d letters", MinNameLength),
		}
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return &ValidationError{
				Field:  "first_name",
				Reason: ReasonInvalidName,
				Detail: "must contain letters only",
			}
		}
	}
	return nil
}

// ParseBirthDate parses a MM/DD/YYYY birth date that must fall strictly before today.
func ParseBirthDate(raw string, today time.Time) (time.Time, error) {
	d, err := util.ParseBirthDate(strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, &ValidationError{
			Field:  "birth_date",
			Reason: ReasonInvalidDate,
			Detail: "expected a real date in " + util.BirthDateHint + " format",
		}
	}
	if err := ValidateBirthDate(d, today); err != nil {
		return time.Time{}, err
	}
	return d, nil
}

// ValidateBirthDate checks that birth is strictly earlier than today.
func ValidateBirthDate(birth, today time.Time) error {
	if !util.Date(birth).Before(util.Date(today)) {
		return &ValidationError{
			Field:  "birth_date",
			Reason: ReasonDateNotInPast,
		}
	}
	return nil
}

// ParseGender accepts any answer whose first letter is M or F, in either case.
func ParseGender(raw string) (Gender, error) {
	s := strings.TrimSpace(raw)
	if s != "" {
		switch g := Gender(strings.ToUpper(s[:1])); g {
		case GenderMale, GenderFemale:
			return g, nil
		}
	}
	return "", &ValidationError{
		Field:  "gender",
		Reason: ReasonInvalidGender,
		Detail: "answer must start with M or F",
	}
}

// Validate checks if the profile is usable as of today.
func (p UserProfile) Validate(today time.Time) error {
	if err := ValidateName(p.FirstName); err != nil {
		return err
	}
	if p.BirthDate.IsZero() {
		return &ValidationError{Field: "birth_date", Reason: ReasonInvalidDate}
	}
	if err := ValidateBirthDate(p.BirthDate, today); err != nil {
		return err
	}
	if !p.Gender.Valid() {
		return &ValidationError{Field: "gender", Reason: ReasonInvalidGender}
	}
	return nil
}

// FileStem returns the lowercased first name used to name the output file.
func (p UserProfile) FileStem() string {
	return strings.ToLower(p.FirstName)
}
