package input

import (
	"context"
	"log/slog"
	"time"

	"github.com/numberourdays/numberourdays/internal/models"
	"github.com/numberourdays/numberourdays/internal/util"
)

// Questions asked by Collect, in order.
var (
	NameQuestion = Question{
		Field:       "first_name",
		Label:       "Enter your first name: ",
		Placeholder: "Ruth",
	}
	BirthDateQuestion = Question{
		Field:       "birth_date",
		Label:       "Enter your birth date (" + util.BirthDateHint + "): ",
		Placeholder: util.BirthDateHint,
	}
	GenderQuestion = Question{
		Field:       "gender",
		Label:       "Are you male or female? (M/F): ",
		Placeholder: "M/F",
	}
)

// Questions returns the prompts in the order they are asked.
func Questions() []Question {
	return []Question{NameQuestion, BirthDateQuestion, GenderQuestion}
}

// Collector runs the prompts and builds a validated profile.
type Collector struct {
	prompter Prompter
	clock    util.Clock
	logger   *slog.Logger
}

// NewCollector creates a collector. A nil clock means the system clock.
func NewCollector(p Prompter, clock util.Clock, logger *slog.Logger) *Collector {
	if clock == nil {
		clock = util.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{prompter: p, clock: clock, logger: logger}
}

// Collect asks for name, birth date and gender. Each answer is validated
// as soon as it is given and the first invalid answer ends collection.
func (c *Collector) Collect(ctx context.Context) (models.UserProfile, error) {
	today := util.Today(c.clock)

	raw, err := c.prompter.Ask(ctx, NameQuestion)
	if err != nil {
		return models.UserProfile{}, err
	}
	name, err := models.ParseName(raw)
	if err != nil {
		return models.UserProfile{}, err
	}

	raw, err = c.prompter.Ask(ctx, BirthDateQuestion)
	if err != nil {
		return models.UserProfile{}, err
	}
	birth, err := models.ParseBirthDate(raw, today)
	if err != nil {
		return models.UserProfile{}, err
	}

	raw, err = c.prompter.Ask(ctx, GenderQuestion)
	if err != nil {
		return models.UserProfile{}, err
	}
	gender, err := models.ParseGender(raw)
	if err != nil {
		return models.UserProfile{}, err
	}

	profile := models.UserProfile{FirstName: name, BirthDate: birth, Gender: gender}
	c.logger.Debug("profile collected",
		"first_name", profile.FirstName,
		"birth_date", util.FormatDate(profile.BirthDate),
		"gender", profile.Gender.String(),
	)
	return profile, nil
}

// DebugProfile is the fixed profile used with -debug: a twenty-year-old
// male named "debug".
func DebugProfile(today time.Time) models.UserProfile {
	today = util.Date(today)
	return models.UserProfile{
		FirstName: "debug",
		BirthDate: util.AddYears(today, -20),
		Gender:    models.GenderMale,
	}
}

// LogDebugProfile echoes the debug profile and its week arithmetic.
func LogDebugProfile(logger *slog.Logger, p models.UserProfile, today time.Time) {
	today = util.Date(today)
	days := util.DaysBetween(p.BirthDate, today)
	logger.Debug("using debug profile",
		"first_name", p.FirstName,
		"birth_date", util.FormatDate(p.BirthDate),
		"gender", p.Gender.String(),
		"today", util.FormatDate(today),
		"birth_week_start", util.FormatDate(util.ISOWeekStart(p.BirthDate)),
		"current_week_start", util.FormatDate(util.ISOWeekStart(today)),
		"days_lived", days,
		"weeks_lived", days/util.DaysPerWeek,
	)
}
