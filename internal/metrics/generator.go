package metrics

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"

	"tmscli/internal/errors"
)

// Params holds the generation window for a training program run.
type Params struct {
	// StartDate is the first calendar day of the window.
	StartDate time.Time `validate:"required"`
	// NumDays is the total number of calendar days in the window, weekends
	// included. The produced sequence only contains weekdays, so its length
	// is at most NumDays.
	NumDays int `validate:"gte=1"`
}

// Generator produces the ordered sequence of daily training records.
type Generator struct {
	logger   *slog.Logger
	rng      *rand.Rand
	validate *validator.Validate
}

// NewGenerator creates a record generator. A nil rng falls back to a source
// seeded from the current time.
func NewGenerator(logger *slog.Logger, rng *rand.Rand) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Generator{
		logger:   logger,
		rng:      rng,
		validate: validator.New(),
	}
}

// Generate produces one DailyRecord per weekday in the calendar window
// [params.StartDate, params.StartDate+params.NumDays). Saturdays and Sundays
// are skipped and do not consume a record slot, so the sequence may be
// shorter than NumDays and is empty when the window contains no weekdays.
//
// The baseline assessment score is drawn once before the loop and passed
// into every per-day construction; the daily score grows with the calendar
// day index relative to the full calendar length, capped at
// MaxAssessmentScore.
func (g *Generator) Generate(ctx context.Context, params Params) ([]DailyRecord, error) {
	if err := g.validate.Struct(params); err != nil {
		return nil, errors.NewValidationError("invalid generation parameters", err).
			WithContext("num_days", params.NumDays)
	}

	g.logger.InfoContext(ctx, "generating training records",
		slog.String("start_date", params.StartDate.Format("2006-01-02")),
		slog.Int("num_days", params.NumDays))

	baseline := g.uniform(MinBaselineScore, MaxBaselineScore)

	records := make([]DailyRecord, 0, params.NumDays)
	for day := 0; day < params.NumDays; day++ {
		date := params.StartDate.AddDate(0, 0, day)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		records = append(records, g.newRecord(date, day, params.NumDays, baseline))
	}

	g.logger.InfoContext(ctx, "generated training records",
		slog.Int("weekday_records", len(records)),
		slog.Int("calendar_days", params.NumDays))

	return records, nil
}

// newRecord builds one day's record. dayIndex counts calendar days from the
// start of the window, not weekday records, which couples the score growth
// rate to the calendar length of the program.
func (g *Generator) newRecord(date time.Time, dayIndex, numDays int, baseline float64) DailyRecord {
	girls := g.intBetween(MinAttendance, MaxAttendance)
	boys := g.intBetween(MinAttendance, MaxAttendance)

	progress := float64(dayIndex) / float64(numDays)
	score := math.Min(MaxAssessmentScore, baseline+progress*g.uniform(20, 30))

	return DailyRecord{
		Date:                  date,
		GirlsAttendance:       girls,
		BoysAttendance:        boys,
		TotalAttendance:       girls + boys,
		GirlsEngagement:       g.uniform(MinEngagement, MaxEngagement),
		BoysEngagement:        g.uniform(MinEngagement, MaxEngagement),
		MaterialEffectiveness: g.uniform(MinMaterialEffectiveness, MaxMaterialEffectiveness),
		TeachingEffectiveness: g.uniform(MinTeachingEffectiveness, MaxTeachingEffectiveness),
		TrainerAttendance:     g.rng.Intn(2),
		DailyAssessmentScore:  score,
		PracticalSkillsScore:  g.uniform(MinSkillScore, MaxSkillScore),
		TheoreticalKnowledge:  g.uniform(MinSkillScore, MaxSkillScore),
		ProjectCompletionRate: g.uniform(MinCompletionRate, MaxCompletionRate),
		ParticipationRate:     g.uniform(MinParticipationRate, MaxParticipationRate),
		HomeworkCompletion:    g.uniform(MinCompletionRate, MaxCompletionRate),
	}
}

// uniform draws a value from [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// intBetween draws an integer from [lo, hi] inclusive.
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}
