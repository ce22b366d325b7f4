package dashboard

import "github.com/fittrack/fittrack/internal/model"

// Metrics bundles the derived metrics for one report. Every field
// degrades to 0 on empty input.
type Metrics struct {
	AverageDuration      float64 `json:"average_duration"`
	AverageIntensity     float64 `json:"average_intensity"`
	ConsistencyPct       float64 `json:"consistency_pct"`
	Diversity            int     `json:"diversity"`
	WeeklySessions       float64 `json:"weekly_sessions"`
	AverageDailyMovement float64 `json:"average_daily_movement"`
}

// Report is the complete derived dataset for one date range: aligned
// chart series, category tallies, derived metrics, goal percentages,
// and the summary projection. It is a plain serializable shape with no
// behavior, ready for any chart or table widget.
type Report struct {
	Range          model.DateRange `json:"range"`
	Dates          []string        `json:"dates"`
	Durations      []float64       `json:"durations"`
	CaloriesBurned []float64       `json:"calories_burned"`
	CaloriesIntake []float64       `json:"calories_intake"`
	CalorieGaps    []float64       `json:"calorie_gaps"`
	ActivityCounts *Counts         `json:"activity_counts"`
	EmotionCounts  *Counts         `json:"emotion_counts"`
	MealCounts     *Counts         `json:"meal_counts"`
	Intensity      []TypeIntensity `json:"intensity_by_type"`
	Metrics        Metrics         `json:"metrics"`
	Goals          []GoalProgress  `json:"goals"`
	Summary        Summary         `json:"summary"`
}

// BuildReport runs the whole pipeline over raw record lists: filter to
// the range, group, derive, normalize, project. It is invoked afresh on
// every range or record-set change; nothing is updated incrementally.
func BuildReport(fitness []model.FitnessEntry, food []model.FoodEntry, rng model.DateRange) *Report {
	fit := FilterRange(fitness, rng)
	fd := FilterRange(food, rng)

	durations := GroupSum(fit, func(e model.FitnessEntry) float64 { return e.Duration })
	burned := GroupSum(fit, func(e model.FitnessEntry) float64 { return e.CaloriesBurned })
	intake := GroupSum(fd, func(e model.FoodEntry) float64 { return e.Calories })

	days := MergeDays(durations, burned, intake)

	totalDays := rng.Days()
	if totalDays == 0 {
		// Malformed or unset bounds: fall back to the days actually seen.
		totalDays = len(days)
	}

	return &Report{
		Range:          rng,
		Dates:          days,
		Durations:      durations.Values(days),
		CaloriesBurned: burned.Values(days),
		CaloriesIntake: intake.Values(days),
		CalorieGaps:    Gaps(days, intake, burned),
		ActivityCounts: CountByCategory(fit, func(e model.FitnessEntry) string { return e.ActivityType }),
		EmotionCounts:  CountByCategory(fit, func(e model.FitnessEntry) string { return e.Emotion }),
		MealCounts:     CountByMealType(fd),
		Intensity:      ActivityIntensities(fit),
		Metrics: Metrics{
			AverageDuration:      AverageDuration(fit),
			AverageIntensity:     AverageIntensity(fit),
			ConsistencyPct:       Consistency(fit, totalDays),
			Diversity:            DiversityScore(fit),
			WeeklySessions:       WeeklySessions(fit),
			AverageDailyMovement: AverageDailyMovement(fit),
		},
		Goals:   EvaluateGoals(fit),
		Summary: Project(fit, fd),
	}
}
