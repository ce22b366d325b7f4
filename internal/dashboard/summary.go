package dashboard

import (
	"sort"

	"github.com/fittrack/fittrack/internal/model"
)

// Summary is the hand-off object for the non-chart summary widget.
// It is recomputable at any time from the filtered lists alone.
type Summary struct {
	TotalWorkouts       int      `json:"total_workouts"`
	TotalDuration       float64  `json:"total_duration"`
	TotalCaloriesBurned float64  `json:"total_calories_burned"`
	TotalCaloriesIntake float64  `json:"total_calories_intake"`
	CalorieGap          float64  `json:"calorie_gap"`
	TopActivities       []string `json:"top_activities"`
}

// Project assembles the summary from filtered fitness and food lists.
// The gap is intake minus burned: positive means surplus.
func Project(fitness []model.FitnessEntry, food []model.FoodEntry) Summary {
	s := Summary{
		TotalWorkouts: len(fitness),
		TopActivities: []string{},
	}
	for _, e := range fitness {
		s.TotalDuration += e.Duration
		s.TotalCaloriesBurned += e.CaloriesBurned
	}
	for _, e := range food {
		s.TotalCaloriesIntake += e.Calories
	}
	s.CalorieGap = s.TotalCaloriesIntake - s.TotalCaloriesBurned

	counts := CountByCategory(fitness, func(e model.FitnessEntry) string {
		return e.ActivityType
	})
	labels := counts.Labels()
	sort.SliceStable(labels, func(i, j int) bool {
		return counts.Get(labels[i]) > counts.Get(labels[j])
	})
	if len(labels) > 3 {
		labels = labels[:3]
	}
	s.TopActivities = labels
	return s
}
