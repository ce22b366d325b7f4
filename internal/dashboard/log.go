package dashboard

import (
	"sort"

	"github.com/fittrack/fittrack/internal/model"
)

// Kinds and icon hints for combined log entries.
const (
	KindFitness = "Fitness"
	KindFood    = "Food"

	iconFitness = "dumbbell"
	iconFood    = "utensils"
)

// PageSize is the fixed combined-log page length.
const PageSize = 10

// CombinedEntry is a fitness or food record tagged with its source,
// flattened for the activity feed. Entries are rebuilt from the source
// lists on every aggregation pass and never persisted.
type CombinedEntry struct {
	Kind           string  `json:"kind"`
	Icon           string  `json:"icon"`
	ID             int64   `json:"id"`
	Date           string  `json:"date"`
	ActivityType   string  `json:"activity_type,omitempty"`
	Duration       float64 `json:"duration,omitempty"`
	CaloriesBurned float64 `json:"calories_burned,omitempty"`
	Emotion        string  `json:"emotion,omitempty"`
	FoodName       string  `json:"food_name,omitempty"`
	Quantity       float64 `json:"quantity,omitempty"`
	Calories       float64 `json:"calories,omitempty"`
	MealType       string  `json:"meal_type,omitempty"`
}

// Combine merges fitness and food records into one reverse-chronological
// feed. Ties on date break by id descending, so entries logged on the
// same day never reorder across re-renders: ids are assigned strictly
// increasing by insertion.
func Combine(fitness []model.FitnessEntry, food []model.FoodEntry) []CombinedEntry {
	out := make([]CombinedEntry, 0, len(fitness)+len(food))
	for _, e := range fitness {
		out = append(out, CombinedEntry{
			Kind:           KindFitness,
			Icon:           iconFitness,
			ID:             e.ID,
			Date:           e.Date,
			ActivityType:   e.ActivityType,
			Duration:       e.Duration,
			CaloriesBurned: e.CaloriesBurned,
			Emotion:        e.Emotion,
		})
	}
	for _, e := range food {
		out = append(out, CombinedEntry{
			Kind:     KindFood,
			Icon:     iconFood,
			ID:       e.ID,
			Date:     e.Date,
			FoodName: e.FoodName,
			Quantity: e.Quantity,
			Calories: e.Calories,
			MealType: e.MealType,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// Paginate slices out the 1-indexed page of the given size. Pages past
// the end, a page below 1, or a non-positive size yield an empty slice
// rather than an error; clamping the displayed page number is the UI's
// job.
func Paginate[T any](list []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(list) {
		return []T{}
	}
	end := start + size
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}
