package model

import "time"

// Day is the calendar-day string format used throughout the app.
// ISO-8601 day strings sort lexicographically in chronological order,
// which the dashboard relies on when merging series keys.
const Day = "2006-01-02"

// FitnessEntry is one logged workout. Dates carry no time component.
// ActivityType and Emotion are optional labels; a zero Duration or
// CaloriesBurned is a valid value, not a missing one.
type FitnessEntry struct {
	ID             int64   `json:"id"`
	Date           string  `json:"date"`
	ActivityType   string  `json:"activity_type,omitempty"`
	Duration       float64 `json:"duration"`
	CaloriesBurned float64 `json:"calories_burned"`
	Emotion        string  `json:"emotion,omitempty"`
}

// Day returns the entry's calendar day.
func (e FitnessEntry) Day() string { return e.Date }

// FoodEntry is one logged meal or snack. MealType outside the fixed
// set {Breakfast, Lunch, Dinner, Snack} is counted as "Snack" by the
// dashboard's meal aggregation.
type FoodEntry struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	Calories float64 `json:"calories"`
	MealType string  `json:"meal_type,omitempty"`
}

// Day returns the entry's calendar day.
func (e FoodEntry) Day() string { return e.Date }

// DateRange is an inclusive [Start, End] span of calendar days.
// Callers keep Start <= End; a violated range yields empty results
// from the filter, never an error.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether day falls inside the range.
func (r DateRange) Contains(day string) bool {
	return day >= r.Start && day <= r.End
}

// Days returns the number of calendar days the range spans, inclusive.
// Returns 0 when either bound is malformed or End precedes Start.
func (r DateRange) Days() int {
	start, err1 := parseDay(r.Start)
	end, err2 := parseDay(r.End)
	if err1 != nil || err2 != nil || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

func parseDay(s string) (time.Time, error) {
	return time.Parse(Day, s)
}
