package dashboard

import (
	"reflect"
	"testing"
	"time"

	"github.com/fittrack/fittrack/internal/model"
)

// TestBuildReportSingleDay is the end-to-end scenario: one workout and
// one meal on the same day, range limited to that day.
func TestBuildReportSingleDay(t *testing.T) {
	fitness := []model.FitnessEntry{
		fit(1, "2025-04-01", "Running", 30, 280),
	}
	foods := []model.FoodEntry{
		{ID: 1, Date: "2025-04-01", FoodName: "Oats", Quantity: 1, Calories: 300},
	}
	rng := model.DateRange{Start: "2025-04-01", End: "2025-04-01"}

	r := BuildReport(fitness, foods, rng)

	s := r.Summary
	if s.TotalWorkouts != 1 {
		t.Errorf("TotalWorkouts = %d, want 1", s.TotalWorkouts)
	}
	if s.TotalDuration != 30 {
		t.Errorf("TotalDuration = %v, want 30", s.TotalDuration)
	}
	if s.TotalCaloriesBurned != 280 {
		t.Errorf("TotalCaloriesBurned = %v, want 280", s.TotalCaloriesBurned)
	}
	if s.TotalCaloriesIntake != 300 {
		t.Errorf("TotalCaloriesIntake = %v, want 300", s.TotalCaloriesIntake)
	}
	if s.CalorieGap != 20 {
		t.Errorf("CalorieGap = %v, want 20", s.CalorieGap)
	}

	if !reflect.DeepEqual(r.Dates, []string{"2025-04-01"}) {
		t.Errorf("Dates = %v, want [2025-04-01]", r.Dates)
	}
	if !reflect.DeepEqual(r.CalorieGaps, []float64{20}) {
		t.Errorf("CalorieGaps = %v, want [20]", r.CalorieGaps)
	}
	// Single-day range with activity → full consistency.
	if r.Metrics.ConsistencyPct != 100 {
		t.Errorf("ConsistencyPct = %v, want 100", r.Metrics.ConsistencyPct)
	}
	// Meal type missing → counted as Snack.
	if got := r.MealCounts.Get("Snack"); got != 1 {
		t.Errorf("Snack count = %d, want 1", got)
	}
}

// TestBuildReportFiltersRange verifies that out-of-range records never
// reach the report.
func TestBuildReportFiltersRange(t *testing.T) {
	fitness := []model.FitnessEntry{
		fit(1, "2025-03-31", "Running", 30, 280),
		fit(2, "2025-04-01", "Yoga", 45, 120),
		fit(3, "2025-04-08", "Running", 20, 180),
	}
	rng := model.DateRange{Start: "2025-04-01", End: "2025-04-07"}

	r := BuildReport(fitness, nil, rng)
	if r.Summary.TotalWorkouts != 1 {
		t.Errorf("TotalWorkouts = %d, want 1", r.Summary.TotalWorkouts)
	}
	if !reflect.DeepEqual(r.Dates, []string{"2025-04-01"}) {
		t.Errorf("Dates = %v, want [2025-04-01]", r.Dates)
	}
	// 1 active day over a 7-day range.
	if got := r.Metrics.ConsistencyPct; got < 14.2 || got > 14.3 {
		t.Errorf("ConsistencyPct = %v, want ~14.29", got)
	}
}

// TestBuildReportEmpty verifies the whole report degrades to zeros and
// empty slices on no data.
func TestBuildReportEmpty(t *testing.T) {
	r := BuildReport(nil, nil, model.DateRange{Start: "2025-04-01", End: "2025-04-07"})
	if len(r.Dates) != 0 {
		t.Errorf("Dates = %v, want empty", r.Dates)
	}
	if r.Summary.TotalWorkouts != 0 || r.Summary.CalorieGap != 0 {
		t.Errorf("summary not zeroed: %+v", r.Summary)
	}
	m := r.Metrics
	if m.AverageDuration != 0 || m.AverageIntensity != 0 || m.ConsistencyPct != 0 ||
		m.Diversity != 0 || m.WeeklySessions != 0 || m.AverageDailyMovement != 0 {
		t.Errorf("metrics not zeroed: %+v", m)
	}
	if len(r.Goals) != len(Goals) {
		t.Errorf("goals = %d, want %d", len(r.Goals), len(Goals))
	}
}

// TestBuildReportIdempotent verifies that the same inputs always yield
// the same derived outputs.
func TestBuildReportIdempotent(t *testing.T) {
	fitness := []model.FitnessEntry{
		fit(1, "2025-04-01", "Running", 30, 280),
		fit(2, "2025-04-02", "Yoga", 45, 120),
	}
	foods := []model.FoodEntry{
		food(1, "2025-04-01", "Oats", 300, "Breakfast"),
	}
	rng := model.DateRange{Start: "2025-04-01", End: "2025-04-07"}

	a := BuildReport(fitness, foods, rng)
	b := BuildReport(fitness, foods, rng)
	if !reflect.DeepEqual(a, b) {
		t.Error("two passes over identical inputs diverged")
	}
}

// TestDefaultRange verifies the rolling 7-day window.
func TestDefaultRange(t *testing.T) {
	now := time.Date(2025, 4, 10, 15, 30, 0, 0, time.UTC)
	rng := DefaultRange(now)
	if rng.Start != "2025-04-04" {
		t.Errorf("Start = %s, want 2025-04-04", rng.Start)
	}
	if rng.End != "2025-04-10" {
		t.Errorf("End = %s, want 2025-04-10", rng.End)
	}
	if rng.Days() != 7 {
		t.Errorf("Days = %d, want 7", rng.Days())
	}
}
