package dashboard

import (
	"reflect"
	"testing"

	"github.com/fittrack/fittrack/internal/model"
)

// TestProjectTotals verifies the summary totals and the gap sign
// convention (intake minus burned, positive is surplus).
func TestProjectTotals(t *testing.T) {
	fitness := []model.FitnessEntry{
		fit(1, "2025-04-01", "Running", 30, 280),
		fit(2, "2025-04-02", "Yoga", 45, 120),
	}
	foods := []model.FoodEntry{
		food(1, "2025-04-01", "Oats", 300, "Breakfast"),
		food(2, "2025-04-02", "Pasta", 600, "Lunch"),
	}

	s := Project(fitness, foods)
	if s.TotalWorkouts != 2 {
		t.Errorf("TotalWorkouts = %d, want 2", s.TotalWorkouts)
	}
	if s.TotalDuration != 75 {
		t.Errorf("TotalDuration = %v, want 75", s.TotalDuration)
	}
	if s.TotalCaloriesBurned != 400 {
		t.Errorf("TotalCaloriesBurned = %v, want 400", s.TotalCaloriesBurned)
	}
	if s.TotalCaloriesIntake != 900 {
		t.Errorf("TotalCaloriesIntake = %v, want 900", s.TotalCaloriesIntake)
	}
	if s.CalorieGap != 500 {
		t.Errorf("CalorieGap = %v, want +500", s.CalorieGap)
	}
}

// TestProjectDeficit verifies the negative gap for burn exceeding intake.
func TestProjectDeficit(t *testing.T) {
	s := Project(
		[]model.FitnessEntry{fit(1, "2025-04-01", "Running", 60, 1800)},
		[]model.FoodEntry{food(1, "2025-04-01", "Salad", 1200, "Lunch")},
	)
	if s.CalorieGap != -600 {
		t.Errorf("CalorieGap = %v, want -600", s.CalorieGap)
	}
}

// TestProjectTopActivities verifies the top-3 cut with insertion-order
// tie-breaking.
func TestProjectTopActivities(t *testing.T) {
	fitness := []model.FitnessEntry{
		fit(1, "2025-04-01", "Running", 30, 280),
		fit(2, "2025-04-01", "Yoga", 45, 120),
		fit(3, "2025-04-02", "Running", 20, 180),
		fit(4, "2025-04-02", "Swimming", 60, 400), // ties Yoga at 1, Yoga seen first
		fit(5, "2025-04-03", "Cycling", 40, 350),
	}
	s := Project(fitness, nil)
	want := []string{"Running", "Yoga", "Swimming"}
	if !reflect.DeepEqual(s.TopActivities, want) {
		t.Errorf("TopActivities = %v, want %v", s.TopActivities, want)
	}
}

// TestProjectEmpty verifies the empty-data projection: zero totals and
// an empty (non-nil) activity list.
func TestProjectEmpty(t *testing.T) {
	s := Project(nil, nil)
	if s.TotalWorkouts != 0 || s.TotalDuration != 0 || s.CalorieGap != 0 {
		t.Errorf("empty summary has non-zero totals: %+v", s)
	}
	if s.TopActivities == nil || len(s.TopActivities) != 0 {
		t.Errorf("TopActivities = %v, want empty list", s.TopActivities)
	}
}
