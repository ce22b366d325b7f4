package dashboard

import (
	"math"

	"github.com/fittrack/fittrack/internal/model"
)

// Goal is one entry of the static goal table: a named target and the
// metric it is measured against. Targets are positive constants, so
// AchievementPercent never divides by zero here.
type Goal struct {
	Name    string
	Target  float64
	Unit    string
	Current func(fitness []model.FitnessEntry) float64
}

// Goals is the fixed goal table for a dashboard session. User-defined
// goals are a natural extension point but are not part of this table.
var Goals = []Goal{
	{
		Name:    "Weekly sessions",
		Target:  5,
		Unit:    "sessions/week",
		Current: WeeklySessions,
	},
	{
		Name:    "Daily movement",
		Target:  30,
		Unit:    "min/day",
		Current: AverageDailyMovement,
	},
	{
		Name:    "Weekly calorie burn",
		Target:  1500,
		Unit:    "kcal/week",
		Current: WeeklyCalories,
	},
	{
		Name:   "Activity diversity",
		Target: 4,
		Unit:   "types",
		Current: func(fitness []model.FitnessEntry) float64 {
			return float64(DiversityScore(fitness))
		},
	},
}

// AchievementPercent maps a metric value onto a 0-100 achievement
// score against its target: min(100, round(value/target*100)).
func AchievementPercent(value, target float64) int {
	pct := int(math.Round(value / target * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// GoalProgress is one evaluated goal, ready for rendering.
type GoalProgress struct {
	Name    string  `json:"name"`
	Target  float64 `json:"target"`
	Unit    string  `json:"unit"`
	Current float64 `json:"current"`
	Percent int     `json:"percent"`
}

// EvaluateGoals runs every goal in the table against the filtered
// fitness list.
func EvaluateGoals(fitness []model.FitnessEntry) []GoalProgress {
	out := make([]GoalProgress, 0, len(Goals))
	for _, g := range Goals {
		cur := g.Current(fitness)
		out = append(out, GoalProgress{
			Name:    g.Name,
			Target:  g.Target,
			Unit:    g.Unit,
			Current: cur,
			Percent: AchievementPercent(cur, g.Target),
		})
	}
	return out
}
