package dashboard

import (
	"sort"
	"time"

	"github.com/fittrack/fittrack/internal/model"
)

// TypeIntensity is the calories-per-minute rate for one activity type.
type TypeIntensity struct {
	Type              string  `json:"type"`
	TotalCalories     float64 `json:"total_calories"`
	TotalDuration     float64 `json:"total_duration"`
	CaloriesPerMinute float64 `json:"calories_per_minute"`
}

// ActivityIntensities computes calories burned per minute for each
// activity type, sorted by intensity descending. Types with zero total
// duration report 0 instead of dividing by zero. Ties keep the order
// in which types first appeared in the input.
func ActivityIntensities(fitness []model.FitnessEntry) []TypeIntensity {
	var order []string
	byType := make(map[string]*TypeIntensity)
	for _, e := range fitness {
		if e.ActivityType == "" {
			continue
		}
		ti, ok := byType[e.ActivityType]
		if !ok {
			ti = &TypeIntensity{Type: e.ActivityType}
			byType[e.ActivityType] = ti
			order = append(order, e.ActivityType)
		}
		ti.TotalCalories += e.CaloriesBurned
		ti.TotalDuration += e.Duration
	}

	out := make([]TypeIntensity, 0, len(order))
	for _, t := range order {
		ti := *byType[t]
		if ti.TotalDuration > 0 {
			ti.CaloriesPerMinute = ti.TotalCalories / ti.TotalDuration
		}
		out = append(out, ti)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CaloriesPerMinute > out[j].CaloriesPerMinute
	})
	return out
}

// AverageDuration is the mean workout duration, 0 for an empty list.
func AverageDuration(fitness []model.FitnessEntry) float64 {
	if len(fitness) == 0 {
		return 0
	}
	var total float64
	for _, e := range fitness {
		total += e.Duration
	}
	return total / float64(len(fitness))
}

// AverageIntensity is total calories burned per total minute of
// activity across all entries, 0 when no minutes were logged.
func AverageIntensity(fitness []model.FitnessEntry) float64 {
	var calories, minutes float64
	for _, e := range fitness {
		calories += e.CaloriesBurned
		minutes += e.Duration
	}
	if minutes <= 0 {
		return 0
	}
	return calories / minutes
}

// Consistency is the percentage of days in the range with at least one
// logged activity. totalDays is supplied by the caller (range length or
// full-history span); a non-positive value yields 0.
func Consistency(fitness []model.FitnessEntry, totalDays int) float64 {
	if totalDays <= 0 {
		return 0
	}
	return float64(distinctDays(fitness)) / float64(totalDays) * 100
}

// ConsistencyAllTime is the full-history variant: the denominator spans
// first to last entry day, inclusive, so a single-day dataset reports
// 100. Entries with unparseable dates are ignored for the span.
func ConsistencyAllTime(fitness []model.FitnessEntry) float64 {
	var first, last time.Time
	for _, e := range fitness {
		d, err := time.Parse(model.Day, e.Date)
		if err != nil {
			continue
		}
		if first.IsZero() || d.Before(first) {
			first = d
		}
		if last.IsZero() || d.After(last) {
			last = d
		}
	}
	if first.IsZero() {
		return 0
	}
	span := int(last.Sub(first).Hours()/24) + 1
	return Consistency(fitness, span)
}

// DiversityScore is the number of distinct non-empty activity types.
func DiversityScore(fitness []model.FitnessEntry) int {
	return CountByCategory(fitness, func(e model.FitnessEntry) string {
		return e.ActivityType
	}).Len()
}

// Gaps computes the per-day calorie gap (intake minus burned) projected
// onto the given day order. Positive means surplus.
func Gaps(days []string, intake, burned Series) []float64 {
	out := make([]float64, len(days))
	for i, d := range days {
		out[i] = intake[d] - burned[d]
	}
	return out
}

const weekMillis = 7 * 24 * 60 * 60 * 1000

// weekBucket assigns a day to a 7-day bucket by dividing its epoch
// milliseconds. Buckets do not align with Monday/Sunday boundaries;
// the original dashboard bucketed this way and exported numbers depend
// on it. Returns false for unparseable days.
func weekBucket(day string) (int64, bool) {
	t, err := time.Parse(model.Day, day)
	if err != nil {
		return 0, false
	}
	return t.UnixMilli() / weekMillis, true
}

// WeeklySessions is the average number of distinct active days per
// 7-day bucket, 0 for an empty list.
func WeeklySessions(fitness []model.FitnessEntry) float64 {
	daysPerBucket := make(map[int64]map[string]bool)
	for _, e := range fitness {
		b, ok := weekBucket(e.Date)
		if !ok {
			continue
		}
		if daysPerBucket[b] == nil {
			daysPerBucket[b] = make(map[string]bool)
		}
		daysPerBucket[b][e.Date] = true
	}
	if len(daysPerBucket) == 0 {
		return 0
	}
	var total int
	for _, days := range daysPerBucket {
		total += len(days)
	}
	return float64(total) / float64(len(daysPerBucket))
}

// WeeklyCalories is the average calories burned per 7-day bucket,
// 0 for an empty list. Shares weekBucket with WeeklySessions so the
// two weekly goals measure the same buckets.
func WeeklyCalories(fitness []model.FitnessEntry) float64 {
	perBucket := make(map[int64]float64)
	for _, e := range fitness {
		b, ok := weekBucket(e.Date)
		if !ok {
			continue
		}
		perBucket[b] += e.CaloriesBurned
	}
	if len(perBucket) == 0 {
		return 0
	}
	var total float64
	for _, c := range perBucket {
		total += c
	}
	return total / float64(len(perBucket))
}

// AverageDailyMovement is the mean of per-day summed duration across
// the distinct days present, 0 for an empty list.
func AverageDailyMovement(fitness []model.FitnessEntry) float64 {
	perDay := GroupSum(fitness, func(e model.FitnessEntry) float64 {
		return e.Duration
	})
	if len(perDay) == 0 {
		return 0
	}
	return perDay.Total() / float64(len(perDay))
}

func distinctDays(fitness []model.FitnessEntry) int {
	days := make(map[string]bool, len(fitness))
	for _, e := range fitness {
		days[e.Date] = true
	}
	return len(days)
}
