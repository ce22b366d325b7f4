// Package dashboard is the aggregation engine behind the fitness/food
// dashboard. It turns raw dated records into grouped series, derived
// metrics, goal percentages, a combined activity feed, and a summary
// projection. Every function here is pure: no I/O, no shared state,
// freshly allocated outputs, and defined zero-data behavior instead of
// errors.
package dashboard

import (
	"time"

	"github.com/fittrack/fittrack/internal/model"
)

// Record is any dated log entry. Both model.FitnessEntry and
// model.FoodEntry satisfy it.
type Record interface {
	Day() string
}

// FilterRange returns the subsequence of records whose day falls inside
// the inclusive range, preserving input order. An inverted or empty
// range yields an empty result, never an error.
func FilterRange[R Record](records []R, rng model.DateRange) []R {
	out := make([]R, 0, len(records))
	for _, r := range records {
		if rng.Contains(r.Day()) {
			out = append(out, r)
		}
	}
	return out
}

// DefaultRange is the rolling 7-day window ending at now: [now-6d, now].
// Callers fall back to it when no explicit range is supplied.
func DefaultRange(now time.Time) model.DateRange {
	return model.DateRange{
		Start: now.AddDate(0, 0, -6).Format(model.Day),
		End:   now.Format(model.Day),
	}
}
