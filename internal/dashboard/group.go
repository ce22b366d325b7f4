package dashboard

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/fittrack/fittrack/internal/model"
)

// Series maps a calendar day to a summed value. A day appears as a key
// exactly when at least one contributing record falls on it; days with
// no records are absent, and lookups default to 0.
type Series map[string]float64

// Values projects the series onto an ordered day list, filling absent
// days with 0. The result is chart-ready.
func (s Series) Values(days []string) []float64 {
	out := make([]float64, len(days))
	for i, d := range days {
		out[i] = s[d]
	}
	return out
}

// Total sums all values in the series.
func (s Series) Total() float64 {
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum
}

// GroupSum buckets records by day and sums the selected value per
// bucket. A record whose value is 0 still creates its day key: key
// presence means "at least one record", not "non-zero value".
func GroupSum[R Record](records []R, value func(R) float64) Series {
	out := make(Series, len(records))
	for _, r := range records {
		out[r.Day()] += value(r)
	}
	return out
}

// MergeDays returns the sorted union of day keys across the given
// series. Lexicographic sort is chronological because days are
// ISO-8601 strings.
func MergeDays(series ...Series) []string {
	seen := make(map[string]bool)
	var days []string
	for _, s := range series {
		for d := range s {
			if !seen[d] {
				seen[d] = true
				days = append(days, d)
			}
		}
	}
	sort.Strings(days)
	return days
}

// Counts tallies occurrences per category label, remembering the order
// in which labels were first seen. First-seen order is the documented
// tie-break for top-activity and intensity rankings.
type Counts struct {
	order []string
	n     map[string]int
}

// NewCounts returns an empty tally.
func NewCounts() *Counts {
	return &Counts{n: make(map[string]int)}
}

func (c *Counts) add(label string) {
	if _, ok := c.n[label]; !ok {
		c.order = append(c.order, label)
	}
	c.n[label]++
}

// Get returns the count for a label, 0 when absent.
func (c *Counts) Get(label string) int { return c.n[label] }

// Labels returns all labels in first-seen order.
func (c *Counts) Labels() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of distinct labels.
func (c *Counts) Len() int { return len(c.order) }

// MarshalJSON emits a JSON object with labels in first-seen order, so
// chart legends are stable across re-renders.
func (c *Counts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(c.n[label])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CountByCategory tallies records per category label, skipping records
// whose label is empty. Missing categories are excluded outright rather
// than grouped under a synthetic "unknown" key; the one exception is
// meal types, handled by CountByMealType.
func CountByCategory[R any](records []R, label func(R) string) *Counts {
	c := NewCounts()
	for _, r := range records {
		if l := label(r); l != "" {
			c.add(l)
		}
	}
	return c
}

// MealTypes is the fixed set of recognized meal labels.
var MealTypes = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

// CountByMealType tallies food entries per meal type. Any value outside
// the fixed set, including an empty one, counts as "Snack".
func CountByMealType(foods []model.FoodEntry) *Counts {
	known := make(map[string]bool, len(MealTypes))
	for _, m := range MealTypes {
		known[m] = true
	}
	c := NewCounts()
	for _, f := range foods {
		meal := f.MealType
		if !known[meal] {
			meal = "Snack"
		}
		c.add(meal)
	}
	return c
}
