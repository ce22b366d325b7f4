package storage

import (
	"context"
	"fmt"
	"time"
)

// DataStats holds aggregate statistics about a user's stored records.
type DataStats struct {
	TotalFitnessEntries int64              `json:"total_fitness_entries"`
	TotalFoodEntries    int64              `json:"total_food_entries"`
	EarliestData        *time.Time         `json:"earliest_data"`
	LatestData          *time.Time         `json:"latest_data"`
	EntriesByActivity   []ActivityTypeStat `json:"entries_by_activity"`
}

// ActivityTypeStat holds summary stats for a single activity type.
type ActivityTypeStat struct {
	Name          string  `json:"name"`
	Count         int64   `json:"count"`
	TotalDuration float64 `json:"total_duration"`
	TotalCalories float64 `json:"total_calories"`
}

// GetDataStats returns aggregate statistics for a user's stored data.
func (db *DB) GetDataStats(ctx context.Context, userID int) (*DataStats, error) {
	stats := &DataStats{}

	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM fitness_entries WHERE user_id = $1`, userID,
	).Scan(&stats.TotalFitnessEntries)
	if err != nil {
		return nil, fmt.Errorf("counting fitness entries: %w", err)
	}

	err = db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM food_entries WHERE user_id = $1`, userID,
	).Scan(&stats.TotalFoodEntries)
	if err != nil {
		return nil, fmt.Errorf("counting food entries: %w", err)
	}

	// Date span across both record kinds
	err = db.Pool.QueryRow(ctx,
		`SELECT MIN(d), MAX(d) FROM (
			SELECT MIN(date) AS d FROM fitness_entries WHERE user_id = $1
			UNION ALL
			SELECT MIN(date) FROM food_entries WHERE user_id = $1
			UNION ALL
			SELECT MAX(date) FROM fitness_entries WHERE user_id = $1
			UNION ALL
			SELECT MAX(date) FROM food_entries WHERE user_id = $1
		) sub`, userID,
	).Scan(&stats.EarliestData, &stats.LatestData)
	if err != nil {
		return nil, fmt.Errorf("querying date range: %w", err)
	}

	// Entries by activity type
	rows, err := db.Pool.Query(ctx,
		`SELECT activity_type, COUNT(*), COALESCE(SUM(duration), 0), COALESCE(SUM(calories_burned), 0)
		 FROM fitness_entries
		 WHERE user_id = $1 AND activity_type IS NOT NULL
		 GROUP BY activity_type
		 ORDER BY COUNT(*) DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying entries by activity: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s ActivityTypeStat
		if err := rows.Scan(&s.Name, &s.Count, &s.TotalDuration, &s.TotalCalories); err != nil {
			return nil, fmt.Errorf("scanning activity type stat: %w", err)
		}
		stats.EntriesByActivity = append(stats.EntriesByActivity, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
