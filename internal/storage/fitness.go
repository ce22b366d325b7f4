package storage

import (
	"context"
	"fmt"

	"github.com/fittrack/fittrack/internal/model"
)

// ListFitnessEntries returns all fitness entries for a user, ordered by
// date then id ascending. Dates come back as plain day strings.
func (db *DB) ListFitnessEntries(ctx context.Context, userID int) ([]model.FitnessEntry, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, to_char(date, 'YYYY-MM-DD'), COALESCE(activity_type, ''),
		        duration, calories_burned, COALESCE(emotion, '')
		 FROM fitness_entries
		 WHERE user_id = $1
		 ORDER BY date ASC, id ASC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying fitness entries: %w", err)
	}
	defer rows.Close()

	var result []model.FitnessEntry
	for rows.Next() {
		var e model.FitnessEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.ActivityType, &e.Duration, &e.CaloriesBurned, &e.Emotion); err != nil {
			return nil, fmt.Errorf("scanning fitness entry: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// InsertFitnessEntry inserts a workout record and returns it with its
// assigned id. Ids are SERIAL, so later inserts always get larger ids;
// the combined log's tie-break depends on that.
func (db *DB) InsertFitnessEntry(ctx context.Context, userID int, e model.FitnessEntry) (model.FitnessEntry, error) {
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO fitness_entries (user_id, date, activity_type, duration, calories_burned, emotion)
		 VALUES ($1, $2::date, NULLIF($3, ''), $4, $5, NULLIF($6, ''))
		 RETURNING id`,
		userID, e.Date, e.ActivityType, e.Duration, e.CaloriesBurned, e.Emotion,
	).Scan(&e.ID)
	if err != nil {
		return model.FitnessEntry{}, fmt.Errorf("inserting fitness entry: %w", err)
	}
	return e, nil
}

// DeleteFitnessEntry removes a workout record by id. Returns
// ErrNotFound when the id does not exist for this user; the stored
// lists are untouched in that case.
func (db *DB) DeleteFitnessEntry(ctx context.Context, userID int, id int64) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM fitness_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting fitness entry %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
