package storage

import (
	"context"
	"fmt"

	"github.com/fittrack/fittrack/internal/model"
)

// ListFoodEntries returns all food entries for a user, ordered by date
// then id ascending.
func (db *DB) ListFoodEntries(ctx context.Context, userID int) ([]model.FoodEntry, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, to_char(date, 'YYYY-MM-DD'), food_name, quantity, calories, COALESCE(meal_type, '')
		 FROM food_entries
		 WHERE user_id = $1
		 ORDER BY date ASC, id ASC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying food entries: %w", err)
	}
	defer rows.Close()

	var result []model.FoodEntry
	for rows.Next() {
		var e model.FoodEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.FoodName, &e.Quantity, &e.Calories, &e.MealType); err != nil {
			return nil, fmt.Errorf("scanning food entry: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// InsertFoodEntry inserts a meal record and returns it with its
// assigned id.
func (db *DB) InsertFoodEntry(ctx context.Context, userID int, e model.FoodEntry) (model.FoodEntry, error) {
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO food_entries (user_id, date, food_name, quantity, calories, meal_type)
		 VALUES ($1, $2::date, $3, $4, $5, NULLIF($6, ''))
		 RETURNING id`,
		userID, e.Date, e.FoodName, e.Quantity, e.Calories, e.MealType,
	).Scan(&e.ID)
	if err != nil {
		return model.FoodEntry{}, fmt.Errorf("inserting food entry: %w", err)
	}
	return e, nil
}

// DeleteFoodEntry removes a meal record by id. Returns ErrNotFound when
// the id does not exist for this user.
func (db *DB) DeleteFoodEntry(ctx context.Context, userID int, id int64) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM food_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting food entry %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
