package storage

import (
	"context"
	"fmt"
	"time"
)

// ImportLog records a completed import batch.
type ImportLog struct {
	ID              int       `json:"id"`
	BatchID         string    `json:"batch_id"`
	UserID          int       `json:"user_id"`
	SourceFile      string    `json:"source_file"`
	FitnessInserted int       `json:"fitness_inserted"`
	FoodInserted    int       `json:"food_inserted"`
	CreatedAt       time.Time `json:"created_at"`
}

// InsertImportLog records an import batch after its entries have been stored.
func (db *DB) InsertImportLog(ctx context.Context, log *ImportLog) error {
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO import_logs (batch_id, user_id, source_file, fitness_inserted, food_inserted)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		log.BatchID, log.UserID, log.SourceFile, log.FitnessInserted, log.FoodInserted,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting import log: %w", err)
	}
	return nil
}

// ListImportLogs returns the most recent import batches, newest first.
func (db *DB) ListImportLogs(ctx context.Context, userID, limit int) ([]ImportLog, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, batch_id, user_id, source_file, fitness_inserted, food_inserted, created_at
		 FROM import_logs
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing import logs: %w", err)
	}
	defer rows.Close()

	var logs []ImportLog
	for rows.Next() {
		var l ImportLog
		if err := rows.Scan(&l.ID, &l.BatchID, &l.UserID, &l.SourceFile, &l.FitnessInserted, &l.FoodInserted, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning import log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
