package storage

import (
	"context"

	"github.com/fittrack/fittrack/internal/model"
)

// Records binds a DB to a user, exposing that user's record lists.
// It is the local data source for the dashboard loader.
type Records struct {
	db     *DB
	userID int
}

// RecordsFor returns a Records view over the given user's data.
func (db *DB) RecordsFor(userID int) *Records {
	return &Records{db: db, userID: userID}
}

func (r *Records) FitnessEntries(ctx context.Context) ([]model.FitnessEntry, error) {
	return r.db.ListFitnessEntries(ctx, r.userID)
}

func (r *Records) FoodEntries(ctx context.Context) ([]model.FoodEntry, error) {
	return r.db.ListFoodEntries(ctx, r.userID)
}

func (r *Records) DataStats(ctx context.Context) (*DataStats, error) {
	return r.db.GetDataStats(ctx, r.userID)
}
