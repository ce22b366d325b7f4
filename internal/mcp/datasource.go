package mcp

import (
	"context"

	"github.com/fittrack/fittrack/internal/model"
	"github.com/fittrack/fittrack/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.Records
// (local) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	FitnessEntries(ctx context.Context) ([]model.FitnessEntry, error)
	FoodEntries(ctx context.Context) ([]model.FoodEntry, error)
	DataStats(ctx context.Context) (*storage.DataStats, error)
}

// Compile-time check: *storage.Records satisfies DataSource.
var _ DataSource = (*storage.Records)(nil)
