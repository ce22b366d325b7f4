// Package importer loads JSON export files into the database, tracking
// processed files in a local SQLite state database so reruns are cheap.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fittrack/fittrack/internal/model"
	"github.com/fittrack/fittrack/internal/storage"
	"github.com/google/uuid"
)

// Store is the subset of the storage layer the importer writes through.
// *storage.DB satisfies it.
type Store interface {
	InsertFitnessEntry(ctx context.Context, userID int, e model.FitnessEntry) (model.FitnessEntry, error)
	InsertFoodEntry(ctx context.Context, userID int, e model.FoodEntry) (model.FoodEntry, error)
	InsertImportLog(ctx context.Context, log *storage.ImportLog) error
}

// Stats tracks import progress.
type Stats struct {
	FilesProcessed  int
	FilesSkipped    int
	FilesErrored    int
	FitnessInserted int
	FoodInserted    int
}

// exportFile is the on-disk shape of one export: both record lists in a
// single JSON document.
type exportFile struct {
	FitnessEntries []model.FitnessEntry `json:"fitness_entries"`
	FoodEntries    []model.FoodEntry    `json:"food_entries"`
}

// Importer reads export files from a directory and inserts entries into the DB.
type Importer struct {
	store  Store
	state  *StateDB
	log    *slog.Logger
	userID int
	dryRun bool
	stats  Stats
}

// New creates a new Importer. state may be nil, in which case every file is
// processed on every run.
func New(store Store, state *StateDB, userID int, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{store: store, state: state, userID: userID, log: log, dryRun: dryRun}
}

// Import processes all .json export files under dir. Each run is recorded
// as one import batch.
func (imp *Importer) Import(ctx context.Context, dir string) (*Stats, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return &imp.stats, fmt.Errorf("listing export files: %w", err)
	}

	batchID := uuid.NewString()

	for _, f := range files {
		if err := imp.importFile(ctx, dir, f, batchID); err != nil {
			return &imp.stats, err
		}
	}

	if !imp.dryRun && imp.stats.FilesProcessed > 0 {
		err := imp.store.InsertImportLog(ctx, &storage.ImportLog{
			BatchID:         batchID,
			UserID:          imp.userID,
			SourceFile:      dir,
			FitnessInserted: imp.stats.FitnessInserted,
			FoodInserted:    imp.stats.FoodInserted,
		})
		if err != nil {
			return &imp.stats, fmt.Errorf("recording import batch: %w", err)
		}
		imp.log.Info("import batch recorded", "batch_id", batchID,
			"fitness", imp.stats.FitnessInserted, "food", imp.stats.FoodInserted)
	}

	return &imp.stats, nil
}

func (imp *Importer) importFile(ctx context.Context, dir, path, batchID string) error {
	relPath, err := filepath.Rel(dir, path)
	if err != nil {
		relPath = filepath.Base(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		imp.log.Warn("stat failed", "file", path, "error", err)
		imp.stats.FilesErrored++
		return nil
	}

	var hash string
	if imp.state != nil {
		hash, err = HashFile(path)
		if err != nil {
			imp.log.Warn("hash failed", "file", path, "error", err)
			imp.stats.FilesErrored++
			return nil
		}
		done, err := imp.state.IsImported(relPath, info.Size(), hash)
		if err != nil {
			return fmt.Errorf("checking import state for %s: %w", relPath, err)
		}
		if done {
			imp.stats.FilesSkipped++
			return nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		imp.log.Warn("read failed", "file", path, "error", err)
		imp.stats.FilesErrored++
		return nil
	}

	var export exportFile
	if err := json.Unmarshal(data, &export); err != nil {
		imp.log.Warn("parse failed", "file", path, "error", err)
		imp.stats.FilesErrored++
		return nil
	}

	if len(export.FitnessEntries) == 0 && len(export.FoodEntries) == 0 {
		imp.stats.FilesSkipped++
		return nil
	}

	for _, e := range export.FitnessEntries {
		if err := validateEntry(e.Date, e.ActivityType); err != nil {
			imp.log.Warn("skipping fitness entry", "file", relPath, "error", err)
			continue
		}
		if imp.dryRun {
			imp.stats.FitnessInserted++
			continue
		}
		if _, err := imp.store.InsertFitnessEntry(ctx, imp.userID, e); err != nil {
			return fmt.Errorf("inserting fitness entry from %s: %w", relPath, err)
		}
		imp.stats.FitnessInserted++
	}

	for _, e := range export.FoodEntries {
		if err := validateEntry(e.Date, e.FoodName); err != nil {
			imp.log.Warn("skipping food entry", "file", relPath, "error", err)
			continue
		}
		if imp.dryRun {
			imp.stats.FoodInserted++
			continue
		}
		if _, err := imp.store.InsertFoodEntry(ctx, imp.userID, e); err != nil {
			return fmt.Errorf("inserting food entry from %s: %w", relPath, err)
		}
		imp.stats.FoodInserted++
	}

	imp.stats.FilesProcessed++

	if imp.state != nil && !imp.dryRun {
		if err := imp.state.MarkImported(relPath, info.Size(), hash); err != nil {
			return fmt.Errorf("marking %s imported: %w", relPath, err)
		}
	}

	imp.log.Info("imported file", "file", relPath, "batch_id", batchID,
		"fitness", len(export.FitnessEntries), "food", len(export.FoodEntries))
	return nil
}

func validateEntry(date, name string) error {
	if name == "" {
		return fmt.Errorf("missing name")
	}
	if _, err := time.Parse(model.Day, date); err != nil {
		return fmt.Errorf("bad date %q", date)
	}
	return nil
}
