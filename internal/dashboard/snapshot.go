package dashboard

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/fittrack/fittrack/internal/model"
)

// Source supplies the raw record lists the dashboard aggregates over.
// *storage.Records satisfies it for local data.
type Source interface {
	FitnessEntries(ctx context.Context) ([]model.FitnessEntry, error)
	FoodEntries(ctx context.Context) ([]model.FoodEntry, error)
}

// Snapshot is one immutable fetch of both source lists. Aggregation
// passes read a snapshot and write only to their own outputs, so no
// locking is needed around computation.
type Snapshot struct {
	Version uint64
	Fitness []model.FitnessEntry
	Food    []model.FoodEntry
}

// Loader fetches snapshots and guarantees that a slow, earlier fetch
// never replaces a later one: each Refresh is stamped with a sequence
// number before fetching, and only the highest-stamped result is
// installed.
type Loader struct {
	src Source
	seq atomic.Uint64

	mu        sync.Mutex
	installed *Snapshot
}

// NewLoader creates a Loader over the given source.
func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

// Refresh fetches both lists and returns the resulting snapshot. The
// snapshot is installed as current only if no later Refresh finished
// first; the caller still gets its own result either way.
func (l *Loader) Refresh(ctx context.Context) (*Snapshot, error) {
	version := l.seq.Add(1)

	fitness, err := l.src.FitnessEntries(ctx)
	if err != nil {
		return nil, err
	}
	food, err := l.src.FoodEntries(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{Version: version, Fitness: fitness, Food: food}

	l.mu.Lock()
	if l.installed == nil || snap.Version > l.installed.Version {
		l.installed = snap
	}
	l.mu.Unlock()
	return snap, nil
}

// Current returns the most recently installed snapshot, or nil before
// the first successful Refresh or after Invalidate.
func (l *Loader) Current() *Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.installed
}

// Invalidate discards the installed snapshot. Called after a record is
// deleted or created so the next pass recomputes from the updated
// source lists instead of patching state in place.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.installed = nil
	l.mu.Unlock()
}
