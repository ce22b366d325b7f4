package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/fittrack/fittrack/internal/model"
)

// fakeSource serves canned lists and lets tests interleave fetches.
type fakeSource struct {
	fitness []model.FitnessEntry
	food    []model.FoodEntry
	err     error

	// When set, called before returning the fitness list so a test can
	// simulate a slow fetch overtaken by a faster one.
	onFitness func()
}

func (s *fakeSource) FitnessEntries(ctx context.Context) ([]model.FitnessEntry, error) {
	if s.onFitness != nil {
		s.onFitness()
	}
	return s.fitness, s.err
}

func (s *fakeSource) FoodEntries(ctx context.Context) ([]model.FoodEntry, error) {
	return s.food, s.err
}

// TestLoaderRefresh verifies a normal refresh installs its snapshot.
func TestLoaderRefresh(t *testing.T) {
	src := &fakeSource{
		fitness: []model.FitnessEntry{fit(1, "2025-04-01", "Running", 30, 280)},
	}
	l := NewLoader(src)

	snap, err := l.Refresh(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Fitness) != 1 {
		t.Errorf("fitness len = %d, want 1", len(snap.Fitness))
	}
	if cur := l.Current(); cur != snap {
		t.Error("refresh did not install its snapshot")
	}
}

// TestLoaderStaleFetchDoesNotOverwrite verifies that a slow earlier
// refresh cannot replace the result of a later one.
func TestLoaderStaleFetchDoesNotOverwrite(t *testing.T) {
	src := &fakeSource{}
	l := NewLoader(src)

	// The first (slow) refresh triggers a second, newer refresh while
	// it is still in flight.
	first := true
	src.onFitness = func() {
		if first {
			first = false
			src.onFitness = nil
			if _, err := l.Refresh(context.Background()); err != nil {
				t.Fatalf("inner refresh: %v", err)
			}
		}
	}

	slow, err := l.Refresh(context.Background())
	if err != nil {
		t.Fatalf("outer refresh: %v", err)
	}

	cur := l.Current()
	if cur == nil {
		t.Fatal("no snapshot installed")
	}
	if cur.Version <= slow.Version {
		t.Errorf("installed version %d not newer than stale %d", cur.Version, slow.Version)
	}
}

// TestLoaderError verifies a failed refresh leaves prior state intact.
func TestLoaderError(t *testing.T) {
	src := &fakeSource{fitness: []model.FitnessEntry{fit(1, "2025-04-01", "Running", 30, 280)}}
	l := NewLoader(src)
	if _, err := l.Refresh(context.Background()); err != nil {
		t.Fatalf("seed refresh: %v", err)
	}
	before := l.Current()

	src.err = errors.New("database gone")
	if _, err := l.Refresh(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if l.Current() != before {
		t.Error("failed refresh changed the installed snapshot")
	}
}

// TestLoaderInvalidate verifies Invalidate discards the snapshot.
func TestLoaderInvalidate(t *testing.T) {
	l := NewLoader(&fakeSource{})
	if _, err := l.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	l.Invalidate()
	if l.Current() != nil {
		t.Error("snapshot survived Invalidate")
	}
}
