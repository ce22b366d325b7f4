package mcp

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/fittrack/fittrack/internal/model"
	"github.com/fittrack/fittrack/internal/storage"
	gomcp "github.com/mark3labs/mcp-go/mcp"
)

// fakeSource serves fixed record lists for tool handler tests.
type fakeSource struct {
	fitness []model.FitnessEntry
	food    []model.FoodEntry
}

func (f *fakeSource) FitnessEntries(ctx context.Context) ([]model.FitnessEntry, error) {
	return f.fitness, nil
}

func (f *fakeSource) FoodEntries(ctx context.Context) ([]model.FoodEntry, error) {
	return f.food, nil
}

func (f *fakeSource) DataStats(ctx context.Context) (*storage.DataStats, error) {
	return &storage.DataStats{
		TotalFitnessEntries: int64(len(f.fitness)),
		TotalFoodEntries:    int64(len(f.food)),
	}, nil
}

func testHandlers(src DataSource) *handlers {
	return &handlers{ds: src, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func textOf(t *testing.T, res *gomcp.CallToolResult) string {
	t.Helper()
	if res.IsError {
		t.Fatalf("tool returned error result: %+v", res.Content)
	}
	for _, c := range res.Content {
		if tc, ok := c.(gomcp.TextContent); ok {
			return tc.Text
		}
	}
	t.Fatal("no text content in result")
	return ""
}

func callReq(args map[string]any) gomcp.CallToolRequest {
	req := gomcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// TestDefaultDayRange verifies range defaults and validation.
func TestDefaultDayRange(t *testing.T) {
	rng, err := defaultDayRange("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Now().Format(model.Day); rng.End != want {
		t.Errorf("default end = %q, want %q", rng.End, want)
	}

	rng, err = defaultDayRange("2025-04-01", "2025-04-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rng.Start != "2025-04-01" || rng.End != "2025-04-30" {
		t.Errorf("range = %+v, want explicit dates", rng)
	}

	if _, err := defaultDayRange("not-a-date", ""); err == nil {
		t.Error("expected error for invalid start")
	}
	if _, err := defaultDayRange("", "2025/04/01"); err == nil {
		t.Error("expected error for invalid end")
	}
}

// TestGetDashboardSummaryTool verifies the report tool returns JSON with
// range-filtered totals.
func TestGetDashboardSummaryTool(t *testing.T) {
	h := testHandlers(&fakeSource{
		fitness: []model.FitnessEntry{
			{ID: 1, Date: "2025-04-01", ActivityType: "Running", Duration: 30, CaloriesBurned: 300},
		},
		food: []model.FoodEntry{
			{ID: 1, Date: "2025-04-01", FoodName: "Oats", Calories: 350},
		},
	})

	res, err := h.getDashboardSummary(context.Background(), callReq(map[string]any{
		"start": "2025-04-01",
		"end":   "2025-04-07",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}

	text := textOf(t, res)
	if !strings.Contains(text, `"total_workouts":1`) {
		t.Errorf("summary missing total_workouts: %s", text)
	}
	if !strings.Contains(text, `"calorie_gap":50`) {
		t.Errorf("summary missing calorie_gap: %s", text)
	}
}

// TestGetCombinedLogTool verifies pagination metadata and ordering.
func TestGetCombinedLogTool(t *testing.T) {
	h := testHandlers(&fakeSource{
		fitness: []model.FitnessEntry{
			{ID: 1, Date: "2025-04-03", ActivityType: "Running"},
		},
		food: []model.FoodEntry{
			{ID: 3, Date: "2025-04-02", FoodName: "Rice"},
		},
	})

	res, err := h.getCombinedLog(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}

	text := textOf(t, res)
	if !strings.Contains(text, `"total":2`) {
		t.Errorf("log missing total: %s", text)
	}
	if strings.Index(text, "2025-04-03") > strings.Index(text, "2025-04-02") {
		t.Errorf("entries not newest first: %s", text)
	}
}

// TestGetGoalProgressTool verifies goal names appear in the output.
func TestGetGoalProgressTool(t *testing.T) {
	h := testHandlers(&fakeSource{})

	res, err := h.getGoalProgress(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}

	text := textOf(t, res)
	for _, name := range []string{"Weekly sessions", "Daily movement", "Weekly calorie burn", "Activity diversity"} {
		if !strings.Contains(text, name) {
			t.Errorf("goal %q missing from output: %s", name, text)
		}
	}
}

// TestGetCalorieGapTool verifies per-day gaps and totals.
func TestGetCalorieGapTool(t *testing.T) {
	h := testHandlers(&fakeSource{
		fitness: []model.FitnessEntry{
			{ID: 1, Date: "2025-04-01", ActivityType: "Running", CaloriesBurned: 300},
		},
		food: []model.FoodEntry{
			{ID: 1, Date: "2025-04-01", FoodName: "Oats", Calories: 500},
		},
	})

	res, err := h.getCalorieGap(context.Background(), callReq(map[string]any{
		"start": "2025-04-01",
		"end":   "2025-04-07",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}

	text := textOf(t, res)
	if !strings.Contains(text, `"total_gap":200`) {
		t.Errorf("gap output missing total_gap: %s", text)
	}
}
