package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/fittrack/fittrack/internal/dashboard"
	"github.com/fittrack/fittrack/internal/model"
	"github.com/mark3labs/mcp-go/mcp"
)

// defaultDayRange returns a date range defaulting to the last 7 days.
func defaultDayRange(startStr, endStr string) (model.DateRange, error) {
	if startStr == "" && endStr == "" {
		return dashboard.DefaultRange(time.Now()), nil
	}

	if endStr == "" {
		endStr = time.Now().Format(model.Day)
	} else if _, err := time.Parse(model.Day, endStr); err != nil {
		return model.DateRange{}, fmt.Errorf("end must be YYYY-MM-DD")
	}

	if startStr == "" {
		startStr = dashboard.DefaultRange(time.Now()).Start
	} else if _, err := time.Parse(model.Day, startStr); err != nil {
		return model.DateRange{}, fmt.Errorf("start must be YYYY-MM-DD")
	}

	return model.DateRange{Start: startStr, End: endStr}, nil
}

// fetch loads both record lists from the data source.
func (h *handlers) fetch(ctx context.Context) ([]model.FitnessEntry, []model.FoodEntry, error) {
	fitness, err := h.ds.FitnessEntries(ctx)
	if err != nil {
		return nil, nil, err
	}
	food, err := h.ds.FoodEntries(ctx)
	if err != nil {
		return nil, nil, err
	}
	return fitness, food, nil
}

// --- Tool definitions ---

var toolGetDashboardSummary = mcp.NewTool("get_dashboard_summary",
	mcp.WithDescription("Full dashboard report for a date range: per-day series, category counts, intensity per activity type, derived metrics, goal progress, and totals."),
	mcp.WithString("start", mcp.Description("Start date (YYYY-MM-DD). Defaults to 7 days ago.")),
	mcp.WithString("end", mcp.Description("End date (YYYY-MM-DD). Defaults to today.")),
)

var toolGetCombinedLog = mcp.NewTool("get_combined_log",
	mcp.WithDescription("Merged workout and food log, newest first, paginated 10 entries per page."),
	mcp.WithNumber("page", mcp.Description("Page number starting at 1. Defaults to 1.")),
)

var toolGetGoalProgress = mcp.NewTool("get_goal_progress",
	mcp.WithDescription("Progress toward the fixed fitness goals (weekly sessions, daily movement, weekly calorie burn, activity diversity), each capped at 100%."),
)

var toolGetActivityBreakdown = mcp.NewTool("get_activity_breakdown",
	mcp.WithDescription("Workout counts per activity type plus calories-per-minute intensity, sorted most intense first."),
	mcp.WithString("start", mcp.Description("Start date (YYYY-MM-DD). Defaults to 7 days ago.")),
	mcp.WithString("end", mcp.Description("End date (YYYY-MM-DD). Defaults to today.")),
)

var toolGetCalorieGap = mcp.NewTool("get_calorie_gap",
	mcp.WithDescription("Daily calorie balance (intake minus burned) per day in a range, plus range totals."),
	mcp.WithString("start", mcp.Description("Start date (YYYY-MM-DD). Defaults to 7 days ago.")),
	mcp.WithString("end", mcp.Description("End date (YYYY-MM-DD). Defaults to today.")),
)

var toolGetDataStats = mcp.NewTool("get_data_stats",
	mcp.WithDescription("Stored data overview: entry counts, date span, and entries per activity type."),
)

// --- Tool handlers ---

func (h *handlers) getDashboardSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rng, err := defaultDayRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	fitness, food, err := h.fetch(ctx)
	if err != nil {
		h.log.Error("mcp get_dashboard_summary", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(dashboard.BuildReport(fitness, food, rng))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getCombinedLog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := req.GetInt("page", 1)
	if page < 1 {
		return mcp.NewToolResultError("page must be >= 1"), nil
	}

	fitness, food, err := h.fetch(ctx)
	if err != nil {
		h.log.Error("mcp get_combined_log", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	entries := dashboard.Combine(fitness, food)
	result, err := mcp.NewToolResultJSON(map[string]any{
		"page":      page,
		"page_size": dashboard.PageSize,
		"total":     len(entries),
		"entries":   dashboard.Paginate(entries, page, dashboard.PageSize),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getGoalProgress(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fitness, err := h.ds.FitnessEntries(ctx)
	if err != nil {
		h.log.Error("mcp get_goal_progress", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(dashboard.EvaluateGoals(fitness))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getActivityBreakdown(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rng, err := defaultDayRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	fitness, err := h.ds.FitnessEntries(ctx)
	if err != nil {
		h.log.Error("mcp get_activity_breakdown", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	fitness = dashboard.FilterRange(fitness, rng)

	counts := dashboard.CountByCategory(fitness, func(e model.FitnessEntry) string { return e.ActivityType })
	result, err := mcp.NewToolResultJSON(map[string]any{
		"range":     rng,
		"counts":    counts,
		"intensity": dashboard.ActivityIntensities(fitness),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getCalorieGap(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rng, err := defaultDayRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	fitness, food, err := h.fetch(ctx)
	if err != nil {
		h.log.Error("mcp get_calorie_gap", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	fitness = dashboard.FilterRange(fitness, rng)
	food = dashboard.FilterRange(food, rng)

	burned := dashboard.GroupSum(fitness, func(e model.FitnessEntry) float64 { return e.CaloriesBurned })
	intake := dashboard.GroupSum(food, func(e model.FoodEntry) float64 { return e.Calories })
	days := dashboard.MergeDays(burned, intake)

	result, err := mcp.NewToolResultJSON(map[string]any{
		"range":        rng,
		"dates":        days,
		"gaps":         dashboard.Gaps(days, intake, burned),
		"total_intake": intake.Total(),
		"total_burned": burned.Total(),
		"total_gap":    intake.Total() - burned.Total(),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getDataStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := h.ds.DataStats(ctx)
	if err != nil {
		h.log.Error("mcp get_data_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
