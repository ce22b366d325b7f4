package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fittrack/fittrack/internal/dashboard"
	"github.com/fittrack/fittrack/internal/model"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) dailySummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	fitness, food, err := h.fetch(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format(model.Day)
	rng := model.DateRange{Start: today, End: today}
	fitness = dashboard.FilterRange(fitness, rng)
	food = dashboard.FilterRange(food, rng)

	summary := map[string]any{
		"date":     today,
		"workouts": dashboard.Combine(fitness, nil),
		"meals":    dashboard.Combine(nil, food),
		"summary":  dashboard.Project(fitness, food),
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
