package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("FitTrack", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("FitTrack dashboard server. Query workout and food logs, aggregate dashboard summaries, goal progress, and calorie balance. All data is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetDashboardSummary, Handler: h.getDashboardSummary},
		server.ServerTool{Tool: toolGetCombinedLog, Handler: h.getCombinedLog},
		server.ServerTool{Tool: toolGetGoalProgress, Handler: h.getGoalProgress},
		server.ServerTool{Tool: toolGetActivityBreakdown, Handler: h.getActivityBreakdown},
		server.ServerTool{Tool: toolGetCalorieGap, Handler: h.getCalorieGap},
		server.ServerTool{Tool: toolGetDataStats, Handler: h.getDataStats},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resDailySummary, Handler: h.dailySummary},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resDailySummary = mcp.NewResource(
	"fittrack://daily_summary",
	"Daily Summary",
	mcp.WithResourceDescription("Today's workouts, meals, and calorie balance"),
	mcp.WithMIMEType("application/json"),
)
