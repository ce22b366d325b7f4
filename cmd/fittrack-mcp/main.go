package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/fittrack/fittrack/internal/config"
	fmcp "github.com/fittrack/fittrack/internal/mcp"
	"github.com/fittrack/fittrack/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	remote := flag.String("remote", "", "base URL of a running FitTrack server; uses its REST API instead of a local database")
	flag.Parse()

	// Logs go to stderr: stdout carries the MCP stdio transport.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds fmcp.DataSource

	if *remote != "" {
		ds = fmcp.NewHTTPClient(*remote)
		log.Info("MCP server starting", "mode", "remote", "base_url", *remote)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}

		ctx := context.Background()
		db, err := storage.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		userID, err := db.GetOrCreateUser(ctx, "local", "Local User")
		if err != nil {
			log.Error("failed to resolve user", "error", err)
			os.Exit(1)
		}

		ds = db.RecordsFor(userID)
		log.Info("MCP server starting", "mode", "local")
	}

	s := fmcp.New(ds, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}
