package server

import (
	"log/slog"
	"net/http"

	"github.com/fittrack/fittrack/internal/dashboard"
	"github.com/fittrack/fittrack/internal/ranking"
	"github.com/fittrack/fittrack/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db      *storage.DB
	loader  *dashboard.Loader
	ranking *ranking.Client
	log     *slog.Logger
	apiKey  string
	userID  int
	router  chi.Router
}

// New creates a new Server with all routes configured. rankingClient may
// be nil when no ranking service is configured.
func New(db *storage.DB, loader *dashboard.Loader, rankingClient *ranking.Client, apiKey string, userID int, log *slog.Logger) *Server {
	s := &Server{
		db:      db,
		loader:  loader,
		ranking: rankingClient,
		log:     log,
		apiKey:  apiKey,
		userID:  userID,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Write endpoints (API key required)
	s.router.Route("/api/v1/entries", func(r chi.Router) {
		r.With(APIKeyAuth(s.apiKey)).Post("/fitness", s.handleCreateFitness)
		r.With(APIKeyAuth(s.apiKey)).Post("/food", s.handleCreateFood)
		r.Get("/fitness", s.handleListFitness)
		r.Get("/food", s.handleListFood)
		r.Delete("/{kind}/{id}", s.handleDeleteEntry)
	})

	// Read endpoints (no auth — tsnet handles access)
	s.router.Get("/api/v1/dashboard", s.handleDashboard)
	s.router.Get("/api/v1/log", s.handleCombinedLog)
	s.router.Get("/api/v1/stats", s.handleStats)
	s.router.Get("/api/v1/imports", s.handleImportLogs)
	s.router.Get("/api/v1/ranking", s.handleRanking)
}
