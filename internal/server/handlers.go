package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fittrack/fittrack/internal/dashboard"
	"github.com/fittrack/fittrack/internal/model"
	"github.com/fittrack/fittrack/internal/ranking"
	"github.com/fittrack/fittrack/internal/storage"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	rng, err := parseDateRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	snap, err := s.loader.Refresh(r.Context())
	if err != nil {
		s.log.Error("dashboard refresh error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, dashboard.BuildReport(snap.Fitness, snap.Food, rng))
}

func (s *Server) handleCombinedLog(w http.ResponseWriter, r *http.Request) {
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid page parameter"})
			return
		}
		page = n
	}

	snap, err := s.loader.Refresh(r.Context())
	if err != nil {
		s.log.Error("log refresh error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	fitness, food := snap.Fitness, snap.Food
	if r.URL.Query().Get("start") != "" || r.URL.Query().Get("end") != "" {
		rng, err := parseDateRange(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		fitness = dashboard.FilterRange(fitness, rng)
		food = dashboard.FilterRange(food, rng)
	}

	entries := dashboard.Combine(fitness, food)
	writeJSON(w, http.StatusOK, map[string]any{
		"page":      page,
		"page_size": dashboard.PageSize,
		"total":     len(entries),
		"entries":   dashboard.Paginate(entries, page, dashboard.PageSize),
	})
}

func (s *Server) handleListFitness(w http.ResponseWriter, r *http.Request) {
	entries, err := s.db.ListFitnessEntries(r.Context(), s.userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []model.FitnessEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleListFood(w http.ResponseWriter, r *http.Request) {
	entries, err := s.db.ListFoodEntries(r.Context(), s.userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []model.FoodEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetDataStats(r.Context(), s.userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleImportLogs(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit parameter"})
			return
		}
		limit = n
	}

	logs, err := s.db.ListImportLogs(r.Context(), s.userID, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if logs == nil {
		logs = []storage.ImportLog{}
	}
	writeJSON(w, http.StatusOK, logs)
}

func (s *Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	if s.ranking == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "ranking service not configured"})
		return
	}

	timeRange := r.URL.Query().Get("range")
	if timeRange == "" {
		timeRange = "week"
	}
	sortBy := r.URL.Query().Get("sort")

	rows, err := s.ranking.Fetch(r.Context(), timeRange, sortBy)
	if err != nil {
		s.log.Error("ranking fetch error", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit parameter"})
			return
		}
		rows = ranking.TopN(rows, limit)
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="ranking.csv"`)
		if err := ranking.WriteCSV(w, rows); err != nil {
			s.log.Error("ranking csv error", "error", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid entry ID"})
		return
	}

	switch chi.URLParam(r, "kind") {
	case "fitness":
		err = s.db.DeleteFitnessEntry(r.Context(), s.userID, id)
	case "food":
		err = s.db.DeleteFoodEntry(r.Context(), s.userID, id)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "kind must be fitness or food"})
		return
	}

	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "entry not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	// Stored data changed; the next dashboard request must refetch.
	s.loader.Invalidate()
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleCreateFitness(w http.ResponseWriter, r *http.Request) {
	var e model.FitnessEntry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := validateDay(e.Date); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if e.ActivityType == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "activity_type required"})
		return
	}

	created, err := s.db.InsertFitnessEntry(r.Context(), s.userID, e)
	if err != nil {
		s.log.Error("insert fitness entry error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	s.loader.Invalidate()
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleCreateFood(w http.ResponseWriter, r *http.Request) {
	var e model.FoodEntry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := validateDay(e.Date); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if e.FoodName == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "food_name required"})
		return
	}

	created, err := s.db.InsertFoodEntry(r.Context(), s.userID, e)
	if err != nil {
		s.log.Error("insert food entry error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	s.loader.Invalidate()
	writeJSON(w, http.StatusCreated, created)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func validateDay(day string) error {
	if day == "" {
		return fmt.Errorf("date required")
	}
	if _, err := time.Parse(model.Day, day); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	return nil
}

// parseDateRange reads start/end date parameters. With neither present
// the range defaults to the last 7 days; a missing end defaults to today.
func parseDateRange(r *http.Request) (model.DateRange, error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" && endStr == "" {
		return dashboard.DefaultRange(time.Now()), nil
	}

	if startStr != "" {
		if _, err := time.Parse(model.Day, startStr); err != nil {
			return model.DateRange{}, fmt.Errorf("start must be YYYY-MM-DD")
		}
	}
	if endStr == "" {
		endStr = time.Now().Format(model.Day)
	} else if _, err := time.Parse(model.Day, endStr); err != nil {
		return model.DateRange{}, fmt.Errorf("end must be YYYY-MM-DD")
	}
	if startStr == "" {
		startStr = dashboard.DefaultRange(time.Now()).Start
	}

	return model.DateRange{Start: startStr, End: endStr}, nil
}
