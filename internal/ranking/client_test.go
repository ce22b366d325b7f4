package ranking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fittrack/fittrack/internal/model"
)

// TestFetch verifies query parameters are forwarded and the response decoded.
func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/ranking" {
			t.Errorf("path = %q, want /api/v1/ranking", r.URL.Path)
		}
		if got := r.URL.Query().Get("range"); got != "week" {
			t.Errorf("range = %q, want week", got)
		}
		if got := r.URL.Query().Get("sort"); got != "calories" {
			t.Errorf("sort = %q, want calories", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"rank":1,"username":"ada","total_calories_burned":1200,"total_duration":300,"activity_count":8,"is_current_user":false},
			{"rank":2,"username":"you","total_calories_burned":900,"total_duration":250,"activity_count":6,"is_current_user":true}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	rows, err := c.Fetch(context.Background(), "week", "calories")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Username != "ada" || rows[0].Rank != 1 {
		t.Errorf("first row = %+v", rows[0])
	}
	if !rows[1].IsCurrentUser {
		t.Error("second row should be the current user")
	}
}

// TestFetchUpstreamError verifies non-200 responses surface as errors.
func TestFetchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Fetch(context.Background(), "week", ""); err == nil {
		t.Fatal("expected error for 502 response")
	}
}

func TestTopN(t *testing.T) {
	rows := []model.RankingRow{
		{Rank: 1}, {Rank: 2}, {Rank: 3},
	}
	if got := TopN(rows, 2); len(got) != 2 {
		t.Errorf("TopN(2) = %d rows, want 2", len(got))
	}
	if got := TopN(rows, 0); len(got) != 3 {
		t.Errorf("TopN(0) = %d rows, want all 3", len(got))
	}
	if got := TopN(rows, 10); len(got) != 3 {
		t.Errorf("TopN(10) = %d rows, want all 3", len(got))
	}
}

func TestWriteCSV(t *testing.T) {
	rows := []model.RankingRow{
		{Rank: 1, Username: "ada", TotalCaloriesBurned: 1200.5, TotalDuration: 300, ActivityCount: 8},
	}
	var sb strings.Builder
	if err := WriteCSV(&sb, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	want := "rank,username,total_calories_burned,total_duration,activity_count\n1,ada,1200.5,300,8\n"
	if sb.String() != want {
		t.Errorf("csv = %q, want %q", sb.String(), want)
	}
}
