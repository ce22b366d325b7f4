// Package ranking fetches community leaderboard data from the upstream
// ranking service and renders it for the API and CSV export.
package ranking

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fittrack/fittrack/internal/model"
)

// Client calls the upstream ranking REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client targeting the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch returns the leaderboard for the given time range ("week", "month",
// "all") sorted by the given column ("calories", "duration", "count").
func (c *Client) Fetch(ctx context.Context, timeRange, sortBy string) ([]model.RankingRow, error) {
	params := url.Values{}
	if timeRange != "" {
		params.Set("range", timeRange)
	}
	if sortBy != "" {
		params.Set("sort", sortBy)
	}

	u := c.baseURL + "/api/v1/ranking"
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("ranking: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ranking: fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ranking: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ranking: upstream returned %d: %s", resp.StatusCode, body)
	}

	var rows []model.RankingRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("ranking: decode: %w", err)
	}
	return rows, nil
}

// TopN returns the first n rows, or all rows when n <= 0 or n exceeds the
// list length.
func TopN(rows []model.RankingRow, n int) []model.RankingRow {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}

// WriteCSV writes rows to w as CSV with a header line.
func WriteCSV(w io.Writer, rows []model.RankingRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rank", "username", "total_calories_burned", "total_duration", "activity_count"}); err != nil {
		return fmt.Errorf("ranking: write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Rank),
			r.Username,
			strconv.FormatFloat(r.TotalCaloriesBurned, 'f', -1, 64),
			strconv.FormatFloat(r.TotalDuration, 'f', -1, 64),
			strconv.Itoa(r.ActivityCount),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("ranking: write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
