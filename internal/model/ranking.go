package model

// RankingRow is one row of the external leaderboard feed. The server
// never computes rankings itself; it only re-parameterizes requests,
// truncates to top-N, and serializes rows for export.
type RankingRow struct {
	Rank                int     `json:"rank"`
	Username            string  `json:"username"`
	TotalCaloriesBurned float64 `json:"total_calories_burned"`
	TotalDuration       float64 `json:"total_duration"`
	ActivityCount       int     `json:"activity_count"`
	IsCurrentUser       bool    `json:"is_current_user"`
}
