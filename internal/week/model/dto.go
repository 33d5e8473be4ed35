package model

import "time"

// CreateWeekRequest represents the admin request to create a week.
type CreateWeekRequest struct {
	WeekNumber int `json:"week_number" binding:"required"`
	Year       int `json:"year"        binding:"required"`
}

// WeekResponse wraps a single week.
type WeekResponse struct {
	Week Week `json:"week"`
}

// ListWeeksResponse represents the week listing.
type ListWeeksResponse struct {
	Weeks []Week `json:"weeks"`
	Total int    `json:"total"`
}

// OpenWeekRequest represents the admin request to open a week for predictions.
type OpenWeekRequest struct {
	WeekID string `json:"week_id" binding:"required"`
}

// CloseWeekRequest represents the admin request to close a week and score it.
type CloseWeekRequest struct {
	WeekID string `json:"week_id" binding:"required"`
}

// CloseWeekResponse reports the closed week and how many participants were
// scored in the same transaction.
type CloseWeekResponse struct {
	Week        Week `json:"week"`
	UsersScored int  `json:"users_scored"`
}

// CreateMatchRequest represents the admin request to add a match to a week.
type CreateMatchRequest struct {
	WeekID       string    `json:"week_id"        binding:"required"`
	MatchNumber  int       `json:"match_number"   binding:"required"`
	HomeTeamName string    `json:"home_team_name" binding:"required"`
	AwayTeamName string    `json:"away_team_name" binding:"required"`
	MatchDate    time.Time `json:"match_date"     binding:"required"`
	Location     *string   `json:"location"`
}

// MatchResponse wraps a single match.
type MatchResponse struct {
	Match Match `json:"match"`
}

// ListMatchesResponse represents the matches of one week.
type ListMatchesResponse struct {
	WeekID  string  `json:"week_id"`
	Matches []Match `json:"matches"`
	Total   int     `json:"total"`
}

// SetMatchResultRequest records (or clears) a match's official result.
// A nil result resets the match to undecided.
type SetMatchResultRequest struct {
	MatchID        string   `json:"match_id" binding:"required"`
	OfficialResult *Outcome `json:"official_result"`
}

// SetMatchScoreRequest records the free-text score string of a match.
type SetMatchScoreRequest struct {
	MatchID    string `json:"match_id"    binding:"required"`
	MatchScore string `json:"match_score" binding:"required"`
}
