// Package model defines leaderboard rows and responses.
package model

// WeeklyEntry is one ranked row of a single week's leaderboard.
type WeeklyEntry struct {
	UserID             string `gorm:"column:user_id"             json:"user_id"`
	Name               string `gorm:"column:name"                json:"name"`
	CorrectPredictions int    `gorm:"column:correct_predictions" json:"correct_predictions"`
	TotalPredictions   int    `gorm:"column:total_predictions"   json:"total_predictions"`
	Score              int    `gorm:"column:score"               json:"score"`
}

// ScoreRow is one stored score joined with the user's name, the raw
// material for the overall aggregation.
type ScoreRow struct {
	UserID             string `gorm:"column:user_id"`
	Name               string `gorm:"column:name"`
	WeekID             string `gorm:"column:week_id"`
	CorrectPredictions int    `gorm:"column:correct_predictions"`
	TotalPredictions   int    `gorm:"column:total_predictions"`
	Score              int    `gorm:"column:score"`
}

// OverallEntry is one ranked row of the all-weeks leaderboard.
// AverageAccuracy is a percentage; a user with no considered
// predictions shows 0, not a division error.
type OverallEntry struct {
	UserID           string  `json:"user_id"`
	Name             string  `json:"name"`
	TotalCorrect     int     `json:"total_correct"`
	TotalPredictions int     `json:"total_predictions"`
	TotalScore       int     `json:"total_score"`
	AverageAccuracy  float64 `json:"average_accuracy"`
	WeeksPlayed      int     `json:"weeks_played"`
}

// WeeklyResponse represents one week's leaderboard.
type WeeklyResponse struct {
	WeekID  string        `json:"week_id"`
	Entries []WeeklyEntry `json:"entries"`
	Total   int           `json:"total"`
}

// OverallResponse represents the all-weeks leaderboard.
type OverallResponse struct {
	Entries []OverallEntry `json:"entries"`
	Total   int            `json:"total"`
}
