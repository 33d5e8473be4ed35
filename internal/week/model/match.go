package model

import "time"

// Match is one fixture within a week. The official result stays NULL until
// the administrator records it.
// Matches the matches table schema.
type Match struct {
	MatchID        string    `gorm:"primaryKey;column:match_id;type:varchar(36)"                          json:"match_id"`
	WeekID         string    `gorm:"column:week_id;type:varchar(36);not null;uniqueIndex:idx_matches_week_number" json:"week_id"`
	MatchNumber    int       `gorm:"column:match_number;not null;uniqueIndex:idx_matches_week_number"     json:"match_number"`
	HomeTeamName   string    `gorm:"column:home_team_name;type:varchar(255);not null"                     json:"home_team_name"`
	AwayTeamName   string    `gorm:"column:away_team_name;type:varchar(255);not null"                     json:"away_team_name"`
	MatchDate      time.Time `gorm:"column:match_date;not null"                                           json:"match_date"`
	Location       *string   `gorm:"column:location;type:varchar(255)"                                    json:"location,omitempty"`
	OfficialResult *Outcome  `gorm:"column:official_result;type:smallint"                                 json:"official_result"`
	MatchScore     *string   `gorm:"column:match_score;type:varchar(32)"                                  json:"match_score,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"                                           json:"-"`
}

// TableName specifies the table name for GORM.
func (Match) TableName() string {
	return "matches"
}

// Decided reports whether the official result has been recorded.
func (m Match) Decided() bool {
	return m.OfficialResult != nil
}
