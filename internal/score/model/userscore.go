// Package model defines the per-week score record.
package model

import (
	"time"

	"gorm.io/gorm"
)

// UserScore is one user's scoring summary for one closed week.
// CorrectPredictions counts exact outcome matches; TotalPredictions
// counts the user's predictions on matches with an official result.
type UserScore struct {
	ScoreID            string    `gorm:"column:score_id;type:varchar(36);primaryKey" json:"score_id"`
	UserID             string    `gorm:"column:user_id;type:varchar(36);not null;uniqueIndex:idx_user_scores_user_week" json:"user_id"`
	WeekID             string    `gorm:"column:week_id;type:varchar(36);not null;uniqueIndex:idx_user_scores_user_week" json:"week_id"`
	CorrectPredictions int       `gorm:"column:correct_predictions;not null;default:0" json:"correct_predictions"`
	TotalPredictions   int       `gorm:"column:total_predictions;not null;default:0" json:"total_predictions"`
	Score              int       `gorm:"column:score;not null;default:0" json:"score"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// TableName returns the table name for the UserScore model.
func (UserScore) TableName() string {
	return "user_scores"
}

// BeforeUpdate is a GORM hook to update the updated_at timestamp.
func (s *UserScore) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return nil
}
