// Package model defines prediction entities and request/response DTOs.
package model

import (
	"time"

	weekmodel "github.com/footypool/prediction-pool/internal/week/model"
	"gorm.io/gorm"
)

// Prediction is a user's forecast for a single match. One row per
// (user, match) pair; resubmitting replaces the stored outcome.
type Prediction struct {
	PredictionID     string            `gorm:"column:prediction_id;type:varchar(36);primaryKey" json:"prediction_id"`
	UserID           string            `gorm:"column:user_id;type:varchar(36);not null;uniqueIndex:idx_predictions_user_match" json:"user_id"`
	MatchID          string            `gorm:"column:match_id;type:varchar(36);not null;uniqueIndex:idx_predictions_user_match" json:"match_id"`
	PredictedOutcome weekmodel.Outcome `gorm:"column:predicted_outcome;type:smallint;not null" json:"predicted_outcome"`
	CreatedAt        time.Time         `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt        time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// TableName returns the table name for the Prediction model.
func (Prediction) TableName() string {
	return "predictions"
}

// BeforeUpdate is a GORM hook to update the updated_at timestamp.
func (p *Prediction) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}
