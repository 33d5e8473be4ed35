package model

import (
	"time"

	"gorm.io/gorm"
)

// Week statuses. Predictions are accepted only while a week is open.
const (
	StatusPending            = "pending"
	StatusOpenForPredictions = "open_for_predictions"
	StatusClosed             = "closed"
)

// Week groups the matches of one round and carries the prediction lifecycle.
// Matches the weeks table schema.
type Week struct {
	WeekID     string     `gorm:"primaryKey;column:week_id;type:varchar(36)"                         json:"week_id"`
	WeekNumber int        `gorm:"column:week_number;not null;uniqueIndex:idx_weeks_number_year"      json:"week_number"`
	Year       int        `gorm:"column:year;not null;uniqueIndex:idx_weeks_number_year"             json:"year"`
	Status     string     `gorm:"column:status;type:varchar(32);not null;default:pending"            json:"status"`
	ClosedAt   *time.Time `gorm:"column:closed_at"                                                   json:"closed_at,omitempty"`
	CreatedAt  time.Time  `gorm:"column:created_at;not null"                                         json:"-"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;not null"                                         json:"-"`
}

// TableName specifies the table name for GORM.
func (Week) TableName() string {
	return "weeks"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (w *Week) BeforeUpdate(tx *gorm.DB) error {
	w.UpdatedAt = time.Now()
	return nil
}

// ValidStatus reports whether s is a defined week status.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusOpenForPredictions || s == StatusClosed
}

// CanTransition reports whether a week may move from one status to another.
//
// pending -> open_for_predictions -> closed, with reopening allowed
// (closed -> open_for_predictions). Closing an already-closed week is
// permitted to re-run scoring. pending -> closed is not supported.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusOpenForPredictions
	case StatusOpenForPredictions:
		return to == StatusClosed
	case StatusClosed:
		return to == StatusOpenForPredictions || to == StatusClosed
	default:
		return false
	}
}
