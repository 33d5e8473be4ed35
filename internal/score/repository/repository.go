// Package repository provides data access layer for user score records.
package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/footypool/prediction-pool/internal/score/model"
)

// Repository defines the interface for user score data access operations.
type Repository interface {
	// Upsert writes a score row, replacing any previous row for the
	// same (user, week) pair.
	Upsert(ctx context.Context, score *model.UserScore) error

	// ListByWeek returns a week's score rows ordered by score then
	// correct_predictions, both descending.
	ListByWeek(ctx context.Context, weekID string) ([]model.UserScore, error)

	// ListAll returns every score row across all weeks.
	ListAll(ctx context.Context) ([]model.UserScore, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new score repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Upsert writes a score row, replacing any previous one.
func (r *repository) Upsert(ctx context.Context, score *model.UserScore) error {
	r.logger.Debugw("Upsert called",
		"user_id", score.UserID, "week_id", score.WeekID, "score", score.Score)

	if score.ScoreID == "" {
		score.ScoreID = uuid.NewString()
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "week_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"correct_predictions", "total_predictions", "score", "updated_at",
			}),
		}).
		Create(score).Error

	if err != nil {
		r.logger.Errorw("Upsert database error",
			"user_id", score.UserID, "week_id", score.WeekID, "error", err)
		return err
	}

	return nil
}

// ListByWeek returns a week's score rows in leaderboard order.
func (r *repository) ListByWeek(ctx context.Context, weekID string) ([]model.UserScore, error) {
	r.logger.Debugw("ListByWeek called", "week_id", weekID)

	var scores []model.UserScore
	err := r.db.WithContext(ctx).
		Where("week_id = ?", weekID).
		Order("score DESC, correct_predictions DESC").
		Find(&scores).Error

	if err != nil {
		r.logger.Errorw("ListByWeek database error", "week_id", weekID, "error", err)
		return nil, err
	}

	if scores == nil {
		scores = []model.UserScore{}
	}

	return scores, nil
}

// ListAll returns every score row across all weeks.
func (r *repository) ListAll(ctx context.Context) ([]model.UserScore, error) {
	r.logger.Debugw("ListAll called")

	var scores []model.UserScore
	if err := r.db.WithContext(ctx).Find(&scores).Error; err != nil {
		r.logger.Errorw("ListAll database error", "error", err)
		return nil, err
	}

	if scores == nil {
		scores = []model.UserScore{}
	}

	return scores, nil
}
