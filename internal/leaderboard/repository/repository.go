// Package repository provides read queries for the leaderboards.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/footypool/prediction-pool/internal/leaderboard/model"
)

// Repository defines the read-side interface for leaderboard queries.
type Repository interface {
	// ListWeekly returns one week's ranked rows, score descending with
	// correct_predictions breaking ties.
	ListWeekly(ctx context.Context, weekID string) ([]model.WeeklyEntry, error)

	// ListAllScores returns every stored score joined with the user's
	// name, unordered.
	ListAllScores(ctx context.Context) ([]model.ScoreRow, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new leaderboard repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// ListWeekly returns one week's ranked rows.
func (r *repository) ListWeekly(ctx context.Context, weekID string) ([]model.WeeklyEntry, error) {
	r.logger.Debugw("ListWeekly called", "week_id", weekID)

	var entries []model.WeeklyEntry
	err := r.db.WithContext(ctx).
		Table("user_scores").
		Select("user_scores.user_id, users.name, user_scores.correct_predictions, "+
			"user_scores.total_predictions, user_scores.score").
		Joins("JOIN users ON users.user_id = user_scores.user_id").
		Where("user_scores.week_id = ?", weekID).
		Order("user_scores.score DESC, user_scores.correct_predictions DESC").
		Scan(&entries).Error

	if err != nil {
		r.logger.Errorw("ListWeekly database error", "week_id", weekID, "error", err)
		return nil, err
	}

	if entries == nil {
		entries = []model.WeeklyEntry{}
	}

	r.logger.Debugw("ListWeekly completed", "week_id", weekID, "count", len(entries))
	return entries, nil
}

// ListAllScores returns every stored score joined with the user's name.
func (r *repository) ListAllScores(ctx context.Context) ([]model.ScoreRow, error) {
	r.logger.Debugw("ListAllScores called")

	var rows []model.ScoreRow
	err := r.db.WithContext(ctx).
		Table("user_scores").
		Select("user_scores.user_id, users.name, user_scores.week_id, "+
			"user_scores.correct_predictions, user_scores.total_predictions, user_scores.score").
		Joins("JOIN users ON users.user_id = user_scores.user_id").
		Scan(&rows).Error

	if err != nil {
		r.logger.Errorw("ListAllScores database error", "error", err)
		return nil, err
	}

	if rows == nil {
		rows = []model.ScoreRow{}
	}

	return rows, nil
}
