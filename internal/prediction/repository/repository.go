// Package repository provides data access layer for prediction entities.
package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/footypool/prediction-pool/internal/prediction/model"
	weekmodel "github.com/footypool/prediction-pool/internal/week/model"
)

// Repository defines the interface for prediction data access operations.
type Repository interface {
	// Upsert stores a prediction, replacing any previous one for the
	// same (user, match) pair.
	Upsert(ctx context.Context, userID, matchID string, outcome weekmodel.Outcome) (*model.Prediction, error)

	// ListByUserAndMatches returns a user's predictions restricted to
	// the given match IDs.
	ListByUserAndMatches(ctx context.Context, userID string, matchIDs []string) ([]model.Prediction, error)

	// ListByMatches returns all predictions for the given match IDs,
	// across all users.
	ListByMatches(ctx context.Context, matchIDs []string) ([]model.Prediction, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new prediction repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Upsert stores a prediction, replacing any previous one.
func (r *repository) Upsert(
	ctx context.Context,
	userID, matchID string,
	outcome weekmodel.Outcome,
) (*model.Prediction, error) {
	r.logger.Debugw("Upsert called", "user_id", userID, "match_id", matchID, "outcome", outcome)

	prediction := model.Prediction{
		PredictionID:     uuid.NewString(),
		UserID:           userID,
		MatchID:          matchID,
		PredictedOutcome: outcome,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "match_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"predicted_outcome", "updated_at"}),
		}).
		Create(&prediction).Error

	if err != nil {
		r.logger.Errorw("Upsert database error", "user_id", userID, "match_id", matchID, "error", err)
		return nil, err
	}

	var stored model.Prediction
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND match_id = ?", userID, matchID).
		First(&stored).Error
	if err != nil {
		r.logger.Errorw("Upsert failed to fetch stored prediction", "user_id", userID, "error", err)
		return nil, err
	}

	r.logger.Debugw("Upsert completed", "prediction_id", stored.PredictionID)
	return &stored, nil
}

// ListByUserAndMatches returns a user's predictions for the given matches.
func (r *repository) ListByUserAndMatches(
	ctx context.Context,
	userID string,
	matchIDs []string,
) ([]model.Prediction, error) {
	r.logger.Debugw("ListByUserAndMatches called", "user_id", userID, "matches", len(matchIDs))

	if len(matchIDs) == 0 {
		return []model.Prediction{}, nil
	}

	var predictions []model.Prediction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND match_id IN ?", userID, matchIDs).
		Find(&predictions).Error

	if err != nil {
		r.logger.Errorw("ListByUserAndMatches database error", "user_id", userID, "error", err)
		return nil, err
	}

	if predictions == nil {
		predictions = []model.Prediction{}
	}

	return predictions, nil
}

// ListByMatches returns all predictions for the given matches.
func (r *repository) ListByMatches(ctx context.Context, matchIDs []string) ([]model.Prediction, error) {
	r.logger.Debugw("ListByMatches called", "matches", len(matchIDs))

	if len(matchIDs) == 0 {
		return []model.Prediction{}, nil
	}

	var predictions []model.Prediction
	err := r.db.WithContext(ctx).
		Where("match_id IN ?", matchIDs).
		Find(&predictions).Error

	if err != nil {
		r.logger.Errorw("ListByMatches database error", "error", err)
		return nil, err
	}

	if predictions == nil {
		predictions = []model.Prediction{}
	}

	return predictions, nil
}
