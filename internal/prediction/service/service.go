// Package service implements business logic for prediction submission.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/footypool/prediction-pool/internal/prediction/model"
	"github.com/footypool/prediction-pool/internal/prediction/repository"
	usermodel "github.com/footypool/prediction-pool/internal/user/model"
	userrepository "github.com/footypool/prediction-pool/internal/user/repository"
	weekmodel "github.com/footypool/prediction-pool/internal/week/model"
	weekrepository "github.com/footypool/prediction-pool/internal/week/repository"
)

// Service defines the interface for prediction operations.
type Service interface {
	// Submit records a forecast for one match. The caller is identified
	// by access key; the match's week must be open for predictions.
	Submit(ctx context.Context, req *model.SubmitPredictionRequest) (*model.SubmitPredictionResponse, error)

	// ListByUser returns the caller's predictions for one week.
	ListByUser(ctx context.Context, accessKey, weekID string) (*model.ListByUserResponse, error)
}

type service struct {
	predictions repository.Repository
	users       userrepository.Repository
	weeks       weekrepository.Repository
	logger      *zap.SugaredLogger
}

// New creates a new prediction service instance.
func New(
	predictions repository.Repository,
	users userrepository.Repository,
	weeks weekrepository.Repository,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		predictions: predictions,
		users:       users,
		weeks:       weeks,
		logger:      logger,
	}
}

func (s *service) resolveUser(ctx context.Context, accessKey string) (*usermodel.User, error) {
	if accessKey == "" {
		return nil, model.ErrInvalidAccessKey
	}

	user, err := s.users.GetByAccessKey(ctx, accessKey)
	if err != nil {
		if errors.Is(err, usermodel.ErrUserNotFound) {
			return nil, model.ErrInvalidAccessKey
		}
		return nil, err
	}

	return user, nil
}

// Submit records a forecast for one match.
func (s *service) Submit(ctx context.Context, req *model.SubmitPredictionRequest) (*model.SubmitPredictionResponse, error) {
	s.logger.Infow("Submit called", "match_id", req.MatchID)

	if req.PredictedOutcome == nil || !req.PredictedOutcome.Valid() {
		return nil, model.ErrInvalidOutcome
	}

	user, err := s.resolveUser(ctx, req.AccessKey)
	if err != nil {
		s.logger.Debugw("Submit rejected", "match_id", req.MatchID, "error", err)
		return nil, err
	}

	match, err := s.weeks.GetMatchByID(ctx, req.MatchID)
	if err != nil {
		return nil, err
	}

	week, err := s.weeks.GetWeekByID(ctx, match.WeekID)
	if err != nil {
		return nil, err
	}

	if week.Status != weekmodel.StatusOpenForPredictions {
		s.logger.Debugw("Submit rejected for closed week",
			"match_id", req.MatchID, "week_id", week.WeekID, "status", week.Status)
		return nil, model.ErrWeekNotOpen
	}

	prediction, err := s.predictions.Upsert(ctx, user.UserID, req.MatchID, *req.PredictedOutcome)
	if err != nil {
		s.logger.Errorw("Submit failed", "match_id", req.MatchID, "error", err)
		return nil, err
	}

	s.logger.Infow("Submit completed", "prediction_id", prediction.PredictionID)
	return &model.SubmitPredictionResponse{Prediction: prediction}, nil
}

// ListByUser returns the caller's predictions for one week.
func (s *service) ListByUser(ctx context.Context, accessKey, weekID string) (*model.ListByUserResponse, error) {
	s.logger.Debugw("ListByUser called", "week_id", weekID)

	if weekID == "" {
		return nil, weekmodel.ErrInvalidWeekID
	}

	user, err := s.resolveUser(ctx, accessKey)
	if err != nil {
		return nil, err
	}

	if _, err := s.weeks.GetWeekByID(ctx, weekID); err != nil {
		return nil, err
	}

	matches, err := s.weeks.ListMatchesByWeek(ctx, weekID)
	if err != nil {
		return nil, err
	}

	matchIDs := make([]string, 0, len(matches))
	for _, m := range matches {
		matchIDs = append(matchIDs, m.MatchID)
	}

	predictions, err := s.predictions.ListByUserAndMatches(ctx, user.UserID, matchIDs)
	if err != nil {
		return nil, err
	}

	return &model.ListByUserResponse{Predictions: predictions, Total: len(predictions)}, nil
}
