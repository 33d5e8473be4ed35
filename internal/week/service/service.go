// Package service implements business logic for week lifecycle and matches.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	predictionrepository "github.com/footypool/prediction-pool/internal/prediction/repository"
	"github.com/footypool/prediction-pool/internal/score/engine"
	scorerepository "github.com/footypool/prediction-pool/internal/score/repository"
	userrepository "github.com/footypool/prediction-pool/internal/user/repository"
	"github.com/footypool/prediction-pool/internal/week/model"
	"github.com/footypool/prediction-pool/internal/week/repository"
)

// Service defines the interface for week lifecycle and match operations.
type Service interface {
	// CreateWeek registers a new pending week.
	CreateWeek(ctx context.Context, req *model.CreateWeekRequest) (*model.Week, error)

	// ListWeeks returns weeks ordered by week number, optionally
	// filtered by status.
	ListWeeks(ctx context.Context, status string) ([]model.Week, error)

	// GetMatches returns a week together with its matches.
	GetMatches(ctx context.Context, weekID string) (*model.Week, []model.Match, error)

	// OpenWeek transitions a week to open_for_predictions.
	OpenWeek(ctx context.Context, weekID string) (*model.Week, error)

	// CloseWeek transitions a week to closed and recomputes scores for
	// all active users in one transaction.
	CloseWeek(ctx context.Context, weekID string) (*model.CloseWeekResponse, error)

	// CreateMatch adds a match to an existing week.
	CreateMatch(ctx context.Context, req *model.CreateMatchRequest) (*model.Match, error)

	// SetMatchResult records or clears a match's official outcome.
	SetMatchResult(ctx context.Context, req *model.SetMatchResultRequest) (*model.Match, error)

	// SetMatchScore records a match's display score string.
	SetMatchScore(ctx context.Context, req *model.SetMatchScoreRequest) (*model.Match, error)
}

type service struct {
	db         *gorm.DB
	repository repository.Repository
	logger     *zap.SugaredLogger
}

// New creates a new week service instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		db:         db,
		repository: repository.New(db, logger),
		logger:     logger,
	}
}

// CreateWeek registers a new pending week.
func (s *service) CreateWeek(ctx context.Context, req *model.CreateWeekRequest) (*model.Week, error) {
	s.logger.Infow("CreateWeek called", "week_number", req.WeekNumber, "year", req.Year)

	if req.WeekNumber <= 0 || req.Year <= 0 {
		return nil, model.ErrInvalidWeekNumber
	}

	week, err := s.repository.CreateWeek(ctx, req.WeekNumber, req.Year)
	if err != nil {
		s.logger.Errorw("CreateWeek failed", "week_number", req.WeekNumber, "error", err)
		return nil, err
	}

	s.logger.Infow("CreateWeek completed", "week_id", week.WeekID)
	return week, nil
}

// ListWeeks returns weeks, optionally filtered by status.
func (s *service) ListWeeks(ctx context.Context, status string) ([]model.Week, error) {
	s.logger.Debugw("ListWeeks called", "status", status)

	if status != "" && !model.ValidStatus(status) {
		return nil, model.ErrInvalidStatus
	}

	return s.repository.ListWeeks(ctx, status)
}

// GetMatches returns a week together with its matches.
func (s *service) GetMatches(ctx context.Context, weekID string) (*model.Week, []model.Match, error) {
	s.logger.Debugw("GetMatches called", "week_id", weekID)

	if weekID == "" {
		return nil, nil, model.ErrInvalidWeekID
	}

	week, err := s.repository.GetWeekByID(ctx, weekID)
	if err != nil {
		return nil, nil, err
	}

	matches, err := s.repository.ListMatchesByWeek(ctx, weekID)
	if err != nil {
		return nil, nil, err
	}

	return week, matches, nil
}

// OpenWeek transitions a week to open_for_predictions. Reopening a
// closed week clears its closed timestamp and leaves predictions and
// prior scores untouched.
func (s *service) OpenWeek(ctx context.Context, weekID string) (*model.Week, error) {
	s.logger.Infow("OpenWeek called", "week_id", weekID)

	if weekID == "" {
		return nil, model.ErrInvalidWeekID
	}

	week, err := s.repository.GetWeekByID(ctx, weekID)
	if err != nil {
		return nil, err
	}

	if !model.CanTransition(week.Status, model.StatusOpenForPredictions) {
		s.logger.Debugw("OpenWeek invalid transition", "week_id", weekID, "from", week.Status)
		return nil, model.ErrInvalidTransition
	}

	updated, err := s.repository.UpdateWeekStatus(ctx, weekID, model.StatusOpenForPredictions, nil)
	if err != nil {
		s.logger.Errorw("OpenWeek failed", "week_id", weekID, "error", err)
		return nil, err
	}

	s.logger.Infow("OpenWeek completed", "week_id", weekID)
	return updated, nil
}

// CloseWeek transitions a week to closed and recomputes every active
// user's score for that week. The status change and all score writes
// happen in a single transaction; a failed write leaves the week open.
// Closing an already-closed week re-runs scoring from current data.
func (s *service) CloseWeek(ctx context.Context, weekID string) (*model.CloseWeekResponse, error) {
	s.logger.Infow("CloseWeek called", "week_id", weekID)

	if weekID == "" {
		return nil, model.ErrInvalidWeekID
	}

	var response *model.CloseWeekResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		weekRepo := repository.New(tx, s.logger)
		userRepo := userrepository.New(tx, s.logger)
		predictionRepo := predictionrepository.New(tx, s.logger)
		scoreRepo := scorerepository.New(tx, s.logger)

		week, err := weekRepo.GetWeekByID(ctx, weekID)
		if err != nil {
			return err
		}

		if !model.CanTransition(week.Status, model.StatusClosed) {
			s.logger.Debugw("CloseWeek invalid transition", "week_id", weekID, "from", week.Status)
			return model.ErrInvalidTransition
		}

		matches, err := weekRepo.ListMatchesByWeek(ctx, weekID)
		if err != nil {
			return err
		}

		users, err := userRepo.ListActive(ctx)
		if err != nil {
			return err
		}

		matchIDs := make([]string, 0, len(matches))
		for _, m := range matches {
			matchIDs = append(matchIDs, m.MatchID)
		}

		predictions, err := predictionRepo.ListByMatches(ctx, matchIDs)
		if err != nil {
			return err
		}

		results := engine.Compute(matches, users, predictions)
		scores := engine.ToUserScores(weekID, results)
		for i := range scores {
			if err := scoreRepo.Upsert(ctx, &scores[i]); err != nil {
				return err
			}
		}

		closedAt := time.Now().UTC()
		updated, err := weekRepo.UpdateWeekStatus(ctx, weekID, model.StatusClosed, &closedAt)
		if err != nil {
			return err
		}

		response = &model.CloseWeekResponse{
			Week:        *updated,
			UsersScored: len(scores),
		}
		return nil
	})

	if err != nil {
		s.logger.Errorw("CloseWeek failed", "week_id", weekID, "error", err)
		return nil, err
	}

	s.logger.Infow("CloseWeek completed", "week_id", weekID, "users_scored", response.UsersScored)
	return response, nil
}

// CreateMatch adds a match to an existing week.
func (s *service) CreateMatch(ctx context.Context, req *model.CreateMatchRequest) (*model.Match, error) {
	s.logger.Infow("CreateMatch called", "week_id", req.WeekID, "match_number", req.MatchNumber)

	if req.MatchNumber <= 0 {
		return nil, model.ErrInvalidMatchNumber
	}

	if _, err := s.repository.GetWeekByID(ctx, req.WeekID); err != nil {
		return nil, err
	}

	match, err := s.repository.CreateMatch(ctx, req)
	if err != nil {
		s.logger.Errorw("CreateMatch failed", "week_id", req.WeekID, "error", err)
		return nil, err
	}

	s.logger.Infow("CreateMatch completed", "match_id", match.MatchID)
	return match, nil
}

// SetMatchResult records or clears a match's official outcome.
func (s *service) SetMatchResult(ctx context.Context, req *model.SetMatchResultRequest) (*model.Match, error) {
	s.logger.Infow("SetMatchResult called", "match_id", req.MatchID, "result", req.OfficialResult)

	if req.MatchID == "" {
		return nil, model.ErrMatchNotFound
	}

	if req.OfficialResult != nil && !req.OfficialResult.Valid() {
		return nil, model.ErrInvalidOutcome
	}

	match, err := s.repository.UpdateMatchResult(ctx, req.MatchID, req.OfficialResult)
	if err != nil {
		s.logger.Errorw("SetMatchResult failed", "match_id", req.MatchID, "error", err)
		return nil, err
	}

	return match, nil
}

// SetMatchScore records a match's display score string.
func (s *service) SetMatchScore(ctx context.Context, req *model.SetMatchScoreRequest) (*model.Match, error) {
	s.logger.Infow("SetMatchScore called", "match_id", req.MatchID, "score", req.MatchScore)

	if req.MatchID == "" {
		return nil, model.ErrMatchNotFound
	}

	match, err := s.repository.UpdateMatchScore(ctx, req.MatchID, req.MatchScore)
	if err != nil {
		s.logger.Errorw("SetMatchScore failed", "match_id", req.MatchID, "error", err)
		return nil, err
	}

	return match, nil
}
