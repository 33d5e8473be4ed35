// Package repository provides data access layer for week and match entities.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/footypool/prediction-pool/internal/week/model"
)

// Repository defines the interface for week and match data access operations.
type Repository interface {
	// CreateWeek inserts a new pending week.
	CreateWeek(ctx context.Context, weekNumber, year int) (*model.Week, error)

	// GetWeekByID finds a week by week_id.
	GetWeekByID(ctx context.Context, weekID string) (*model.Week, error)

	// ListWeeks returns all weeks ordered by week_number, optionally
	// filtered by status (empty string means all).
	ListWeeks(ctx context.Context, status string) ([]model.Week, error)

	// UpdateWeekStatus sets a week's status and closed timestamp.
	UpdateWeekStatus(ctx context.Context, weekID, status string, closedAt *time.Time) (*model.Week, error)

	// CreateMatch inserts a new match owned by a week.
	CreateMatch(ctx context.Context, req *model.CreateMatchRequest) (*model.Match, error)

	// GetMatchByID finds a match by match_id.
	GetMatchByID(ctx context.Context, matchID string) (*model.Match, error)

	// ListMatchesByWeek returns a week's matches ordered by match_number.
	ListMatchesByWeek(ctx context.Context, weekID string) ([]model.Match, error)

	// UpdateMatchResult records (or clears, with nil) the official result.
	UpdateMatchResult(ctx context.Context, matchID string, result *model.Outcome) (*model.Match, error)

	// UpdateMatchScore records the free-text score string.
	UpdateMatchScore(ctx context.Context, matchID, score string) (*model.Match, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new week repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// CreateWeek inserts a new pending week.
func (r *repository) CreateWeek(ctx context.Context, weekNumber, year int) (*model.Week, error) {
	r.logger.Infow("CreateWeek called", "week_number", weekNumber, "year", year)

	week := model.Week{
		WeekID:     uuid.NewString(),
		WeekNumber: weekNumber,
		Year:       year,
		Status:     model.StatusPending,
	}

	if err := r.db.WithContext(ctx).Create(&week).Error; err != nil {
		if isUniqueViolation(err) {
			r.logger.Debugw("CreateWeek duplicate", "week_number", weekNumber, "year", year)
			return nil, model.ErrWeekExists
		}
		r.logger.Errorw("CreateWeek database error", "week_number", weekNumber, "error", err)
		return nil, err
	}

	r.logger.Infow("CreateWeek completed", "week_id", week.WeekID)
	return &week, nil
}

// GetWeekByID finds a week by week_id.
func (r *repository) GetWeekByID(ctx context.Context, weekID string) (*model.Week, error) {
	r.logger.Debugw("GetWeekByID called", "week_id", weekID)

	var week model.Week
	err := r.db.WithContext(ctx).
		Where("week_id = ?", weekID).
		First(&week).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetWeekByID week not found", "week_id", weekID)
			return nil, model.ErrWeekNotFound
		}
		r.logger.Errorw("GetWeekByID database error", "week_id", weekID, "error", err)
		return nil, err
	}

	return &week, nil
}

// ListWeeks returns all weeks ordered by week_number.
func (r *repository) ListWeeks(ctx context.Context, status string) ([]model.Week, error) {
	r.logger.Debugw("ListWeeks called", "status", status)

	query := r.db.WithContext(ctx).Order("year ASC, week_number ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var weeks []model.Week
	if err := query.Find(&weeks).Error; err != nil {
		r.logger.Errorw("ListWeeks database error", "error", err)
		return nil, err
	}

	if weeks == nil {
		weeks = []model.Week{}
	}

	r.logger.Debugw("ListWeeks completed", "count", len(weeks))
	return weeks, nil
}

// UpdateWeekStatus sets a week's status and closed timestamp.
func (r *repository) UpdateWeekStatus(
	ctx context.Context,
	weekID, status string,
	closedAt *time.Time,
) (*model.Week, error) {
	r.logger.Infow("UpdateWeekStatus called", "week_id", weekID, "status", status)

	result := r.db.WithContext(ctx).
		Model(&model.Week{}).
		Where("week_id = ?", weekID).
		Updates(map[string]interface{}{
			"status":    status,
			"closed_at": closedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("UpdateWeekStatus database error", "week_id", weekID, "error", result.Error)
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Debugw("UpdateWeekStatus week not found", "week_id", weekID)
		return nil, model.ErrWeekNotFound
	}

	var week model.Week
	if err := r.db.WithContext(ctx).Where("week_id = ?", weekID).First(&week).Error; err != nil {
		r.logger.Errorw("UpdateWeekStatus failed to fetch updated week", "week_id", weekID, "error", err)
		return nil, err
	}

	r.logger.Infow("UpdateWeekStatus completed", "week_id", weekID, "status", status)
	return &week, nil
}

// CreateMatch inserts a new match owned by a week.
func (r *repository) CreateMatch(ctx context.Context, req *model.CreateMatchRequest) (*model.Match, error) {
	r.logger.Infow("CreateMatch called", "week_id", req.WeekID, "match_number", req.MatchNumber)

	match := model.Match{
		MatchID:      uuid.NewString(),
		WeekID:       req.WeekID,
		MatchNumber:  req.MatchNumber,
		HomeTeamName: req.HomeTeamName,
		AwayTeamName: req.AwayTeamName,
		MatchDate:    req.MatchDate,
		Location:     req.Location,
	}

	if err := r.db.WithContext(ctx).Create(&match).Error; err != nil {
		if isUniqueViolation(err) {
			r.logger.Debugw("CreateMatch duplicate", "week_id", req.WeekID, "match_number", req.MatchNumber)
			return nil, model.ErrMatchExists
		}
		r.logger.Errorw("CreateMatch database error", "week_id", req.WeekID, "error", err)
		return nil, err
	}

	r.logger.Infow("CreateMatch completed", "match_id", match.MatchID)
	return &match, nil
}

// GetMatchByID finds a match by match_id.
func (r *repository) GetMatchByID(ctx context.Context, matchID string) (*model.Match, error) {
	r.logger.Debugw("GetMatchByID called", "match_id", matchID)

	var match model.Match
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		First(&match).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetMatchByID match not found", "match_id", matchID)
			return nil, model.ErrMatchNotFound
		}
		r.logger.Errorw("GetMatchByID database error", "match_id", matchID, "error", err)
		return nil, err
	}

	return &match, nil
}

// ListMatchesByWeek returns a week's matches ordered by match_number.
func (r *repository) ListMatchesByWeek(ctx context.Context, weekID string) ([]model.Match, error) {
	r.logger.Debugw("ListMatchesByWeek called", "week_id", weekID)

	var matches []model.Match
	err := r.db.WithContext(ctx).
		Where("week_id = ?", weekID).
		Order("match_number ASC").
		Find(&matches).Error

	if err != nil {
		r.logger.Errorw("ListMatchesByWeek database error", "week_id", weekID, "error", err)
		return nil, err
	}

	if matches == nil {
		matches = []model.Match{}
	}

	r.logger.Debugw("ListMatchesByWeek completed", "week_id", weekID, "count", len(matches))
	return matches, nil
}

// UpdateMatchResult records (or clears) the official result.
func (r *repository) UpdateMatchResult(
	ctx context.Context,
	matchID string,
	result *model.Outcome,
) (*model.Match, error) {
	r.logger.Infow("UpdateMatchResult called", "match_id", matchID, "result", result)

	res := r.db.WithContext(ctx).
		Model(&model.Match{}).
		Where("match_id = ?", matchID).
		Update("official_result", result)

	if res.Error != nil {
		r.logger.Errorw("UpdateMatchResult database error", "match_id", matchID, "error", res.Error)
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		r.logger.Debugw("UpdateMatchResult match not found", "match_id", matchID)
		return nil, model.ErrMatchNotFound
	}

	return r.GetMatchByID(ctx, matchID)
}

// UpdateMatchScore records the free-text score string.
func (r *repository) UpdateMatchScore(ctx context.Context, matchID, score string) (*model.Match, error) {
	r.logger.Infow("UpdateMatchScore called", "match_id", matchID, "score", score)

	res := r.db.WithContext(ctx).
		Model(&model.Match{}).
		Where("match_id = ?", matchID).
		Update("match_score", score)

	if res.Error != nil {
		r.logger.Errorw("UpdateMatchScore database error", "match_id", matchID, "error", res.Error)
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		r.logger.Debugw("UpdateMatchScore match not found", "match_id", matchID)
		return nil, model.ErrMatchNotFound
	}

	return r.GetMatchByID(ctx, matchID)
}
