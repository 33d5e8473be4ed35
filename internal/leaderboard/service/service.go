// Package service aggregates stored scores into ranked leaderboards.
package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/footypool/prediction-pool/internal/leaderboard/model"
	"github.com/footypool/prediction-pool/internal/leaderboard/repository"
	weekmodel "github.com/footypool/prediction-pool/internal/week/model"
	weekrepository "github.com/footypool/prediction-pool/internal/week/repository"
)

// Service defines the interface for leaderboard operations.
type Service interface {
	// GetWeekly returns one week's leaderboard.
	GetWeekly(ctx context.Context, weekID string) (*model.WeeklyResponse, error)

	// GetOverall returns the all-weeks leaderboard.
	GetOverall(ctx context.Context) (*model.OverallResponse, error)
}

type service struct {
	repository repository.Repository
	weeks      weekrepository.Repository
	logger     *zap.SugaredLogger
}

// New creates a new leaderboard service instance.
func New(repo repository.Repository, weeks weekrepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repository: repo, weeks: weeks, logger: logger}
}

// GetWeekly returns one week's leaderboard.
func (s *service) GetWeekly(ctx context.Context, weekID string) (*model.WeeklyResponse, error) {
	s.logger.Debugw("GetWeekly called", "week_id", weekID)

	if weekID == "" {
		return nil, weekmodel.ErrInvalidWeekID
	}

	if _, err := s.weeks.GetWeekByID(ctx, weekID); err != nil {
		return nil, err
	}

	entries, err := s.repository.ListWeekly(ctx, weekID)
	if err != nil {
		return nil, err
	}

	return &model.WeeklyResponse{WeekID: weekID, Entries: entries, Total: len(entries)}, nil
}

// GetOverall folds every stored score into one ranked table. Ranking
// is by total correct predictions, then average accuracy, then weeks
// played, all descending.
func (s *service) GetOverall(ctx context.Context) (*model.OverallResponse, error) {
	s.logger.Debugw("GetOverall called")

	rows, err := s.repository.ListAllScores(ctx)
	if err != nil {
		return nil, err
	}

	entries := Aggregate(rows)
	return &model.OverallResponse{Entries: entries, Total: len(entries)}, nil
}

// Aggregate folds per-week score rows into one overall entry per user.
// A week counts as played only when the user had at least one
// considered prediction in it.
func Aggregate(rows []model.ScoreRow) []model.OverallEntry {
	byUser := make(map[string]*model.OverallEntry)
	order := make([]string, 0)

	for _, row := range rows {
		entry, ok := byUser[row.UserID]
		if !ok {
			entry = &model.OverallEntry{UserID: row.UserID, Name: row.Name}
			byUser[row.UserID] = entry
			order = append(order, row.UserID)
		}
		entry.TotalCorrect += row.CorrectPredictions
		entry.TotalPredictions += row.TotalPredictions
		entry.TotalScore += row.Score
		if row.TotalPredictions > 0 {
			entry.WeeksPlayed++
		}
	}

	entries := make([]model.OverallEntry, 0, len(byUser))
	for _, userID := range order {
		entry := byUser[userID]
		if entry.TotalPredictions > 0 {
			entry.AverageAccuracy = 100 * float64(entry.TotalCorrect) / float64(entry.TotalPredictions)
		}
		entries = append(entries, *entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.TotalCorrect != b.TotalCorrect {
			return a.TotalCorrect > b.TotalCorrect
		}
		if a.AverageAccuracy != b.AverageAccuracy {
			return a.AverageAccuracy > b.AverageAccuracy
		}
		return a.WeeksPlayed > b.WeeksPlayed
	})

	return entries
}
