// Package fixture imports season fixture files into weeks and matches.
//
// The expected file is a JSON array of rounds as published by fixture
// download sites: each element carries MatchNumber, RoundNumber, DateUtc,
// Location, HomeTeam, AwayTeam and, for played games, both team scores.
package fixture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	weekmodel "github.com/footypool/prediction-pool/internal/week/model"
	weekrepository "github.com/footypool/prediction-pool/internal/week/repository"
)

// Match is one row of the fixture file.
type Match struct {
	MatchNumber   int    `json:"MatchNumber"`
	RoundNumber   int    `json:"RoundNumber"`
	DateUtc       string `json:"DateUtc"`
	Location      string `json:"Location"`
	HomeTeam      string `json:"HomeTeam"`
	AwayTeam      string `json:"AwayTeam"`
	Group         string `json:"Group"`
	HomeTeamScore *int   `json:"HomeTeamScore"`
	AwayTeamScore *int   `json:"AwayTeamScore"`
}

// Summary reports what an import run did.
type Summary struct {
	WeeksCreated   int
	MatchesCreated int
	RowsSkipped    int
}

// Importer loads fixture files into the store.
type Importer struct {
	repository weekrepository.Repository
	logger     *zap.SugaredLogger
}

// NewImporter creates a fixture importer.
func NewImporter(db *gorm.DB, logger *zap.SugaredLogger) *Importer {
	return &Importer{repository: weekrepository.New(db, logger), logger: logger}
}

// fixture files use "2026-08-15 15:00:00Z" style timestamps
const dateLayout = "2006-01-02 15:04:05Z"

func parseMatchDate(raw string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// ImportFile reads a fixture JSON file and imports it.
func (imp *Importer) ImportFile(ctx context.Context, path string, year int) (*Summary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture file: %w", err)
	}

	var rows []Match
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parse fixture file: %w", err)
	}

	return imp.Import(ctx, rows, year)
}

// Import creates one week per distinct round and a match per row.
// Weeks are opened for predictions immediately. Rows that fail are
// skipped and logged rather than aborting the run.
func (imp *Importer) Import(ctx context.Context, rows []Match, year int) (*Summary, error) {
	summary := &Summary{}

	rounds := make(map[int][]Match)
	for _, row := range rows {
		rounds[row.RoundNumber] = append(rounds[row.RoundNumber], row)
	}

	roundNumbers := make([]int, 0, len(rounds))
	for round := range rounds {
		roundNumbers = append(roundNumbers, round)
	}
	sort.Ints(roundNumbers)

	for _, round := range roundNumbers {
		week, err := imp.ensureOpenWeek(ctx, round, year)
		if err != nil {
			imp.logger.Errorw("fixture import skipping round", "round", round, "error", err)
			summary.RowsSkipped += len(rounds[round])
			continue
		}
		if week.created {
			summary.WeeksCreated++
		}

		for _, row := range rounds[round] {
			if err := imp.importMatch(ctx, week.week.WeekID, row); err != nil {
				imp.logger.Errorw("fixture import skipping match",
					"round", round, "match_number", row.MatchNumber, "error", err)
				summary.RowsSkipped++
				continue
			}
			summary.MatchesCreated++
		}
	}

	imp.logger.Infow("fixture import finished",
		"weeks_created", summary.WeeksCreated,
		"matches_created", summary.MatchesCreated,
		"rows_skipped", summary.RowsSkipped)
	return summary, nil
}

type ensuredWeek struct {
	week    *weekmodel.Week
	created bool
}

func (imp *Importer) ensureOpenWeek(ctx context.Context, round, year int) (*ensuredWeek, error) {
	week, err := imp.repository.CreateWeek(ctx, round, year)
	if err == nil {
		opened, err := imp.repository.UpdateWeekStatus(ctx, week.WeekID, weekmodel.StatusOpenForPredictions, nil)
		if err != nil {
			return nil, err
		}
		return &ensuredWeek{week: opened, created: true}, nil
	}

	if !errors.Is(err, weekmodel.ErrWeekExists) {
		return nil, err
	}

	// re-running an import reuses the existing week
	weeks, err := imp.repository.ListWeeks(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range weeks {
		if weeks[i].WeekNumber == round && weeks[i].Year == year {
			return &ensuredWeek{week: &weeks[i]}, nil
		}
	}
	return nil, weekmodel.ErrWeekNotFound
}

func (imp *Importer) importMatch(ctx context.Context, weekID string, row Match) error {
	matchDate, err := parseMatchDate(row.DateUtc)
	if err != nil {
		return fmt.Errorf("parse match date %q: %w", row.DateUtc, err)
	}

	var location *string
	if row.Location != "" {
		location = &row.Location
	}

	match, err := imp.repository.CreateMatch(ctx, &weekmodel.CreateMatchRequest{
		WeekID:       weekID,
		MatchNumber:  row.MatchNumber,
		HomeTeamName: row.HomeTeam,
		AwayTeamName: row.AwayTeam,
		MatchDate:    matchDate,
		Location:     location,
	})
	if err != nil {
		return err
	}

	outcome := weekmodel.OutcomeFromScores(row.HomeTeamScore, row.AwayTeamScore)
	if outcome == nil {
		return nil
	}

	if _, err := imp.repository.UpdateMatchResult(ctx, match.MatchID, outcome); err != nil {
		return err
	}

	score := fmt.Sprintf("%d-%d", *row.HomeTeamScore, *row.AwayTeamScore)
	_, err = imp.repository.UpdateMatchScore(ctx, match.MatchID, score)
	return err
}
