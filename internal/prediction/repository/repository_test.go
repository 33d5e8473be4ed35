package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	weekmodel "github.com/footypool/prediction-pool/internal/week/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE predictions (
			prediction_id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			match_id VARCHAR(36) NOT NULL,
			predicted_outcome SMALLINT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (user_id, match_id)
		)
	`).Error
	require.NoError(t, err)

	return db
}

func newTestRepository(t *testing.T) Repository {
	t.Helper()
	return New(setupTestDB(t), zap.NewNop().Sugar())
}

func TestRepository_Upsert_Insert(t *testing.T) {
	repo := newTestRepository(t)

	stored, err := repo.Upsert(context.Background(), "user-1", "match-1", weekmodel.OutcomeHomeWin)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PredictionID)
	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, "match-1", stored.MatchID)
	assert.Equal(t, weekmodel.OutcomeHomeWin, stored.PredictedOutcome)
}

func TestRepository_Upsert_ReplacesPrevious(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, "user-1", "match-1", weekmodel.OutcomeHomeWin)
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, "user-1", "match-1", weekmodel.OutcomeDraw)
	require.NoError(t, err)

	assert.Equal(t, first.PredictionID, second.PredictionID)
	assert.Equal(t, weekmodel.OutcomeDraw, second.PredictedOutcome)

	predictions, err := repo.ListByUserAndMatches(ctx, "user-1", []string{"match-1"})
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, weekmodel.OutcomeDraw, predictions[0].PredictedOutcome)
}

func TestRepository_Upsert_DifferentMatchesCoexist(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, "user-1", "match-1", weekmodel.OutcomeHomeWin)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, "user-1", "match-2", weekmodel.OutcomeAwayWin)
	require.NoError(t, err)

	predictions, err := repo.ListByUserAndMatches(ctx, "user-1", []string{"match-1", "match-2"})
	require.NoError(t, err)
	assert.Len(t, predictions, 2)
}

func TestRepository_ListByUserAndMatches_FiltersOtherUsers(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, "user-1", "match-1", weekmodel.OutcomeHomeWin)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, "user-2", "match-1", weekmodel.OutcomeAwayWin)
	require.NoError(t, err)

	predictions, err := repo.ListByUserAndMatches(ctx, "user-1", []string{"match-1"})
	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, "user-1", predictions[0].UserID)
}

func TestRepository_ListByUserAndMatches_NoMatchIDs(t *testing.T) {
	repo := newTestRepository(t)

	predictions, err := repo.ListByUserAndMatches(context.Background(), "user-1", nil)
	require.NoError(t, err)
	assert.NotNil(t, predictions)
	assert.Empty(t, predictions)
}

func TestRepository_ListByMatches(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, "user-1", "match-1", weekmodel.OutcomeHomeWin)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, "user-2", "match-1", weekmodel.OutcomeDraw)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, "user-1", "match-9", weekmodel.OutcomeAwayWin)
	require.NoError(t, err)

	predictions, err := repo.ListByMatches(ctx, []string{"match-1"})
	require.NoError(t, err)
	assert.Len(t, predictions, 2)
}

func TestRepository_ListByMatches_Empty(t *testing.T) {
	repo := newTestRepository(t)

	predictions, err := repo.ListByMatches(context.Background(), []string{})
	require.NoError(t, err)
	assert.NotNil(t, predictions)
	assert.Empty(t, predictions)
}
